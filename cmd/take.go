package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirit/psyche/internal/catalog"
)

var takeCmd = &cobra.Command{
	Use:   "take <assessment>",
	Short: "Start a specific assessment directly",
	Long:  "Opens straight into the named built-in assessment, or into an externally authored one loaded with --file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		if file != "" {
			a, err := catalog.Load(file)
			if err != nil {
				return fmt.Errorf("load assessment: %w", err)
			}
			return runApp(cmd, a)
		}

		if len(args) == 0 {
			return fmt.Errorf("name an assessment (available: %s) or pass --file", strings.Join(builtinIDs(), ", "))
		}
		a, ok := catalog.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown assessment %q (available: %s)", args[0], strings.Join(builtinIDs(), ", "))
		}
		return runApp(cmd, a)
	},
}

func builtinIDs() []string {
	var ids []string
	for _, b := range catalog.Builtin() {
		ids = append(ids, b.ID)
	}
	return ids
}

func init() {
	takeCmd.Flags().StringP("file", "f", "", "Path to an assessment definition YAML file")
}
