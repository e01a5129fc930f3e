package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/interpret"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the symbolic birth chart for a birth date",
	Long:  "Computes the solar chart, Tzolkin signature, sexagenary year, life path, and energy type for a birth date. Uses the saved profile when no --date is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		timeOfDay, _ := cmd.Flags().GetString("time")
		place, _ := cmd.Flags().GetString("place")

		profile := birthdata.Profile{Date: date, Time: timeOfDay, Place: place}
		if profile.Date == "" {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			saved, err := birthdata.Load(profilePathFor(dbPath))
			if err != nil {
				return fmt.Errorf("read saved birth profile: %w", err)
			}
			if saved == nil {
				return fmt.Errorf("no birth date given and no saved profile; pass --date YYYY-MM-DD or run: psyche take birth-chart")
			}
			profile = *saved
		}

		reading := birthdata.Resolve(profile)

		heading := fmt.Sprintf("Birth chart for %s", profile.Date)
		if profile.Place != "" {
			heading += " — " + profile.Place
		}
		color.Cyan("%s", heading)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Point", "Placement"})
		for _, line := range interpret.DescribeChart(reading) {
			name, value, ok := strings.Cut(line, ": ")
			if !ok {
				continue
			}
			table.Append([]string{name, value})
		}
		table.Render()

		if profile.Time == "" || profile.Time == "unknown" {
			color.Yellow("Rising sign needs a birth time; pass --time HH:MM for a full chart.")
		}
		return nil
	},
}

func init() {
	chartCmd.Flags().String("date", "", "Birth date (YYYY-MM-DD)")
	chartCmd.Flags().String("time", "", "Birth time (HH:MM, 24-hour)")
	chartCmd.Flags().String("place", "", "Birth place (free text, display only)")
}
