package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mirit/psyche/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results [assessment]",
	Short: "List saved assessment results",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		assessmentID := ""
		if len(args) == 1 {
			assessmentID = args[0]
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		results, err := s.ResultRepo().List(ctx, assessmentID, limit)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No results yet.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Taken", "Assessment", "Type", "Overall", "Top Dimension", "Flagged"})
		for _, r := range results {
			table.Append([]string{
				r.TakenAt.Local().Format("2006-01-02 15:04"),
				r.AssessmentID,
				r.Scores.TypeLabel,
				overallText(r),
				topDimensionText(r),
				flaggedText(r),
			})
		}
		table.Render()
		return nil
	},
}

func overallText(r *store.Result) string {
	if r.Scores.Overall == 0 {
		return ""
	}
	return strconv.Itoa(r.Scores.Overall)
}

func topDimensionText(r *store.Result) string {
	best := -1
	label := ""
	for _, d := range r.Scores.Dimensions {
		if d.Score > best {
			best = d.Score
			label = d.Label
		}
	}
	if label == "" {
		return ""
	}
	return fmt.Sprintf("%s (%d)", label, best)
}

func flaggedText(r *store.Result) string {
	if !r.Scores.Flagged {
		return ""
	}
	return color.RedString("yes")
}

func init() {
	resultsCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
}
