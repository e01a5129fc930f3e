package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mirit/psyche/internal/llm"
	"github.com/mirit/psyche/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		records, err := s.EventRepo().QueryLLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query LLM requests: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Time", "Purpose", "Model", "In", "Out", "Ms", "OK"})
		for _, r := range records {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			table.Append([]string{
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Purpose,
				r.Model,
				strconv.Itoa(r.InputTokens),
				strconv.Itoa(r.OutputTokens),
				strconv.FormatInt(r.LatencyMs, 10),
				ok,
			})
		}
		table.Render()
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		records, err := s.EventRepo().QueryLLMRequests(context.Background(), 0)
		if err != nil {
			return fmt.Errorf("query LLM requests: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		type modelUsage struct {
			calls        int
			inputTokens  int
			outputTokens int
		}
		byModel := make(map[string]*modelUsage)
		var order []string
		for _, r := range records {
			mu, ok := byModel[r.Model]
			if !ok {
				mu = &modelUsage{}
				byModel[r.Model] = mu
				order = append(order, r.Model)
			}
			mu.calls++
			mu.inputTokens += r.InputTokens
			mu.outputTokens += r.OutputTokens
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Model", "Calls", "Input", "Output", "Cost"})

		var totalCost float64
		costKnown := true
		for _, model := range order {
			mu := byModel[model]
			costText := "?"
			if cost := llm.LookupCost(model); cost != nil {
				c := cost.Cost(mu.inputTokens, mu.outputTokens)
				totalCost += c
				costText = formatCost(c)
			} else {
				costKnown = false
			}
			table.Append([]string{
				model,
				strconv.Itoa(mu.calls),
				strconv.Itoa(mu.inputTokens),
				strconv.Itoa(mu.outputTokens),
				costText,
			})
		}
		table.Render()

		label := "Total estimated cost"
		if !costKnown {
			label = "Total estimated cost (partial, unknown models excluded)"
		}
		fmt.Printf("%s: %s\n", label, formatCost(totalCost))
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. reading)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
