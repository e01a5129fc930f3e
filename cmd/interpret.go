package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/interpret"
	"github.com/mirit/psyche/internal/llm"
	"github.com/mirit/psyche/internal/store"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [assessment]",
	Short: "Write a reading for your most recent result",
	Long:  "Generates a narrative reading of the most recent saved result, using the configured LLM provider when available and a built-in template otherwise.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
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

		results, err := s.ResultRepo().List(context.Background(), assessmentID, 1)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(results) == 0 {
			return fmt.Errorf("no saved results to interpret; take an assessment first")
		}
		result := results[0]

		input := interpret.ReadingInput{Scores: result.Scores}
		if profile, err := birthdata.Load(profilePathFor(dbPath)); err == nil && profile != nil {
			reading := birthdata.Resolve(*profile)
			input.Birth = &reading
		}

		narrative := interpret.Summarize(result.Scores)
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured; using the built-in reading.")
		} else {
			svc := interpret.NewService(provider, interpret.DefaultConfig())
			generated, err := svc.Generate(ctx, input)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Reading generation failed; using the built-in reading:", err)
			} else {
				narrative = *generated
			}
		}

		color.Cyan("Reading for %s (taken %s)", result.AssessmentID, result.TakenAt.Local().Format("2006-01-02"))
		fmt.Println()
		fmt.Println(narrative.Summary)

		if len(narrative.Dimensions) > 0 {
			fmt.Println()
			for _, note := range narrative.Dimensions {
				color.Yellow("%s", note.Label)
				fmt.Println(note.Note)
			}
		}

		if len(narrative.Tips) > 0 {
			fmt.Println()
			color.Yellow("Suggestions")
			for _, tip := range narrative.Tips {
				fmt.Println("  •", tip)
			}
		}
		return nil
	},
}
