package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirit/psyche/internal/app"
	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/catalog"
	"github.com/mirit/psyche/internal/interpret"
	"github.com/mirit/psyche/internal/llm"
	"github.com/mirit/psyche/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A non-nil start skips the home menu and opens that assessment
// directly.
func runApp(cmd *cobra.Command, start *catalog.Assessment) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	profilePath := profilePathFor(dbPath)
	profile, err := birthdata.Load(profilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not read saved birth profile:", err)
	}

	deps := app.Deps{
		Results:     st.ResultRepo(),
		Events:      st.EventRepo(),
		Profile:     profile,
		ProfilePath: profilePath,
		Start:       start,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI-written readings will be unavailable.")
	} else {
		deps.Reader = interpret.NewService(provider, interpret.DefaultConfig())
	}

	return app.Run(deps)
}
