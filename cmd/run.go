package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/sprouts/internal/app"
	"github.com/abhisek/sprouts/internal/catalog"
	"github.com/abhisek/sprouts/internal/config"
	"github.com/abhisek/sprouts/internal/contentgen"
	"github.com/abhisek/sprouts/internal/leaderboard"
	"github.com/abhisek/sprouts/internal/llm"
	"github.com/abhisek/sprouts/internal/review"
	"github.com/abhisek/sprouts/internal/screens/settings"
	"github.com/abhisek/sprouts/internal/session"
	"github.com/abhisek/sprouts/internal/store"
	"github.com/spf13/cobra"
)

// services is everything built on top of an open store.
type services struct {
	catalog   *catalog.Catalog
	board     *leaderboard.Board
	generator *contentgen.Generator
}

// newServices wires the catalog, leaderboard and content generator. The
// generator reads a key saved in Settings on every request.
func newServices(st *store.Store) services {
	cfg := config.Load()
	settingsRepo := st.SettingsRepo()

	keys := func(ctx context.Context) (string, error) {
		v, _, err := settingsRepo.Get(ctx, store.KeyAPICredential)
		return v, err
	}
	factory := llm.NewFactory(cfg.LLM, st.EventRepo(), keys)
	cat := catalog.New(st.CatalogRepo())

	return services{
		catalog:   cat,
		board:     leaderboard.New(settingsRepo),
		generator: contentgen.New(factory, cat, cfg.Generation),
	}
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	svc := newServices(st)
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	opts := app.Options{
		Controller: session.New(svc.catalog, svc.board, st.SettingsRepo(), nil),
		Catalog:    svc.catalog,
		Settings: settings.Deps{
			Review:   review.New(svc.generator, svc.catalog),
			Catalog:  svc.catalog,
			Checker:  svc.generator,
			Settings: st.SettingsRepo(),
		},
		Splash: !noSplash,
	}
	return app.Run(ctx, opts)
}
