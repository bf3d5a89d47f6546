package cmd

import (
	"fmt"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset player data",
	Long: "Remove the leaderboards and the remembered player. With --content the " +
		"approved words, counting items and color items are removed too.",
	RunE: func(cmd *cobra.Command, args []string) error {
		withContent, _ := cmd.Flags().GetBool("content")
		yes, _ := cmd.Flags().GetBool("yes")

		prompt := "Remove all scores and the last player? [y/N] "
		if withContent {
			prompt = "Remove all scores, the last player and all approved content? [y/N] "
		}
		if !yes && !confirm(cmd.InOrStdin(), prompt) {
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		svc := newServices(st)

		ctx := cmd.Context()
		if err := svc.board.Clear(ctx); err != nil {
			return fmt.Errorf("clear leaderboards: %w", err)
		}
		if err := st.SettingsRepo().Delete(ctx, store.KeyLastPlayer); err != nil {
			return fmt.Errorf("forget player: %w", err)
		}
		if withContent {
			for _, kind := range content.Kinds {
				if err := svc.catalog.Clear(ctx, kind); err != nil {
					return fmt.Errorf("clear %s: %w", kind, err)
				}
			}
		}
		fmt.Println("Reset complete.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("content", false, "Also remove approved content")
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
