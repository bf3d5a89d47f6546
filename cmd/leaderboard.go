package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/sprouts/internal/session"
	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [mode]",
	Short: "Show the best scores for each game",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modes := session.Modes
		if len(args) == 1 {
			mode, err := session.ParseMode(args[0])
			if err != nil {
				return err
			}
			modes = []session.ModeInfo{mode.Info()}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		board := newServices(st).board

		ctx := cmd.Context()
		if wipe, _ := cmd.Flags().GetBool("clear"); wipe {
			if !confirm(cmd.InOrStdin(), "Clear every leaderboard? [y/N] ") {
				return nil
			}
			if err := board.Clear(ctx); err != nil {
				return fmt.Errorf("clear leaderboards: %w", err)
			}
			fmt.Println("Leaderboards cleared.")
			return nil
		}

		for i, info := range modes {
			entries, err := board.Top(ctx, string(info.Mode))
			if err != nil {
				return fmt.Errorf("read %s leaderboard: %w", info.Mode, err)
			}
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(info.Name)
			fmt.Println(strings.Repeat("─", 32))
			if len(entries) == 0 {
				fmt.Println("  No scores yet.")
				continue
			}
			for rank, e := range entries {
				fmt.Printf("  %2d. %-20s %5d\n", rank+1, e.Name, e.Score)
			}
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().Bool("clear", false, "Remove every score")
}
