// cmd/game/sessions.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-arena/internal/storage"
)

var flagLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recently recorded sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
}

func runSessions(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open sessions database: %w", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(cmd.Context(), flagLimit)
	if err != nil {
		return fmt.Errorf("read sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-16s  %-7s  %-9s  %-9s  %s\n", "ID", "Mode", "Started", "Ticks", "Distance", "Peak", "Hits")
	fmt.Fprintf(out, "  %-4s  %-6s  %-16s  %-7s  %-9s  %-9s  %s\n", "--", "----", "-------", "-----", "--------", "----", "----")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-4d  %-6s  %-16s  %-7d  %-9.1f  %-9.1f  %d\n",
			s.ID, s.Mode, s.StartedAt.Format("2006-01-02 15:04"), s.Ticks, s.PlayerDistance, s.PeakSpeed, s.WallHits)
	}
	return nil
}
