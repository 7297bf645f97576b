// cmd/game/sim.go
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"go-arena/internal/config"
	"go-arena/internal/input"
)

var (
	flagTicks  int
	flagInput  string
	flagNoSave bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a window",
	Long: `Run a fixed number of ticks at the fixed timestep and print a summary.

The input script is a comma-separated list of keys*ticks steps. Keys are any
of w, a, s, d; "-" means no key. After the script ends no key is held.

Examples:
  game sim --ticks 120
  game sim --ticks 600 --input "d*60,wd*30,-*20" --trace sim.jsonl`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagInput, "input", "", "Input script, e.g. \"d*60,wd*30,-*20\"")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the session")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	script, err := input.ParseScript(flagInput)
	if err != nil {
		return err
	}

	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	startedAt := time.Now()
	game := env.newGame()
	for tick := 0; tick < flagTicks; tick++ {
		game.Update(config.FixedDeltaTime, script.At(tick))
	}

	out := cmd.OutOrStdout()
	stats := game.Stats()
	fmt.Fprintf(out, "Simulated %d ticks (%.2fs), seed %d\n", stats.Ticks, stats.Elapsed, game.Rng.Seed())
	if pos, mov, ok := game.Player(); ok {
		fmt.Fprintf(out, "  player   pos (%.2f, %.2f)  vel (%.2f, %.2f)\n", pos.X, pos.Y, mov.Velocity.X, mov.Velocity.Y)
	}
	for _, e := range game.EntityStates() {
		if e.Kind != "enemy" {
			continue
		}
		fmt.Fprintf(out, "  enemy %-2d pos (%.2f, %.2f)  vel (%.2f, %.2f)\n", e.ID, e.X, e.Y, e.VX, e.VY)
	}
	fmt.Fprintf(out, "  distance %.1f  peak speed %.1f  wall hits %d\n", stats.PlayerDistance, stats.PeakSpeed, stats.WallHits)

	if !flagNoSave {
		env.saveSession(cmd.Context(), "sim", startedAt, game)
	}
	return nil
}
