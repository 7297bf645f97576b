// game is a small arena chase: steer the player with WASD while enemies pursue it.
//
// Usage:
//
//	game                  - Open the game window
//	game sim              - Run the simulation headless for a fixed number of ticks
//	game sessions         - Show recently recorded sessions
//
// Global flags:
//
//	--config <path>     - Settings file (default: search ~/.go-arena, ./configs, built-in)
//	--seed <value>      - RNG seed for random enemy placement
//	--log-level <lvl>   - debug, info, warn or error
//	--trace <path>      - Write a per-tick JSON trace with rotation
//	--db <path>         - Session database (default: ~/.go-arena/sessions.db)
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-arena/internal/config"
	"go-arena/internal/state"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagTrace    string
	flagDBPath   string

	// Window flags
	flagPprof string
	flagMenu  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Arena - steer the player, enemies give chase",
	Long: `Arena opens a window with a walled arena. Move the player with WASD or
the arrow keys; enemies accelerate towards it. P or Esc pauses, R resets the scene.

Examples:
  game
  game --seed 42 --trace trace.jsonl
  game sim --ticks 600 --input "d*60,wd*30,-*20"
  game sessions`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from settings, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level")
	rootCmd.PersistentFlags().StringVar(&flagTrace, "trace", "", "Per-tick trace file (disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.go-arena/sessions.db", "Path to sessions database")

	rootCmd.Flags().StringVar(&flagPprof, "pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	rootCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start from the menu screen")

	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// AppGame связывает машину состояний с циклом ebiten
type AppGame struct {
	stateMachine *state.StateMachine
}

// Update вызывается ebiten с постоянной частотой TicksPerSecond
func (a *AppGame) Update() error {
	a.stateMachine.Update(config.FixedDeltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runWindow(cmd *cobra.Command, args []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if flagPprof != "" {
		go func() {
			env.log.Warn("pprof server stopped", "err", http.ListenAndServe(flagPprof, nil))
		}()
	}

	startedAt := time.Now()
	game := env.newGame()

	sm := state.NewStateMachine(env.log)
	gameState := state.NewGameState(sm, game)
	if flagMenu {
		sm.SetState(state.NewMenuState(sm, gameState))
	} else {
		sm.SetState(gameState)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}

	env.saveSession(cmd.Context(), "window", startedAt, game)
	return nil
}
