// cmd/game/env.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"go-arena/internal/app"
	"go-arena/internal/config"
	"go-arena/internal/logger"
	"go-arena/internal/storage"
	"go-arena/internal/telemetry"
)

// appEnv — общее окружение команд
type appEnv struct {
	settings config.Settings
	log      *log.Logger
	recorder *telemetry.Recorder
}

func newAppEnv() (*appEnv, error) {
	lg, err := logger.New(flagLogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	settings, source, err := config.LoadSettings(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	lg.Info("settings loaded", "source", source)

	env := &appEnv{settings: settings, log: lg}
	if flagTrace != "" {
		env.recorder = telemetry.NewFileRecorder(flagTrace)
		lg.Info("tick trace enabled", "path", flagTrace)
	}
	return env, nil
}

func (env *appEnv) newGame() *app.Game {
	return app.NewGame(env.settings, app.Options{
		Logger:   env.log,
		Recorder: env.recorder,
		Seed:     flagSeed,
	})
}

// saveSession пишет итог сессии в базу. Ошибки только логируются:
// потеря статистики не должна ронять выход из игры.
func (env *appEnv) saveSession(ctx context.Context, mode string, startedAt time.Time, game *app.Game) {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		env.log.Error("open sessions database", "err", err)
		return
	}
	defer store.Close()

	stats := game.Stats()
	id, err := store.SaveSession(ctx, storage.Session{
		Mode:           mode,
		Seed:           game.Rng.Seed(),
		StartedAt:      startedAt,
		Ticks:          stats.Ticks,
		Elapsed:        stats.Elapsed,
		PlayerDistance: stats.PlayerDistance,
		PeakSpeed:      stats.PeakSpeed,
		WallHits:       stats.WallHits,
	})
	if err != nil {
		env.log.Error("save session", "err", err)
		return
	}
	env.log.Info("session saved", "id", id, "ticks", stats.Ticks)
}

func (env *appEnv) Close() {
	if err := env.recorder.Close(); err != nil {
		env.log.Warn("close trace", "err", err)
	}
}
