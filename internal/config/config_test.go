package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-arena/internal/arena"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := ParseSettings(defaultSettingsYAML)
	if err != nil {
		t.Fatalf("ParseSettings(defaults.yaml) failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults are invalid: %v", err)
	}

	want := DefaultSettings()
	if cfg.Arena != want.Arena {
		t.Errorf("arena = %+v, expected %+v", cfg.Arena, want.Arena)
	}
	if cfg.Player != want.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, want.Player)
	}
	if cfg.Enemy.Movement != want.Enemy.Movement {
		t.Errorf("enemy movement = %+v, expected %+v", cfg.Enemy.Movement, want.Enemy.Movement)
	}
	if len(cfg.Enemy.Spawns) != 1 || cfg.Enemy.Spawns[0] != (Point{X: 200, Y: 200}) {
		t.Errorf("enemy spawns = %v", cfg.Enemy.Spawns)
	}
}

func TestParseSettingsPartialOverride(t *testing.T) {
	data := []byte(`
player:
  movement:
    max_speed: 300
enemy:
  spawns:
    - {x: -100, y: 50}
    - {x: 100, y: -50}
`)
	cfg, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("ParseSettings() failed: %v", err)
	}

	if cfg.Player.Movement.MaxSpeed != 300 {
		t.Errorf("max_speed = %v, expected 300", cfg.Player.Movement.MaxSpeed)
	}
	// Untouched fields keep their defaults.
	if cfg.Player.Movement.Acceleration != 600 {
		t.Errorf("acceleration = %v, expected default 600", cfg.Player.Movement.Acceleration)
	}
	if cfg.Arena.WallThickness != 10 {
		t.Errorf("wall_thickness = %v, expected default 10", cfg.Arena.WallThickness)
	}
	if len(cfg.Enemy.Spawns) != 2 {
		t.Fatalf("expected 2 spawns, got %d", len(cfg.Enemy.Spawns))
	}
	if cfg.Enemy.Spawns[1] != (Point{X: 100, Y: -50}) {
		t.Errorf("second spawn = %+v", cfg.Enemy.Spawns[1])
	}
}

func TestParseSettingsRejectsGarbage(t *testing.T) {
	if _, err := ParseSettings([]byte("arena: [1, 2")); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"defaults are valid", func(*Settings) {}, ""},
		{"negative acceleration", func(s *Settings) { s.Player.Movement.Acceleration = -1 }, "player: acceleration"},
		{"negative enemy damping", func(s *Settings) { s.Enemy.Movement.Damping = -0.5 }, "enemy: damping"},
		{"inverted arena", func(s *Settings) { s.Arena.LeftWall, s.Arena.RightWall = 10, -10 }, "right wall"},
		{"zero diameter", func(s *Settings) { s.Player.Diameter = 0 }, "diameter"},
		{"negative random count", func(s *Settings) { s.Enemy.RandomCount = -3 }, "random_count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSettings()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateWrapsArenaError(t *testing.T) {
	cfg := DefaultSettings()
	cfg.Arena.TopWall = cfg.Arena.BottomWall
	if err := cfg.Validate(); !errors.Is(err, arena.ErrEmptyHeight) {
		t.Errorf("Validate() = %v, expected arena.ErrEmptyHeight", err)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("embedded fallback", func(t *testing.T) {
		cfg, src, err := LoadSettings("")
		if err != nil {
			t.Fatalf("LoadSettings() failed: %v", err)
		}
		if src != SourceEmbedded {
			t.Errorf("source = %q, expected %q", src, SourceEmbedded)
		}
		if cfg.Player.Diameter != 50 {
			t.Errorf("player diameter = %v, expected 50", cfg.Player.Diameter)
		}
	})

	t.Run("missing custom file", func(t *testing.T) {
		_, src, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing custom file")
		}
		if src != SourceCustom {
			t.Errorf("source = %q, expected %q", src, SourceCustom)
		}
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "arena.yaml")
		if err := os.WriteFile(path, []byte("enemy:\n  random_count: 3\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, _, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings() failed: %v", err)
		}
		if cfg.Enemy.RandomCount != 3 {
			t.Errorf("random_count = %d, expected 3", cfg.Enemy.RandomCount)
		}
	})

	t.Run("user file wins over embedded", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		dir := filepath.Join(home, ".go-arena")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte("seed: 42\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, src, err := LoadSettings("")
		if err != nil {
			t.Fatalf("LoadSettings() failed: %v", err)
		}
		if src != SourceUser || cfg.Seed != 42 {
			t.Errorf("got source %q seed %d, expected user/42", src, cfg.Seed)
		}
	})
}
