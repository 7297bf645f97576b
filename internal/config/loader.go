// internal/config/loader.go
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultSettingsYAML []byte

// Source описывает, откуда были взяты настройки.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

const settingsFile = "settings.yaml"

// LoadSettings загружает настройки арены.
// Порядок поиска: customPath -> ~/.go-arena/settings.yaml -> ./configs/settings.yaml -> встроенный YAML.
// Ошибка возвращается только для явно указанного файла или невалидных значений.
func LoadSettings(customPath string) (Settings, Source, error) {
	if customPath != "" {
		cfg, err := readSettings(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	if userPath := userConfigPath(settingsFile); userPath != "" {
		if cfg, err := readSettings(userPath); err == nil {
			return cfg, SourceUser, cfg.Validate()
		}
	}

	if cfg, err := readSettings(filepath.Join("configs", settingsFile)); err == nil {
		return cfg, SourceLocal, cfg.Validate()
	}

	cfg, err := ParseSettings(defaultSettingsYAML)
	if err != nil {
		return DefaultSettings(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// ParseSettings разбирает YAML поверх значений по умолчанию,
// так что в файле достаточно указать только то, что меняется.
func ParseSettings(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse settings: %w", err)
	}
	return cfg, nil
}

func readSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	cfg, err := ParseSettings(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath возвращает путь к файлу в домашнем каталоге или пустую строку.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".go-arena", filename)
}
