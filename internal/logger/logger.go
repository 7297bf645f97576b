// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const prefix = "arena"

// New создаёт логгер с указанным уровнем ("debug", "info", "warn", "error").
// Пустой уровень означает info.
func New(level string, w io.Writer) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Discard — логгер, который ничего не пишет. Удобен в тестах.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
