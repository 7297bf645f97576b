// Package storage сохраняет итоги игровых сессий в SQLite.
// Используется pure-Go драйвер modernc.org/sqlite, CGO не нужен.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store — соединение с базой сессий.
type Store struct {
	db *sql.DB
}

// Session — итог одного запуска.
type Session struct {
	ID             int64
	Mode           string // "window" или "sim"
	Seed           int64
	StartedAt      time.Time
	Ticks          int
	Elapsed        float64 // Время симуляции, с
	PlayerDistance float64
	PeakSpeed      float64
	WallHits       int
}

// Open создаёт или открывает базу по пути dbPath; "~" раскрывается в домашний каталог.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			elapsed REAL NOT NULL,
			player_distance REAL NOT NULL,
			peak_speed REAL NOT NULL,
			wall_hits INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close закрывает соединение.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession записывает итог сессии и возвращает его ID.
func (s *Store) SaveSession(ctx context.Context, sess Session) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (mode, seed, started_at, ticks, elapsed, player_distance, peak_speed, wall_hits)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.Mode, sess.Seed, sess.StartedAt.Unix(), sess.Ticks, sess.Elapsed,
		sess.PlayerDistance, sess.PeakSpeed, sess.WallHits,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions возвращает последние limit сессий, новые первыми.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, seed, started_at, ticks, elapsed, player_distance, peak_speed, wall_hits
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var started int64
		if err := rows.Scan(&sess.ID, &sess.Mode, &sess.Seed, &started, &sess.Ticks, &sess.Elapsed,
			&sess.PlayerDistance, &sess.PeakSpeed, &sess.WallHits); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.StartedAt = time.Unix(started, 0)
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}
