package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// GetValue reads a raw value from the key-value table.
// ok is false when the key is absent.
func (s *Store) GetValue(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// SetValue writes a raw value to the key-value table.
func (s *Store) SetValue(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// HighScore is the persistent best score of one game mode. It never
// returns errors: missing or unreadable values count as 0 and are logged.
type HighScore struct {
	store *Store
	key   string
}

// HighScore returns the high score record for a game mode.
func (s *Store) HighScore(gameID string) *HighScore {
	return &HighScore{store: s, key: "highscore:" + gameID}
}

// GetHighScore returns the stored best score, or 0.
func (h *HighScore) GetHighScore() int {
	raw, ok, err := h.store.GetValue(h.key)
	if err != nil {
		h.store.logger.Warn("reading high score", "key", h.key, "err", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		h.store.logger.Warn("corrupt high score, treating as 0", "key", h.key, "value", raw)
		return 0
	}
	return n
}

// SaveHighScore stores score when it beats the current best.
func (h *HighScore) SaveHighScore(score int) bool {
	if score <= h.GetHighScore() {
		return false
	}
	if err := h.store.SetValue(h.key, strconv.Itoa(score)); err != nil {
		h.store.logger.Error("saving high score", "key", h.key, "err", err)
		return false
	}
	return true
}
