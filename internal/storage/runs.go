package storage

import (
	"fmt"
	"time"
)

// RunRecord is the history entry of one finished run.
type RunRecord struct {
	ID        int64
	RunID     string
	Mode      string
	Seed      int64
	Score     int
	Outcome   string // "won" or "lost"
	Depth     int
	Duration  int // seconds
	CreatedAt time.Time
}

// SaveRun records a finished run. Saving the same run id twice is an error.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (run_id, mode, seed, score, outcome, depth, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Mode, r.Seed, r.Score, r.Outcome, r.Depth, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest runs of a mode, newest first.
// An empty mode returns runs of every mode.
func (s *Store) RecentRuns(mode string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, mode, seed, score, outcome, depth, duration_secs, created_at
		 FROM runs
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Mode, &r.Seed, &r.Score, &r.Outcome, &r.Depth, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = scanTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
