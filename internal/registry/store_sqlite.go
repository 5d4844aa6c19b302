package registry

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// statsQuery aggregates recurring correction patterns over the trailing
// six months; one-off corrections are treated as noise.
const statsQuery = `
SELECT detected_type, corrected_type, COUNT(*) AS cnt
FROM detection_corrections
WHERE created_at > datetime('now', '-6 months')
GROUP BY detected_type, corrected_type
HAVING COUNT(*) >= 2`

const correctionsSchema = `
CREATE TABLE IF NOT EXISTS detection_corrections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	detected_type TEXT NOT NULL,
	corrected_type TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteStore persists detection corrections in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the corrections database at
// path. The caller owns the returned store and must Close it.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening corrections db: %w", err)
	}
	if _, err := db.Exec(correctionsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating detection_corrections table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Record stores one user correction of a detection outcome.
func (s *SQLiteStore) Record(ctx context.Context, detectedType, correctedType string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO detection_corrections (detected_type, corrected_type) VALUES (?, ?)`,
		detectedType, correctedType)
	if err != nil {
		return fmt.Errorf("recording detection correction: %w", err)
	}
	return nil
}

// Stats returns correction patterns seen at least twice in the last six
// months.
func (s *SQLiteStore) Stats(ctx context.Context) ([]CorrectionStat, error) {
	rows, err := s.db.QueryContext(ctx, statsQuery)
	if err != nil {
		return nil, fmt.Errorf("querying correction stats: %w", err)
	}
	defer rows.Close()

	var stats []CorrectionStat
	for rows.Next() {
		var st CorrectionStat
		if err := rows.Scan(&st.DetectedType, &st.CorrectedType, &st.Count); err != nil {
			return nil, fmt.Errorf("scanning correction stat: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
