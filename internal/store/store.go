// Package store persists report records for later retrieval by club.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"feedback-insights-go/internal/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id           TEXT PRIMARY KEY,
	club         TEXT NOT NULL,
	event_name   TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	event_date   TEXT NOT NULL DEFAULT '',
	total        INTEGER NOT NULL,
	positive     INTEGER NOT NULL,
	neutral      INTEGER NOT NULL,
	negative     INTEGER NOT NULL,
	engagement   REAL,
	top_positive TEXT NOT NULL DEFAULT '[]',
	top_negative TEXT NOT NULL DEFAULT '[]',
	trending     TEXT NOT NULL DEFAULT '[]',
	pdf_path     TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_club ON reports(club, created_at DESC);
`

// Store wraps the SQLite handle. Open once at startup; the handle is safe for
// concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path and bootstraps the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the underlying handle.
func (s *Store) Close() error { return s.db.Close() }

// SaveReport inserts a record, assigning an id and timestamp when absent,
// and returns the stored record.
func (s *Store) SaveReport(rec types.ReportRecord) (types.ReportRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	topPos, err := json.Marshal(rec.TopPositive)
	if err != nil {
		return types.ReportRecord{}, fmt.Errorf("encode top positive: %w", err)
	}
	topNeg, err := json.Marshal(rec.TopNegative)
	if err != nil {
		return types.ReportRecord{}, fmt.Errorf("encode top negative: %w", err)
	}
	trending, err := json.Marshal(rec.Trending)
	if err != nil {
		return types.ReportRecord{}, fmt.Errorf("encode trending: %w", err)
	}

	var engagement sql.NullFloat64
	if rec.Engagement != nil {
		engagement = sql.NullFloat64{Float64: *rec.Engagement, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO reports (
			id, club, event_name, description, event_date,
			total, positive, neutral, negative, engagement,
			top_positive, top_negative, trending, pdf_path, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Club, rec.EventName, rec.Description, rec.Date,
		rec.Total, rec.Counts[types.Positive], rec.Counts[types.Neutral], rec.Counts[types.Negative],
		engagement, string(topPos), string(topNeg), string(trending), rec.PDFPath, rec.CreatedAt,
	)
	if err != nil {
		return types.ReportRecord{}, fmt.Errorf("insert report: %w", err)
	}
	return rec, nil
}

// ListByClub returns the club's reports, newest first.
func (s *Store) ListByClub(club string) ([]types.ReportRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, club, event_name, description, event_date,
		       total, positive, neutral, negative, engagement,
		       top_positive, top_negative, trending, pdf_path, created_at
		FROM reports WHERE club = ? ORDER BY created_at DESC`, club)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []types.ReportRecord
	for rows.Next() {
		var (
			rec        types.ReportRecord
			pos, neu   int
			neg        int
			engagement sql.NullFloat64
			topPos     string
			topNeg     string
			trending   string
		)
		if err := rows.Scan(
			&rec.ID, &rec.Club, &rec.EventName, &rec.Description, &rec.Date,
			&rec.Total, &pos, &neu, &neg, &engagement,
			&topPos, &topNeg, &trending, &rec.PDFPath, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		rec.Counts = map[types.SentimentLabel]int{
			types.Positive: pos,
			types.Neutral:  neu,
			types.Negative: neg,
		}
		if engagement.Valid {
			v := engagement.Float64
			rec.Engagement = &v
		}
		if err := json.Unmarshal([]byte(topPos), &rec.TopPositive); err != nil {
			return nil, fmt.Errorf("decode top positive: %w", err)
		}
		if err := json.Unmarshal([]byte(topNeg), &rec.TopNegative); err != nil {
			return nil, fmt.Errorf("decode top negative: %w", err)
		}
		if err := json.Unmarshal([]byte(trending), &rec.Trending); err != nil {
			return nil, fmt.Errorf("decode trending: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
