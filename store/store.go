// Package store keeps the most recent transcript and analysis report in SQLite.
// Each save replaces the previous row; there is no history.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
)

const schema = `
CREATE TABLE IF NOT EXISTS latest_transcript (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	topic           TEXT,
	transcript_json TEXT NOT NULL,
	saved_at        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS latest_report (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	report_id     TEXT NOT NULL,
	report_json   TEXT NOT NULL,
	analyzed_file TEXT,
	created_at    TEXT NOT NULL
);
`

// ErrNotFound is returned when nothing has been saved yet.
var ErrNotFound = errors.New("store: not found")

// Stored is the latest report with its bookkeeping.
type Stored struct {
	ID           string
	Report       *debate.Report
	AnalyzedFile string
	CreatedAt    time.Time
}

// Store persists the latest transcript and report.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTranscript replaces the stored transcript.
func (s *Store) SaveTranscript(t *orchestrator.Transcript) error {
	body, err := json.Marshal(t.Utterances)
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO latest_transcript (id, topic, transcript_json, saved_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET topic = excluded.topic,
		   transcript_json = excluded.transcript_json, saved_at = excluded.saved_at`,
		t.Topic, string(body), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}

// LatestTranscript returns the last saved transcript or ErrNotFound.
func (s *Store) LatestTranscript() (*orchestrator.Transcript, error) {
	var (
		topic sql.NullString
		body  string
	)
	err := s.db.QueryRow(`SELECT topic, transcript_json FROM latest_transcript WHERE id = 1`).Scan(&topic, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	t := &orchestrator.Transcript{Topic: topic.String}
	if err := json.Unmarshal([]byte(body), &t.Utterances); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return t, nil
}

// SaveReport replaces the stored report and returns its new ID.
func (s *Store) SaveReport(rep *debate.Report, analyzedFile string) (string, error) {
	body, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	id := uuid.New().String()
	_, err = s.db.Exec(
		`INSERT INTO latest_report (id, report_id, report_json, analyzed_file, created_at) VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET report_id = excluded.report_id, report_json = excluded.report_json,
		   analyzed_file = excluded.analyzed_file, created_at = excluded.created_at`,
		id, string(body), analyzedFile, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return id, nil
}

// LatestReport returns the last saved report or ErrNotFound.
func (s *Store) LatestReport() (*Stored, error) {
	var (
		out       Stored
		body      string
		file      sql.NullString
		createdAt string
	)
	err := s.db.QueryRow(
		`SELECT report_id, report_json, analyzed_file, created_at FROM latest_report WHERE id = 1`,
	).Scan(&out.ID, &body, &file, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}
	out.Report = new(debate.Report)
	if err := json.Unmarshal([]byte(body), out.Report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	out.AnalyzedFile = file.String
	out.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &out, nil
}
