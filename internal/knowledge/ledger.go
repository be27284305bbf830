// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/knowledge-manager/pkg/types"
)

const defaultHistoryLimit = 20

// Ledger is an append-only SQLite audit trail of ingests. It is advisory:
// the JSON files and the in-memory index remain the store of record, and
// searches never consult it.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens or creates the ledger database at path and ensures the
// schema exists.
func OpenLedger(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS ingests (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		document_id TEXT NOT NULL,
		query TEXT NOT NULL,
		model TEXT,
		path TEXT NOT NULL,
		ingested_at TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record appends one ingest entry for doc, persisted at path.
func (l *Ledger) Record(ctx context.Context, doc *types.Document, path string) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO ingests (document_id, query, model, path, ingested_at)
		 VALUES (?, ?, ?, ?, ?)`,
		doc.ID, doc.Metadata.Query, doc.Metadata.Model, path,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting ingest record: %w", err)
	}
	return nil
}

// IngestRecord is one row of the ledger.
type IngestRecord struct {
	DocumentID string    `json:"document_id" yaml:"document_id"`
	Query      string    `json:"query" yaml:"query"`
	Model      string    `json:"model,omitempty" yaml:"model,omitempty"`
	Path       string    `json:"path" yaml:"path"`
	IngestedAt time.Time `json:"ingested_at" yaml:"ingested_at"`
}

// History returns up to limit ledger entries, newest first. A limit of
// zero or less uses the default.
func (l *Ledger) History(ctx context.Context, limit int) ([]IngestRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT document_id, query, model, path, ingested_at
		 FROM ingests ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	var records []IngestRecord
	for rows.Next() {
		var (
			rec   IngestRecord
			model sql.NullString
			at    string
		)
		if err := rows.Scan(&rec.DocumentID, &rec.Query, &model, &rec.Path, &at); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if model.Valid {
			rec.Model = model.String
		}
		t, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parsing ingest timestamp %q: %w", at, err)
		}
		rec.IngestedAt = t
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Ledger exposes the store's ledger for history queries.
func (s *Store) Ledger() *Ledger {
	return s.ledger
}
