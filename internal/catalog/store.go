// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists fetched documents in a local SQLite index so
// they can be searched offline after download.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/LokendraNath/Dodoment-Managment-System/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "catalog.db"
)

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Entry is one cataloged document.
type Entry struct {
	DocID        string
	Name         string
	MajorHead    string
	MinorHead    string
	Remarks      string
	Tags         []string
	DocumentDate string
	SourceURL    string
	LocalPath    string
	Strategy     string
	FetchedAt    time.Time
}

// NewStore opens or creates the catalog database at
// catalogDir/index/catalog.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.CatalogDir
	if dir == "" {
		dir = "catalog"
	}
	dbDir := filepath.Join(dir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			doc_id TEXT NOT NULL UNIQUE,
			name TEXT,
			major_head TEXT,
			minor_head TEXT,
			remarks TEXT,
			tags TEXT,
			document_date TEXT,
			source_url TEXT,
			local_path TEXT,
			strategy TEXT,
			fetched_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_major_head ON documents(major_head)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='documents_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE documents_fts USING fts5(name, remarks, tags, content=documents, content_rowid=rowid)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO documents_fts(rowid, name, remarks, tags) VALUES (new.rowid, new.name, new.remarks, new.tags);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, name, remarks, tags) VALUES('delete', old.rowid, old.name, old.remarks, old.tags);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, name, remarks, tags) VALUES('delete', old.rowid, old.name, old.remarks, old.tags);
				INSERT INTO documents_fts(rowid, name, remarks, tags) VALUES (new.rowid, new.name, new.remarks, new.tags);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}
	return nil
}

// Record upserts a fetched document. sourceURL, localPath, and strategy
// come from the retrieval outcome.
func (s *Store) Record(ctx context.Context, doc types.DocumentRecord, sourceURL, localPath, strategy string) error {
	docID := string(doc.ID)
	if docID == "" {
		// Fall back to the local path so re-fetches still dedupe.
		docID = localPath
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (doc_id, name, major_head, minor_head, remarks, tags, document_date, source_url, local_path, strategy, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET
			name=excluded.name,
			major_head=excluded.major_head,
			minor_head=excluded.minor_head,
			remarks=excluded.remarks,
			tags=excluded.tags,
			document_date=excluded.document_date,
			source_url=excluded.source_url,
			local_path=excluded.local_path,
			strategy=excluded.strategy,
			fetched_at=excluded.fetched_at`,
		docID, doc.Name, doc.MajorHead, doc.MinorHead, doc.Remarks,
		strings.Join(doc.TagNames(), ","), doc.DocumentDate,
		sourceURL, localPath, strategy,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording document: %w", err)
	}
	return nil
}

// Query searches the catalog. A non-empty text query runs against the
// FTS index over name, remarks, and tags; category narrows by major head.
// An empty query lists the most recently fetched documents.
func (s *Store) Query(ctx context.Context, text, category string) ([]Entry, error) {
	var (
		rows *sql.Rows
		err  error
	)

	const columns = `d.doc_id, d.name, d.major_head, d.minor_head, d.remarks, d.tags,
		d.document_date, d.source_url, d.local_path, d.strategy, d.fetched_at`

	switch {
	case text != "" && category != "":
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+columns+` FROM documents_fts f
			JOIN documents d ON d.rowid = f.rowid
			WHERE documents_fts MATCH ? AND d.major_head = ?
			ORDER BY rank LIMIT ?`, ftsQuery(text), category, s.maxResults)
	case text != "":
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+columns+` FROM documents_fts f
			JOIN documents d ON d.rowid = f.rowid
			WHERE documents_fts MATCH ?
			ORDER BY rank LIMIT ?`, ftsQuery(text), s.maxResults)
	case category != "":
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+columns+` FROM documents d
			WHERE d.major_head = ?
			ORDER BY d.fetched_at DESC LIMIT ?`, category, s.maxResults)
	default:
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+columns+` FROM documents d
			ORDER BY d.fetched_at DESC LIMIT ?`, s.maxResults)
	}
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var tags, fetchedAt string
		if err := rows.Scan(&e.DocID, &e.Name, &e.MajorHead, &e.MinorHead, &e.Remarks,
			&tags, &e.DocumentDate, &e.SourceURL, &e.LocalPath, &e.Strategy, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if tags != "" {
			e.Tags = strings.Split(tags, ",")
		}
		if t, parseErr := time.Parse(time.RFC3339, fetchedAt); parseErr == nil {
			e.FetchedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of cataloged documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM documents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return n, nil
}

// ftsQuery quotes each term so user input cannot inject FTS5 operators.
func ftsQuery(text string) string {
	terms := strings.Fields(text)
	for i, t := range terms {
		terms[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	return strings.Join(terms, " ")
}
