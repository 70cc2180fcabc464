// Package history provides durable SQLite-backed storage for chat messages
// and their parse results. Persistence lives here, on the caller's side of
// the pipeline: the parsing core itself never retains anything, so stored
// raw text can always be re-parsed under different options.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/andydunkin/launchkit-frontend/internal/message"
)

// Record is one stored assistant message with its parse result.
type Record struct {
	ID        int64          `json:"id"`
	Project   string         `json:"project"`
	Raw       string         `json:"raw"`
	Result    message.Parsed `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}

// Store provides persistence for message records.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	project    TEXT NOT NULL,
	raw        TEXT NOT NULL,
	result     TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT '',
	has_code   INTEGER NOT NULL DEFAULT 0,
	file_count INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_project ON messages(project, created_at);
`

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores a raw message and its parse result under a project name and
// returns the assigned record ID.
func (s *Store) Save(project, raw string, result message.Parsed) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("history store is nil")
	}
	if project == "" {
		return 0, errors.New("project name is required")
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("encoding parse result: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		INSERT INTO messages (project, raw, result, status, has_code, file_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		project, raw, string(encoded), string(result.DeploymentStatus),
		result.HasCode, len(result.FilesGenerated), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("fetch message id: %w", err)
	}
	return id, nil
}

// Get returns a single record by ID.
func (s *Store) Get(id int64) (*Record, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("history store is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var rec Record
	var encoded string
	err := s.db.QueryRow(`
		SELECT id, project, raw, result, created_at FROM messages WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Project, &rec.Raw, &encoded, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("message %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch message %d: %w", id, err)
	}

	if err := json.Unmarshal([]byte(encoded), &rec.Result); err != nil {
		return nil, fmt.Errorf("decoding parse result for message %d: %w", id, err)
	}
	return &rec, nil
}

// List returns the most recent records, newest first, optionally filtered
// by project. A limit of 0 means a default of 50.
func (s *Store) List(project string, limit int) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("history store is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT id, project, raw, result, created_at FROM messages`
	args := []interface{}{}
	if project != "" {
		query += ` WHERE project = ?`
		args = append(args, project)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var encoded string
		if err := rows.Scan(&rec.ID, &rec.Project, &rec.Raw, &encoded, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &rec.Result); err != nil {
			return nil, fmt.Errorf("decoding parse result for message %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return records, nil
}
