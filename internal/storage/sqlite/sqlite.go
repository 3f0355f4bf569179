// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface. It is an embedded document store: each
// collection is a table holding one JSON document per row, and filters and
// sort keys are evaluated with SQLite's JSON functions.
//
// It needs no server, which makes it the default for local development and
// the backend used by the handler tests (with the ":memory:" path).
package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/aanand-mishra/school-cms-api/internal/storage"
	"github.com/aanand-mishra/school-cms-api/internal/types"
	"github.com/google/uuid"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"
)

// Collection and field names are interpolated into SQL, so they are
// restricted to plain identifiers.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB

	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	tables map[string]bool
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at storagePath and returns a ready-to-use
// *SQLite. Tables are created on first use of each collection.
func New(storagePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// An in-memory database lives and dies with its connection; a single
	// connection also serialises writers, which SQLite requires anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: ping: %w", err)
	}

	return &SQLite{
		Db:     db,
		now:    time.Now,
		newID:  uuid.NewString,
		tables: make(map[string]bool),
	}, nil
}

// ensureTable creates the table backing collection if it does not exist.
//
// Schema:
//
//	seq        insertion order, used as the final tie-breaker
//	id         the document id exposed as "_id"
//	doc        the JSON document
//	created_at creation time in unix nanoseconds, used for sorting
func (s *SQLite) ensureTable(ctx context.Context, collection string) error {
	if !identifier.MatchString(collection) {
		return fmt.Errorf("invalid collection name %q", collection)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables[collection] {
		return nil
	}

	_, err := s.Db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s" (
			seq        INTEGER PRIMARY KEY AUTOINCREMENT,
			id         TEXT    NOT NULL UNIQUE,
			doc        TEXT    NOT NULL,
			created_at INTEGER NOT NULL
		)
	`, collection))
	if err != nil {
		return fmt.Errorf("create table %s: %w", collection, err)
	}

	s.tables[collection] = true
	return nil
}

// Insert stamps doc and stores it as a new row.
func (s *SQLite) Insert(ctx context.Context, collection string, doc types.Document) error {
	if err := s.ensureTable(ctx, collection); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}

	// Millisecond precision matches what MongoDB keeps.
	now := s.now().UTC().Truncate(time.Millisecond)
	id := s.newID()
	doc.Stamp(id, now)

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("Insert: encode document: %w", err)
	}

	stmt, err := s.Db.PrepareContext(ctx,
		fmt.Sprintf(`INSERT INTO "%s" (id, doc, created_at) VALUES (?, ?, ?)`, collection),
	)
	if err != nil {
		return fmt.Errorf("Insert: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, id, string(body), now.UnixNano()); err != nil {
		return fmt.Errorf("Insert: exec: %w", err)
	}

	return nil
}

// Find runs q against collection and decodes the matching documents into
// out, a pointer to a slice.
func (s *SQLite) Find(ctx context.Context, collection string, q storage.Query, out any) error {
	if err := s.ensureTable(ctx, collection); err != nil {
		return fmt.Errorf("Find: %w", err)
	}

	query, args, err := buildSelect(collection, q)
	if err != nil {
		return fmt.Errorf("Find: %w", err)
	}

	rows, err := s.Db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("Find: query: %w", err)
	}
	defer rows.Close()

	// The rows are already JSON; stitching them into one array lets
	// encoding/json decode into whatever slice type the caller passed.
	var buf bytes.Buffer
	buf.WriteByte('[')
	for n := 0; rows.Next(); n++ {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return fmt.Errorf("Find: scan row: %w", err)
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(doc)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("Find: rows iteration: %w", err)
	}
	buf.WriteByte(']')

	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("Find: decode documents: %w", err)
	}

	return nil
}

// FindByID decodes the document with the given id into out.
func (s *SQLite) FindByID(ctx context.Context, collection string, id string, out any) error {
	if err := s.ensureTable(ctx, collection); err != nil {
		return fmt.Errorf("FindByID: %w", err)
	}

	var doc string
	err := s.Db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT doc FROM "%s" WHERE id = ? LIMIT 1`, collection), id,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("FindByID: scan: %w", err)
	}

	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("FindByID: decode document: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close(context.Context) error {
	return s.Db.Close()
}

// buildSelect translates q into a SELECT over the collection table.
func buildSelect(collection string, q storage.Query) (string, []any, error) {
	column := "doc"
	if len(q.Omit) > 0 {
		paths := make([]string, 0, len(q.Omit))
		for _, f := range q.Omit {
			if !identifier.MatchString(f) {
				return "", nil, fmt.Errorf("invalid field name %q", f)
			}
			paths = append(paths, fmt.Sprintf("'$.%s'", f))
		}
		column = fmt.Sprintf("json_remove(doc, %s)", strings.Join(paths, ", "))
	}

	var (
		where []string
		args  []any
	)
	for _, c := range q.Filter {
		if !identifier.MatchString(c.Field) {
			return "", nil, fmt.Errorf("invalid field name %q", c.Field)
		}
		where = append(where, "json_extract(doc, ?) = ?")
		args = append(args, "$."+c.Field, sqlValue(c.Value))
	}

	order := make([]string, 0, len(q.Sort)+1)
	for _, k := range q.Sort {
		expr := "created_at"
		if k.Field != storage.CreatedAt {
			if !identifier.MatchString(k.Field) {
				return "", nil, fmt.Errorf("invalid field name %q", k.Field)
			}
			expr = fmt.Sprintf("json_extract(doc, '$.%s')", k.Field)
		}
		if k.Desc {
			expr += " DESC"
		}
		order = append(order, expr)
	}
	order = append(order, "seq DESC")

	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT %s FROM "%s"`, column, collection)
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY " + strings.Join(order, ", "))

	return sb.String(), args, nil
}

// sqlValue converts a filter value to what json_extract yields for it.
// JSON booleans come back from json_extract as the integers 1 and 0.
func sqlValue(v any) any {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}
