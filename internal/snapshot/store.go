// Package snapshot writes walked ClickUp hierarchies into a SQLite file.
// Every export gets its own rows, so one file can hold many exports.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/modelingevolution/clickup/internal/hierarchy"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

// schema is applied on every open.
const schema = `
CREATE TABLE IF NOT EXISTS exports (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    uuid         TEXT NOT NULL UNIQUE,
    workspace_id TEXT NOT NULL,
    with_tasks   INTEGER NOT NULL DEFAULT 0,
    exported_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workspaces (
    export_id INTEGER NOT NULL REFERENCES exports(id) ON DELETE CASCADE,
    id        TEXT NOT NULL,
    name      TEXT,
    PRIMARY KEY (export_id, id)
);

CREATE TABLE IF NOT EXISTS spaces (
    export_id    INTEGER NOT NULL REFERENCES exports(id) ON DELETE CASCADE,
    id           TEXT NOT NULL,
    workspace_id TEXT NOT NULL,
    name         TEXT NOT NULL,
    private      INTEGER NOT NULL DEFAULT 0,
    archived     INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (export_id, id)
);

CREATE TABLE IF NOT EXISTS folders (
    export_id  INTEGER NOT NULL REFERENCES exports(id) ON DELETE CASCADE,
    id         TEXT NOT NULL,
    space_id   TEXT NOT NULL,
    name       TEXT NOT NULL,
    hidden     INTEGER NOT NULL DEFAULT 0,
    archived   INTEGER NOT NULL DEFAULT 0,
    task_count TEXT,
    PRIMARY KEY (export_id, id)
);

CREATE TABLE IF NOT EXISTS lists (
    export_id  INTEGER NOT NULL REFERENCES exports(id) ON DELETE CASCADE,
    id         TEXT NOT NULL,
    space_id   TEXT NOT NULL,
    folder_id  TEXT,
    name       TEXT NOT NULL,
    archived   INTEGER NOT NULL DEFAULT 0,
    task_count INTEGER,
    due_date   TEXT,
    PRIMARY KEY (export_id, id)
);

CREATE INDEX IF NOT EXISTS idx_lists_folder ON lists(export_id, folder_id);

CREATE TABLE IF NOT EXISTS tasks (
    export_id    INTEGER NOT NULL REFERENCES exports(id) ON DELETE CASCADE,
    id           TEXT NOT NULL,
    list_id      TEXT NOT NULL,
    parent_id    TEXT,
    name         TEXT NOT NULL,
    status       TEXT,
    priority     TEXT,
    archived     INTEGER NOT NULL DEFAULT 0,
    date_created TEXT,
    date_updated TEXT,
    due_date     TEXT,
    url          TEXT,
    PRIMARY KEY (export_id, id)
);

CREATE INDEX IF NOT EXISTS idx_tasks_list ON tasks(export_id, list_id);
`

// Export describes one saved walk.
type Export struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	WorkspaceID string    `json:"workspace_id"`
	WithTasks   bool      `json:"with_tasks"`
	ExportedAt  time.Time `json:"exported_at"`
}

// Store is a SQLite snapshot file.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the snapshot file at path and applies the schema.
// path may be ":memory:".
func Open(path string) (*Store, error) {
	connStr := path
	if !strings.Contains(path, "?") {
		connStr += "?"
	} else {
		connStr += "&"
	}
	connStr += "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the tree as a new export in a single transaction and returns
// the export ID.
func (s *Store) Save(ctx context.Context, tree *hierarchy.Tree) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO exports (uuid, workspace_id, with_tasks, exported_at) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), tree.WorkspaceID, tree.WithTasks, s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert export: %w", err)
	}
	exportID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get export ID: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO workspaces (export_id, id, name) VALUES (?, ?, ?)`,
		exportID, tree.WorkspaceID, nullString(tree.WorkspaceName),
	); err != nil {
		return 0, fmt.Errorf("failed to insert workspace: %w", err)
	}

	w := &txWriter{ctx: ctx, tx: tx, exportID: exportID}
	for _, sn := range tree.Spaces {
		w.space(tree.WorkspaceID, sn)
	}
	if w.err != nil {
		return 0, w.err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit export: %w", err)
	}
	return exportID, nil
}

// txWriter inserts tree nodes and keeps the first error.
type txWriter struct {
	ctx      context.Context
	tx       *sql.Tx
	exportID int64
	err      error
}

func (w *txWriter) exec(what, query string, args ...interface{}) {
	if w.err != nil {
		return
	}
	if _, err := w.tx.ExecContext(w.ctx, query, append([]interface{}{w.exportID}, args...)...); err != nil {
		w.err = fmt.Errorf("failed to insert %s: %w", what, err)
	}
}

func (w *txWriter) space(workspaceID string, sn *hierarchy.SpaceNode) {
	sp := sn.Space
	w.exec("space "+sp.ID,
		`INSERT INTO spaces (export_id, id, workspace_id, name, private, archived) VALUES (?, ?, ?, ?, ?, ?)`,
		sp.ID, workspaceID, sp.Name, sp.Private, sp.Archived)

	for _, fn := range sn.Folders {
		f := fn.Folder
		w.exec("folder "+f.ID,
			`INSERT INTO folders (export_id, id, space_id, name, hidden, archived, task_count) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			f.ID, sp.ID, f.Name, f.Hidden, f.Archived, nullString(f.TaskCount))
		for _, ln := range fn.Lists {
			w.list(sp.ID, f.ID, ln)
		}
	}
	for _, ln := range sn.Lists {
		w.list(sp.ID, "", ln)
	}
}

func (w *txWriter) list(spaceID, folderID string, ln *hierarchy.ListNode) {
	l := ln.List
	var taskCount sql.NullInt64
	if l.TaskCount != nil {
		taskCount = sql.NullInt64{Int64: int64(*l.TaskCount), Valid: true}
	}
	w.exec("list "+l.ID,
		`INSERT INTO lists (export_id, id, space_id, folder_id, name, archived, task_count, due_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, spaceID, nullString(folderID), l.Name, l.Archived, taskCount, millisColumn(l.DueDate))

	for _, t := range ln.Tasks {
		w.task(l.ID, t)
	}
}

func (w *txWriter) task(listID string, t clickup.Task) {
	var status, priority sql.NullString
	if t.Status != nil {
		status = nullString(t.Status.Status)
	}
	if t.Priority != nil {
		priority = nullString(t.Priority.Priority)
	}
	w.exec("task "+t.ID,
		`INSERT INTO tasks (export_id, id, list_id, parent_id, name, status, priority, archived,
		                    date_created, date_updated, due_date, url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, listID, ptrString(t.Parent), t.Name, status, priority, t.Archived,
		millisColumn(t.DateCreated), millisColumn(t.DateUpdated), millisColumn(t.DueDate), ptrString(t.URL))
}

// Counts returns per-kind row counts for an export.
func (s *Store) Counts(ctx context.Context, exportID int64) (hierarchy.Counts, error) {
	var c hierarchy.Counts
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM spaces  WHERE export_id = ?),
			(SELECT COUNT(*) FROM folders WHERE export_id = ?),
			(SELECT COUNT(*) FROM lists   WHERE export_id = ?),
			(SELECT COUNT(*) FROM tasks   WHERE export_id = ?)`,
		exportID, exportID, exportID, exportID,
	).Scan(&c.Spaces, &c.Folders, &c.Lists, &c.Tasks)
	if err != nil {
		return hierarchy.Counts{}, fmt.Errorf("failed to count export %d: %w", exportID, err)
	}
	return c, nil
}

// Export returns the metadata of an export.
func (s *Store) Export(ctx context.Context, exportID int64) (*Export, error) {
	var e Export
	var exportedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, uuid, workspace_id, with_tasks, exported_at FROM exports WHERE id = ?`, exportID,
	).Scan(&e.ID, &e.UUID, &e.WorkspaceID, &e.WithTasks, &exportedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("export %d not found", exportID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get export %d: %w", exportID, err)
	}

	e.ExportedAt, err = time.Parse(time.RFC3339, exportedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid exported_at %q: %w", exportedAt, err)
	}
	return &e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func ptrString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return nullString(*s)
}

// millisColumn stores a ClickUp millisecond timestamp as RFC 3339 text.
func millisColumn(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	t, ok := clickup.ParseMillis(*s)
	if !ok {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}
