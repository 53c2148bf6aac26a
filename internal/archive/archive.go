// Package archive copies standup entries into a SQLite database so they can
// be queried outside the markdown files.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/faizmokh/standup/internal/standup"

	_ "modernc.org/sqlite"
)

// Store is an open archive database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the archive at path and initializes the schema.
func Open(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		date        TEXT PRIMARY KEY,
		exported_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tasks (
		date     TEXT NOT NULL REFERENCES entries(date) ON DELETE CASCADE,
		section  TEXT NOT NULL,
		position INTEGER NOT NULL,
		body     TEXT NOT NULL,
		PRIMARY KEY (date, section, position)
	);
	CREATE INDEX IF NOT EXISTS idx_tasks_section ON tasks(section, date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Export upserts every entry in list. An entry already in the archive has
// its tasks replaced. It returns the number of entries written.
func (s *Store) Export(ctx context.Context, list *standup.EntryList) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	now := s.now().UTC().Format(time.RFC3339Nano)
	written := 0
	for _, entry := range list.Entries() {
		date := entry.Date.Format(standup.DateLayout)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entries (date, exported_at) VALUES (?, ?)
			 ON CONFLICT(date) DO UPDATE SET exported_at = excluded.exported_at`,
			date, now,
		); err != nil {
			return 0, fmt.Errorf("export %s: %w", date, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE date = ?`, date); err != nil {
			return 0, fmt.Errorf("export %s: %w", date, err)
		}
		for _, section := range standup.Sections() {
			for i, task := range entry.Tasks(section) {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO tasks (date, section, position, body) VALUES (?, ?, ?, ?)`,
					date, section.String(), i, task,
				); err != nil {
					return 0, fmt.Errorf("export %s: %w", date, err)
				}
			}
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit export: %w", err)
	}
	return written, nil
}

// Entries reads back the archived entries dated between from and to
// inclusive, ascending. Zero bounds are open.
func (s *Store) Entries(ctx context.Context, from, to time.Time) (*standup.EntryList, error) {
	lo, hi := "0000-00-00", "9999-99-99"
	if !from.IsZero() {
		lo = from.Format(standup.DateLayout)
	}
	if !to.IsZero() {
		hi = to.Format(standup.DateLayout)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT e.date, t.section, t.body
		   FROM entries e
		   LEFT JOIN tasks t ON t.date = e.date
		  WHERE e.date BETWEEN ? AND ?
		  ORDER BY e.date, t.section, t.position`,
		lo, hi,
	)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	list := standup.NewEntryList()
	var current *standup.Entry
	for rows.Next() {
		var (
			date    string
			section sql.NullString
			body    sql.NullString
		)
		if err := rows.Scan(&date, &section, &body); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if current == nil || current.Date.Format(standup.DateLayout) != date {
			parsed, err := time.ParseInLocation(standup.DateLayout, date, time.Local)
			if err != nil {
				return nil, fmt.Errorf("archived date %q: %w", date, err)
			}
			if current, err = standup.NewEntry(parsed, nil, nil, nil, nil); err != nil {
				return nil, err
			}
			list.Append(current)
		}
		if !section.Valid {
			continue
		}
		sec, err := standup.ParseSection(section.String)
		if err != nil {
			return nil, fmt.Errorf("archived entry %s: %w", date, err)
		}
		current.SetTasks(sec, append(current.Tasks(sec), body.String))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
