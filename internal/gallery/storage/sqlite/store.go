// Package sqlite provides a SQLite-backed catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/gallery/storage"
	"github.com/louisbranch/portfolio/internal/gallery/storage/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/portfolio/internal/platform/storage/sqlitemigrate"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrDuplicateProject reports two catalog entries sharing one id.
var ErrDuplicateProject = errors.New("duplicate project id")

// Store persists the project catalog in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

// Open opens a SQLite catalog store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// OpenReadOnly opens an existing catalog store for reading. It applies no
// migrations and the connection rejects writes.
func OpenReadOnly(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=query_only(1)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListProjects returns every project ordered by catalog position.
func (s *Store) ListProjects(ctx context.Context) ([]gallery.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, name, link, category
		   FROM projects
		  ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []gallery.Project
	index := map[int]int{}
	for rows.Next() {
		var p gallery.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Link, &p.Category); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	if err := s.loadLists(ctx, `SELECT project_id, photo FROM project_photos ORDER BY project_id, position`, func(id int, value string) {
		if i, ok := index[id]; ok {
			projects[i].Photos = append(projects[i].Photos, value)
		}
	}); err != nil {
		return nil, fmt.Errorf("list project photos: %w", err)
	}
	if err := s.loadLists(ctx, `SELECT project_id, label FROM project_languages ORDER BY project_id, position`, func(id int, value string) {
		if i, ok := index[id]; ok {
			projects[i].Linguagems = append(projects[i].Linguagems, value)
		}
	}); err != nil {
		return nil, fmt.Errorf("list project languages: %w", err)
	}
	return projects, nil
}

func (s *Store) loadLists(ctx context.Context, query string, add func(id int, value string)) error {
	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		var value string
		if err := rows.Scan(&id, &value); err != nil {
			return err
		}
		add(id, value)
	}
	return rows.Err()
}

// ReplaceProjects deletes the stored catalog and writes projects in order.
func (s *Store) ReplaceProjects(ctx context.Context, projects []gallery.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace projects: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"project_languages", "project_photos", "projects"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	for position, p := range projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, position, name, link, category) VALUES (?, ?, ?, ?, ?)`,
			p.ID, position, p.Name, p.Link, p.Category,
		); err != nil {
			if isPrimaryKeyViolation(err) {
				return fmt.Errorf("project %d: %w", p.ID, ErrDuplicateProject)
			}
			return fmt.Errorf("insert project %d: %w", p.ID, err)
		}
		for i, photo := range p.Photos {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO project_photos (project_id, position, photo) VALUES (?, ?, ?)`,
				p.ID, i, photo,
			); err != nil {
				return fmt.Errorf("insert project %d photo: %w", p.ID, err)
			}
		}
		for i, label := range p.Linguagems {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO project_languages (project_id, position, label) VALUES (?, ?, ?)`,
				p.ID, i, label,
			); err != nil {
				return fmt.Errorf("insert project %d language: %w", p.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace projects: %w", err)
	}
	return nil
}

func isPrimaryKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") && strings.Contains(message, "projects.id")
}
