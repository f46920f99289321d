package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iamvkosarev/role-distributor-bot/internal/model"
	_ "modernc.org/sqlite"
)

// RoleStorage persists (username, role) assignments in a single
// sqlite table. Every call round-trips to the database; there is no
// in-memory cache.
type RoleStorage struct {
	db *sql.DB
}

func NewRoleStorage(path string) (*RoleStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Single writer; sqlite serializes writes anyway.
	db.SetMaxOpenConns(1)

	storage := &RoleStorage{db: db}
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return storage, nil
}

func (s *RoleStorage) Close() error {
	return s.db.Close()
}

func (s *RoleStorage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS roles (
		username TEXT NOT NULL,
		role TEXT NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_username_role
		ON roles (username, LOWER(role));
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// Add inserts an assignment. Inserting a pair that already exists
// case-insensitively on role is a no-op, not an error.
func (s *RoleStorage) Add(ctx context.Context, username, role string) error {
	_, err := s.db.ExecContext(
		ctx, `INSERT OR IGNORE INTO roles (username, role) VALUES (?, ?)`, username, role,
	)
	if err != nil {
		return fmt.Errorf("failed to add assignment: %w", err)
	}
	return nil
}

// Remove deletes the exact (username, role) row. Removing an absent
// pair is a no-op.
func (s *RoleStorage) Remove(ctx context.Context, username, role string) error {
	_, err := s.db.ExecContext(
		ctx, `DELETE FROM roles WHERE username = ? AND role = ?`, username, role,
	)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}

// RemoveRole deletes the role from every holder.
func (s *RoleStorage) RemoveRole(ctx context.Context, role string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM roles WHERE role = ?`, role)
	if err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}
	return nil
}

// ListRoles returns the distinct role strings in use, ordered for a
// stable keyboard layout.
func (s *RoleStorage) ListRoles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT role FROM roles ORDER BY role`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows)
}

// UsersWithRole returns the distinct holders of the exact role string.
func (s *RoleStorage) UsersWithRole(ctx context.Context, role string) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx, `SELECT DISTINCT username FROM roles WHERE role = ? ORDER BY username`, role,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with role: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows)
}

// UsersWithRoleFold is UsersWithRole with case-insensitive role
// matching, used by the mention resolver.
func (s *RoleStorage) UsersWithRoleFold(ctx context.Context, role string) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx, `SELECT DISTINCT username FROM roles WHERE LOWER(role) = LOWER(?) ORDER BY username`, role,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with role: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows)
}

// RolesOfUser returns every role of a lowercase username.
func (s *RoleStorage) RolesOfUser(ctx context.Context, username string) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx, `SELECT role FROM roles WHERE username = ? ORDER BY role`, username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles of user: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows)
}

// Report returns every role with its member list for the roster view.
func (s *RoleStorage) Report(ctx context.Context) ([]model.RoleGroup, error) {
	rows, err := s.db.QueryContext(
		ctx, `SELECT role, username FROM roles ORDER BY role, username`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build role report: %w", err)
	}
	defer rows.Close()

	var groups []model.RoleGroup
	for rows.Next() {
		var role, username string
		if err := rows.Scan(&role, &username); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		if len(groups) == 0 || groups[len(groups)-1].Role != role {
			groups = append(groups, model.RoleGroup{Role: role})
		}
		last := &groups[len(groups)-1]
		last.Members = append(last.Members, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report rows: %w", err)
	}
	return groups, nil
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return out, nil
}
