// Package postgres stores groups in a postgres table, one row per label.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.scnd.dev/open/grove/grouppath"
)

//go:embed migration/*.sql
var migrations embed.FS

type Store struct {
	Db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{
		Db: db,
	}
}

// Migrate applies the embedded goose migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("unable to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migration"); err != nil {
		return fmt.Errorf("unable to migrate: %w", err)
	}
	return nil
}

func (r *Store) ListLabels(ctx context.Context, typeTag string) ([]string, error) {
	query := `SELECT label FROM groups`
	args := make([]any, 0, 1)
	if typeTag != "" {
		query += ` WHERE type_tag = $1`
		args = append(args, typeTag)
	}

	rows, err := r.Db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unable to list labels: %w", err)
	}
	defer rows.Close()

	labels := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("unable to scan label: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

func (r *Store) CountByLabel(ctx context.Context, label string, typeTag string) (int64, error) {
	query := `SELECT COUNT(*) FROM groups WHERE label = $1`
	args := []any{label}
	if typeTag != "" {
		query += ` AND type_tag = $2`
		args = append(args, typeTag)
	}

	var count int64
	if err := r.Db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unable to count label: %w", err)
	}
	return count, nil
}

func (r *Store) GetByLabel(ctx context.Context, label string, typeTag string) (*grouppath.Group, error) {
	query := `SELECT id, label, type_tag, description FROM groups WHERE label = $1`
	args := []any{label}
	if typeTag != "" {
		query += ` AND type_tag = $2`
		args = append(args, typeTag)
	}
	query += ` ORDER BY id LIMIT 1`

	group, err := r.scan(r.Db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to get label: %w", err)
	}
	return group, nil
}

func (r *Store) GetOrCreateByLabel(ctx context.Context, label string, typeTag string) (*grouppath.Group, bool, error) {
	group, err := r.GetByLabel(ctx, label, typeTag)
	if err != nil {
		return nil, false, err
	}
	if group != nil {
		return group, false, nil
	}

	// * insert, tolerating a concurrent creation
	query := `INSERT INTO groups (label, type_tag) VALUES ($1, $2) ON CONFLICT (label, type_tag) DO NOTHING RETURNING id, label, type_tag, description`
	group, err = r.scan(r.Db.QueryRowContext(ctx, query, label, typeTag))
	if err == sql.ErrNoRows {
		group, err = r.GetByLabel(ctx, label, typeTag)
		if err != nil {
			return nil, false, err
		}
		return group, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("unable to create group: %w", err)
	}
	return group, true, nil
}

func (r *Store) SetDescription(ctx context.Context, group *grouppath.Group, description string) error {
	if _, err := r.Db.ExecContext(ctx, `UPDATE groups SET description = $1 WHERE id = $2`, description, *group.Id); err != nil {
		return fmt.Errorf("unable to set description: %w", err)
	}
	group.Description = &description
	return nil
}

func (r *Store) Delete(ctx context.Context, group *grouppath.Group) error {
	if _, err := r.Db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, *group.Id); err != nil {
		return fmt.Errorf("unable to delete group: %w", err)
	}
	return nil
}

func (r *Store) scan(row *sql.Row) (*grouppath.Group, error) {
	var id uint64
	var label string
	var typeTag string
	var description string
	if err := row.Scan(&id, &label, &typeTag, &description); err != nil {
		return nil, err
	}

	group := &grouppath.Group{
		Id:    &id,
		Label: &label,
	}
	if typeTag != "" {
		group.TypeTag = &typeTag
	}
	if description != "" {
		group.Description = &description
	}
	return group, nil
}
