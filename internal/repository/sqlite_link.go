package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
)

// SQLiteLinkRepo implements LinkRepo using a SQLite database.
type SQLiteLinkRepo struct {
	db db.DBTX
}

// NewSQLiteLinkRepo creates a new SQLiteLinkRepo.
func NewSQLiteLinkRepo(conn db.DBTX) *SQLiteLinkRepo {
	return &SQLiteLinkRepo{db: conn}
}

func (r *SQLiteLinkRepo) Create(ctx context.Context, l *domain.DependencyLink) error {
	query := `INSERT INTO dependency_links (id, source_id, target_id, type) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, l.ID, l.SourceID, l.TargetID, l.Type); err != nil {
		return fmt.Errorf("inserting dependency link: %w", err)
	}
	return nil
}

func (r *SQLiteLinkRepo) GetByID(ctx context.Context, id string) (*domain.DependencyLink, error) {
	var l domain.DependencyLink
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source_id, target_id, type FROM dependency_links WHERE id = ?`, id).
		Scan(&l.ID, &l.SourceID, &l.TargetID, &l.Type)
	if err != nil {
		return nil, fmt.Errorf("scanning dependency link: %w", err)
	}
	return &l, nil
}

func (r *SQLiteLinkRepo) ListByProject(ctx context.Context, projectID string) ([]domain.DependencyLink, error) {
	query := `SELECT l.id, l.source_id, l.target_id, l.type
		FROM dependency_links l
		JOIN line_items b ON l.source_id = b.id
		WHERE b.project_id = ?`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing links by project: %w", err)
	}
	defer rows.Close()
	return r.scanLinks(rows)
}

func (r *SQLiteLinkRepo) ListAll(ctx context.Context) ([]domain.DependencyLink, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, source_id, target_id, type FROM dependency_links`)
	if err != nil {
		return nil, fmt.Errorf("listing links: %w", err)
	}
	defer rows.Close()
	return r.scanLinks(rows)
}

func (r *SQLiteLinkRepo) Update(ctx context.Context, l *domain.DependencyLink) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dependency_links SET source_id = ?, target_id = ?, type = ? WHERE id = ?`,
		l.SourceID, l.TargetID, l.Type, l.ID)
	if err != nil {
		return fmt.Errorf("updating dependency link: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("dependency link %s: %w", l.ID, sql.ErrNoRows)
	}
	return nil
}

func (r *SQLiteLinkRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dependency_links WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting dependency link: %w", err)
	}
	return nil
}

func (r *SQLiteLinkRepo) scanLinks(rows *sql.Rows) ([]domain.DependencyLink, error) {
	var links []domain.DependencyLink
	for rows.Next() {
		var l domain.DependencyLink
		if err := rows.Scan(&l.ID, &l.SourceID, &l.TargetID, &l.Type); err != nil {
			return nil, fmt.Errorf("scanning dependency link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependency links: %w", err)
	}
	return links, nil
}
