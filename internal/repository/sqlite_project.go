package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
)

// projectColumns is the canonical SELECT column list for projects.
const projectColumns = `id, name, status, location, contact_name, client,
		hourly_rate, hours_per_day, vat_rate, budget, start_date, end_date,
		created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Status),
		p.Location,
		p.ContactName,
		p.Client,
		p.HourlyRate.String(),
		p.HoursPerDay.String(),
		p.VATRate.String(),
		nullableDecToValue(p.Budget),
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()
	return r.scanProjects(rows)
}

func (r *SQLiteProjectRepo) ListSchedulable(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE status != 'pending_deletion'
		ORDER BY start_date IS NULL, start_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedulable projects: %w", err)
	}
	defer rows.Close()
	return r.scanProjects(rows)
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, status = ?, location = ?, contact_name = ?,
		client = ?, hourly_rate = ?, hours_per_day = ?, vat_rate = ?, budget = ?,
		start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		string(p.Status),
		p.Location,
		p.ContactName,
		p.Client,
		p.HourlyRate.String(),
		p.HoursPerDay.String(),
		p.VATRate.String(),
		nullableDecToValue(p.Budget),
		nullableTimeToString(p.StartDate, dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, sql.ErrNoRows)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteProjectRepo) scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var status, hourlyRate, hoursPerDay, vatRate, createdAt, updatedAt string
	var budget, startDate, endDate sql.NullString

	err := row.Scan(&p.ID, &p.Name, &status, &p.Location, &p.ContactName, &p.Client,
		&hourlyRate, &hoursPerDay, &vatRate, &budget, &startDate, &endDate,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(status)
	p.HourlyRate = parseDec(hourlyRate)
	p.HoursPerDay = parseDec(hoursPerDay)
	p.VATRate = parseDec(vatRate)
	p.Budget = decPtrFromNull(budget)
	p.StartDate = parseNullableTime(startDate, dateLayout)
	p.EndDate = parseNullableTime(endDate, dateLayout)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

func (r *SQLiteProjectRepo) scanProjects(rows *sql.Rows) ([]*domain.Project, error) {
	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}
