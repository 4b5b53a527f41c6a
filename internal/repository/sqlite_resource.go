package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
)

// SQLiteResourceRepo implements ResourceRepo over the materials, operations
// and machines reference tables.
type SQLiteResourceRepo struct {
	db db.DBTX
}

// NewSQLiteResourceRepo creates a new SQLiteResourceRepo.
func NewSQLiteResourceRepo(conn db.DBTX) *SQLiteResourceRepo {
	return &SQLiteResourceRepo{db: conn}
}

func (r *SQLiteResourceRepo) CreateMaterial(ctx context.Context, m *domain.Material) error {
	query := `INSERT INTO materials (id, name, unit, price) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Unit, m.Price.String()); err != nil {
		return fmt.Errorf("inserting material: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) GetMaterial(ctx context.Context, id string) (*domain.Material, error) {
	var m domain.Material
	var price string
	err := r.db.QueryRowContext(ctx, `SELECT id, name, unit, price FROM materials WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Unit, &price)
	if err != nil {
		return nil, fmt.Errorf("scanning material: %w", err)
	}
	m.Price = parseDec(price)
	return &m, nil
}

func (r *SQLiteResourceRepo) ListMaterials(ctx context.Context) ([]*domain.Material, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, unit, price FROM materials ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()

	var out []*domain.Material
	for rows.Next() {
		var m domain.Material
		var price string
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &price); err != nil {
			return nil, fmt.Errorf("scanning material: %w", err)
		}
		m.Price = parseDec(price)
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *SQLiteResourceRepo) UpdateMaterial(ctx context.Context, m *domain.Material) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE materials SET name = ?, unit = ?, price = ? WHERE id = ?`,
		m.Name, m.Unit, m.Price.String(), m.ID)
	if err != nil {
		return fmt.Errorf("updating material: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("material %s: %w", m.ID, sql.ErrNoRows)
	}
	return nil
}

func (r *SQLiteResourceRepo) CreateOperation(ctx context.Context, o *domain.Operation) error {
	query := `INSERT INTO operations (id, name, hourly_rate) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, o.ID, o.Name, o.HourlyRate.String()); err != nil {
		return fmt.Errorf("inserting operation: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) ListOperations(ctx context.Context) ([]*domain.Operation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, hourly_rate FROM operations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Operation
	for rows.Next() {
		var o domain.Operation
		var rate string
		if err := rows.Scan(&o.ID, &o.Name, &rate); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		o.HourlyRate = parseDec(rate)
		out = append(out, &o)
	}
	return out, rows.Err()
}

func (r *SQLiteResourceRepo) CreateMachine(ctx context.Context, m *domain.Machine) error {
	query := `INSERT INTO machines (id, name, price) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Price.String()); err != nil {
		return fmt.Errorf("inserting machine: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) ListMachines(ctx context.Context) ([]*domain.Machine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, price FROM machines ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing machines: %w", err)
	}
	defer rows.Close()

	var out []*domain.Machine
	for rows.Next() {
		var m domain.Machine
		var price string
		if err := rows.Scan(&m.ID, &m.Name, &price); err != nil {
			return nil, fmt.Errorf("scanning machine: %w", err)
		}
		m.Price = parseDec(price)
		out = append(out, &m)
	}
	return out, rows.Err()
}
