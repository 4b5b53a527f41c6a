package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
)

// catalogColumns is the canonical SELECT column list for catalog_items.
const catalogColumns = `id, code, description, unit, category,
		material_cost, labor_cost, machine_cost, labor_hours_per_unit,
		created_at, updated_at`

// SQLiteCatalogItemRepo implements CatalogItemRepo using a SQLite database.
type SQLiteCatalogItemRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogItemRepo creates a new SQLiteCatalogItemRepo.
func NewSQLiteCatalogItemRepo(conn db.DBTX) *SQLiteCatalogItemRepo {
	return &SQLiteCatalogItemRepo{db: conn}
}

func (r *SQLiteCatalogItemRepo) Create(ctx context.Context, c *domain.CatalogItem) error {
	query := `INSERT INTO catalog_items (` + catalogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Code, c.Description, c.Unit, c.Category,
		c.MaterialCost.String(), c.LaborCost.String(), c.MachineCost.String(),
		c.LaborHoursPerUnit.String(),
		c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting catalog item: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) GetByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE id = ?`
	return r.scanCatalogItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCatalogItemRepo) GetByCode(ctx context.Context, code string) (*domain.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items WHERE code = ?`
	return r.scanCatalogItem(r.db.QueryRowContext(ctx, query, code))
}

func (r *SQLiteCatalogItemRepo) List(ctx context.Context) ([]*domain.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog_items ORDER BY code`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing catalog items: %w", err)
	}
	defer rows.Close()

	var items []*domain.CatalogItem
	for rows.Next() {
		c, err := r.scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog items: %w", err)
	}
	return items, nil
}

func (r *SQLiteCatalogItemRepo) Update(ctx context.Context, c *domain.CatalogItem) error {
	query := `UPDATE catalog_items SET code = ?, description = ?, unit = ?, category = ?,
		material_cost = ?, labor_cost = ?, machine_cost = ?, labor_hours_per_unit = ?,
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Code, c.Description, c.Unit, c.Category,
		c.MaterialCost.String(), c.LaborCost.String(), c.MachineCost.String(),
		c.LaborHoursPerUnit.String(),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating catalog item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("catalog item %s: %w", c.ID, sql.ErrNoRows)
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM catalog_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting catalog item: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) ListMaterialComponents(ctx context.Context, catalogItemID string) ([]domain.MaterialComponent, error) {
	query := `SELECT id, catalog_item_id, material_id, amount
		FROM catalog_material_components WHERE catalog_item_id = ?`
	rows, err := r.db.QueryContext(ctx, query, catalogItemID)
	if err != nil {
		return nil, fmt.Errorf("listing material components: %w", err)
	}
	defer rows.Close()

	var out []domain.MaterialComponent
	for rows.Next() {
		var c domain.MaterialComponent
		var amount string
		if err := rows.Scan(&c.ID, &c.CatalogItemID, &c.MaterialID, &amount); err != nil {
			return nil, fmt.Errorf("scanning material component: %w", err)
		}
		c.Amount = parseDec(amount)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogItemRepo) ListLaborComponents(ctx context.Context, catalogItemID string) ([]domain.LaborComponent, error) {
	query := `SELECT id, catalog_item_id, operation_id, hours
		FROM catalog_labor_components WHERE catalog_item_id = ?`
	rows, err := r.db.QueryContext(ctx, query, catalogItemID)
	if err != nil {
		return nil, fmt.Errorf("listing labor components: %w", err)
	}
	defer rows.Close()

	var out []domain.LaborComponent
	for rows.Next() {
		var c domain.LaborComponent
		var hours string
		if err := rows.Scan(&c.ID, &c.CatalogItemID, &c.OperationID, &hours); err != nil {
			return nil, fmt.Errorf("scanning labor component: %w", err)
		}
		c.Hours = parseDec(hours)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogItemRepo) ListMachineComponents(ctx context.Context, catalogItemID string) ([]domain.MachineComponent, error) {
	query := `SELECT id, catalog_item_id, machine_id, amount
		FROM catalog_machine_components WHERE catalog_item_id = ?`
	rows, err := r.db.QueryContext(ctx, query, catalogItemID)
	if err != nil {
		return nil, fmt.Errorf("listing machine components: %w", err)
	}
	defer rows.Close()

	var out []domain.MachineComponent
	for rows.Next() {
		var c domain.MachineComponent
		var amount string
		if err := rows.Scan(&c.ID, &c.CatalogItemID, &c.MachineID, &amount); err != nil {
			return nil, fmt.Errorf("scanning machine component: %w", err)
		}
		c.Amount = parseDec(amount)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogItemRepo) AddMaterialComponent(ctx context.Context, c *domain.MaterialComponent) error {
	query := `INSERT INTO catalog_material_components (id, catalog_item_id, material_id, amount)
		VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.CatalogItemID, c.MaterialID, c.Amount.String()); err != nil {
		return fmt.Errorf("inserting material component: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) AddLaborComponent(ctx context.Context, c *domain.LaborComponent) error {
	query := `INSERT INTO catalog_labor_components (id, catalog_item_id, operation_id, hours)
		VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.CatalogItemID, c.OperationID, c.Hours.String()); err != nil {
		return fmt.Errorf("inserting labor component: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) AddMachineComponent(ctx context.Context, c *domain.MachineComponent) error {
	query := `INSERT INTO catalog_machine_components (id, catalog_item_id, machine_id, amount)
		VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.CatalogItemID, c.MachineID, c.Amount.String()); err != nil {
		return fmt.Errorf("inserting machine component: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) DeleteComponent(ctx context.Context, componentID string) error {
	for _, table := range []string{
		"catalog_material_components",
		"catalog_labor_components",
		"catalog_machine_components",
	} {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, componentID); err != nil {
			return fmt.Errorf("deleting component from %s: %w", table, err)
		}
	}
	return nil
}

func (r *SQLiteCatalogItemRepo) scanCatalogItem(row rowScanner) (*domain.CatalogItem, error) {
	var c domain.CatalogItem
	var matCost, laborCost, machineCost, hours, createdAt, updatedAt string

	err := row.Scan(&c.ID, &c.Code, &c.Description, &c.Unit, &c.Category,
		&matCost, &laborCost, &machineCost, &hours, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning catalog item: %w", err)
	}

	c.MaterialCost = parseDec(matCost)
	c.LaborCost = parseDec(laborCost)
	c.MachineCost = parseDec(machineCost)
	c.LaborHoursPerUnit = parseDec(hours)
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	c.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &c, nil
}
