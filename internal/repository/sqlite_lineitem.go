package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
)

// lineItemColumns is the canonical SELECT column list for line_items.
const lineItemColumns = `id, project_id, catalog_item_id, material_id,
		ordinal_label, description, unit, category, responsible, owner, note,
		quantity, labor_hours_per_unit, material_unit_price,
		labor_own_share_pct, progress_pct,
		manual_start_date, manual_duration_days,
		material_total, labor_rate_own_per_unit, labor_rate_sub_per_unit,
		labor_total_own, labor_total_sub, computed_duration_days,
		created_at, updated_at`

// SQLiteLineItemRepo implements LineItemRepo using a SQLite database.
type SQLiteLineItemRepo struct {
	db db.DBTX
}

// NewSQLiteLineItemRepo creates a new SQLiteLineItemRepo.
func NewSQLiteLineItemRepo(conn db.DBTX) *SQLiteLineItemRepo {
	return &SQLiteLineItemRepo{db: conn}
}

func (r *SQLiteLineItemRepo) Create(ctx context.Context, b *domain.BudgetLineItem) error {
	query := `INSERT INTO line_items (` + lineItemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, r.writeArgs(b)...)
	if err != nil {
		return fmt.Errorf("inserting line item: %w", err)
	}
	return nil
}

func (r *SQLiteLineItemRepo) GetByID(ctx context.Context, id string) (*domain.BudgetLineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM line_items WHERE id = ?`
	return r.scanLineItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteLineItemRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetLineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM line_items WHERE project_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}
	defer rows.Close()
	return r.scanLineItems(rows)
}

func (r *SQLiteLineItemRepo) OrdinalLabels(ctx context.Context, projectID string) ([]string, error) {
	query := `SELECT ordinal_label FROM line_items WHERE project_id = ?`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing ordinal labels: %w", err)
	}
	defer rows.Close()
	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scanning ordinal label: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

func (r *SQLiteLineItemRepo) Update(ctx context.Context, b *domain.BudgetLineItem) error {
	query := `UPDATE line_items SET
		project_id = ?, catalog_item_id = ?, material_id = ?,
		ordinal_label = ?, description = ?, unit = ?, category = ?,
		responsible = ?, owner = ?, note = ?,
		quantity = ?, labor_hours_per_unit = ?, material_unit_price = ?,
		labor_own_share_pct = ?, progress_pct = ?,
		manual_start_date = ?, manual_duration_days = ?,
		material_total = ?, labor_rate_own_per_unit = ?, labor_rate_sub_per_unit = ?,
		labor_total_own = ?, labor_total_sub = ?, computed_duration_days = ?,
		created_at = ?, updated_at = ?
		WHERE id = ?`
	args := append(r.writeArgs(b)[1:], b.ID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating line item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("line item %s: %w", b.ID, sql.ErrNoRows)
	}
	return nil
}

func (r *SQLiteLineItemRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM line_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting line item: %w", err)
	}
	return nil
}

// writeArgs returns the column values in lineItemColumns order.
func (r *SQLiteLineItemRepo) writeArgs(b *domain.BudgetLineItem) []any {
	return []any{
		b.ID,
		b.ProjectID,
		nullableStrToValue(b.CatalogItemID),
		nullableStrToValue(b.MaterialID),
		b.OrdinalLabel,
		b.Description,
		b.Unit,
		b.Category,
		b.Responsible,
		b.Owner,
		b.Note,
		b.Quantity.String(),
		b.LaborHoursPerUnit.String(),
		b.MaterialUnitPrice.String(),
		b.LaborOwnSharePercent.String(),
		b.ProgressPercent.String(),
		nullableTimeToString(b.ManualStartDate, dateLayout),
		b.ManualDurationDays,
		b.MaterialTotal.String(),
		b.LaborRateOwnPerUnit.String(),
		b.LaborRateSubPerUnit.String(),
		b.LaborTotalOwn.String(),
		b.LaborTotalSub.String(),
		b.ComputedDurationDays,
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	}
}

func (r *SQLiteLineItemRepo) scanLineItem(row rowScanner) (*domain.BudgetLineItem, error) {
	var b domain.BudgetLineItem
	var catalogID, materialID, manualStart sql.NullString
	var qty, hpu, price, share, progress string
	var matTotal, rateOwn, rateSub, totalOwn, totalSub string
	var createdAt, updatedAt string

	err := row.Scan(&b.ID, &b.ProjectID, &catalogID, &materialID,
		&b.OrdinalLabel, &b.Description, &b.Unit, &b.Category,
		&b.Responsible, &b.Owner, &b.Note,
		&qty, &hpu, &price, &share, &progress,
		&manualStart, &b.ManualDurationDays,
		&matTotal, &rateOwn, &rateSub, &totalOwn, &totalSub, &b.ComputedDurationDays,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning line item: %w", err)
	}

	b.CatalogItemID = strPtrFromNull(catalogID)
	b.MaterialID = strPtrFromNull(materialID)
	b.Quantity = parseDec(qty)
	b.LaborHoursPerUnit = parseDec(hpu)
	b.MaterialUnitPrice = parseDec(price)
	b.LaborOwnSharePercent = parseDec(share)
	b.ProgressPercent = parseDec(progress)
	b.ManualStartDate = parseNullableTime(manualStart, dateLayout)
	b.MaterialTotal = parseDec(matTotal)
	b.LaborRateOwnPerUnit = parseDec(rateOwn)
	b.LaborRateSubPerUnit = parseDec(rateSub)
	b.LaborTotalOwn = parseDec(totalOwn)
	b.LaborTotalSub = parseDec(totalSub)
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	b.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &b, nil
}

func (r *SQLiteLineItemRepo) scanLineItems(rows *sql.Rows) ([]*domain.BudgetLineItem, error) {
	var items []*domain.BudgetLineItem
	for rows.Next() {
		b, err := r.scanLineItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating line items: %w", err)
	}
	return items, nil
}
