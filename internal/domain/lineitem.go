package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetLineItem is a project's purchased instance of a catalog item (or a
// free-standing row). The derived field block is always a pure function of
// the cost inputs and the parent project's rates at the moment of the last
// recompute; it is never hand-edited.
type BudgetLineItem struct {
	ID            string
	ProjectID     string
	CatalogItemID *string
	MaterialID    *string

	OrdinalLabel string // free-text ordering key, e.g. "12" or "3-A"
	Description  string
	Unit         string
	Category     string
	Responsible  string
	Owner        string // subcontractor display name
	Note         string

	// Cost inputs
	Quantity             decimal.Decimal
	LaborHoursPerUnit    decimal.Decimal
	MaterialUnitPrice    decimal.Decimal
	LaborOwnSharePercent decimal.Decimal // remainder is the subcontractor share
	ProgressPercent      decimal.Decimal

	// Schedule inputs
	ManualStartDate    *time.Time
	ManualDurationDays int

	// Derived
	MaterialTotal        decimal.Decimal
	LaborRateOwnPerUnit  decimal.Decimal
	LaborRateSubPerUnit  decimal.Decimal
	LaborTotalOwn        decimal.Decimal
	LaborTotalSub        decimal.Decimal
	ComputedDurationDays int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasManualSchedule reports whether the user pinned this item on the
// timeline. A pinned item keeps its own start and duration instead of
// chaining after its predecessor; later items chain from its finish.
func (b *BudgetLineItem) HasManualSchedule() bool {
	return b.ManualStartDate != nil && b.ManualDurationDays > 0
}

// LaborTotal is own-crew plus subcontractor labor for the row.
func (b *BudgetLineItem) LaborTotal() decimal.Decimal {
	return b.LaborTotalOwn.Add(b.LaborTotalSub)
}

// RowTotal is the full cost of the row: material plus all labor.
func (b *BudgetLineItem) RowTotal() decimal.Decimal {
	return b.MaterialTotal.Add(b.LaborTotal())
}
