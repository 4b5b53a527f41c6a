package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CatalogItem is a reusable budget template ("master item"). Line items copy
// its defaults at creation time; edits to a line item never flow back to the
// catalog.
type CatalogItem struct {
	ID          string
	Code        string // unique item number, e.g. "21-003-001"
	Description string
	Unit        string
	Category    string // trade, e.g. "masonry"

	// Rolled up from the component lists by RecalculateTotals.
	MaterialCost      decimal.Decimal
	LaborCost         decimal.Decimal
	MachineCost       decimal.Decimal
	LaborHoursPerUnit decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a catalog item cannot be stored without.
func (c *CatalogItem) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Code, validation.Required),
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.LaborHoursPerUnit, validation.By(nonNegative)),
	)
}

// TotalPrice is the full unit price of the template: material + labor +
// machine cost.
func (c *CatalogItem) TotalPrice() decimal.Decimal {
	return c.MaterialCost.Add(c.LaborCost).Add(c.MachineCost)
}

// MaterialComponent is one material row of a catalog item's build-up.
type MaterialComponent struct {
	ID            string
	CatalogItemID string
	MaterialID    string
	Amount        decimal.Decimal
}

// LaborComponent is one operation row of a catalog item's build-up.
type LaborComponent struct {
	ID            string
	CatalogItemID string
	OperationID   string
	Hours         decimal.Decimal
}

// MachineComponent is one machine row of a catalog item's build-up.
type MachineComponent struct {
	ID            string
	CatalogItemID string
	MachineID     string
	Amount        decimal.Decimal
}
