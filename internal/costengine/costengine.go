// Package costengine recomputes the derived financial fields of a budget
// line item. Recompute is a pure function; the persistence layer calls it
// inside the same transaction as the triggering field write and stores the
// result. All arithmetic is exact decimal, so currency totals never drift.
package costengine

import (
	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Derived is the recomputed field block of a line item.
type Derived struct {
	MaterialTotal        decimal.Decimal
	LaborRateOwnPerUnit  decimal.Decimal
	LaborRateSubPerUnit  decimal.Decimal
	LaborTotalOwn        decimal.Decimal
	LaborTotalSub        decimal.Decimal
	ComputedDurationDays int
}

// Apply writes the derived block onto the item.
func (d Derived) Apply(item *domain.BudgetLineItem) {
	item.MaterialTotal = d.MaterialTotal
	item.LaborRateOwnPerUnit = d.LaborRateOwnPerUnit
	item.LaborRateSubPerUnit = d.LaborRateSubPerUnit
	item.LaborTotalOwn = d.LaborTotalOwn
	item.LaborTotalSub = d.LaborTotalSub
	item.ComputedDurationDays = d.ComputedDurationDays
}

// Recompute derives the financial fields from the item's cost inputs and the
// parent project's rates.
//
// The own/subcontractor share is not clamped here: an out-of-range
// percentage is an upstream validation defect and must stay visible in the
// totals rather than being silently corrected.
func Recompute(item *domain.BudgetLineItem, project *domain.Project) Derived {
	qty := item.Quantity
	price := item.MaterialUnitPrice
	share := item.LaborOwnSharePercent.Div(hundred)

	fullLaborUnitRate := project.HourlyRate.Mul(item.LaborHoursPerUnit)

	d := Derived{
		MaterialTotal:       qty.Mul(price),
		LaborRateOwnPerUnit: fullLaborUnitRate.Mul(share),
		LaborRateSubPerUnit: fullLaborUnitRate.Mul(decimal.NewFromInt(1).Sub(share)),
	}
	d.LaborTotalOwn = qty.Mul(d.LaborRateOwnPerUnit)
	d.LaborTotalSub = qty.Mul(d.LaborRateSubPerUnit)
	d.ComputedDurationDays = deriveDuration(item, project)
	return d
}

// deriveDuration computes ceil(quantity * laborHoursPerUnit / hoursPerDay),
// minimum one day. A manual schedule override or a non-positive hoursPerDay
// leaves the previous value untouched.
func deriveDuration(item *domain.BudgetLineItem, project *domain.Project) int {
	if item.HasManualSchedule() {
		return item.ComputedDurationDays
	}
	if project.HoursPerDay.Sign() <= 0 {
		return item.ComputedDurationDays
	}
	totalHours := item.Quantity.Mul(item.LaborHoursPerUnit)
	days := int(totalHours.Div(project.HoursPerDay).Ceil().IntPart())
	if days < 1 {
		days = 1
	}
	return days
}

// SeedMaterialPrice resolves the effective material unit price before a
// recompute. A linked material's price always wins; otherwise a zero price
// is seeded from the catalog item's rolled-up material cost.
func SeedMaterialPrice(item *domain.BudgetLineItem, catalog *domain.CatalogItem, material *domain.Material) {
	if material != nil {
		item.MaterialUnitPrice = material.Price
		return
	}
	if item.MaterialUnitPrice.IsZero() && catalog != nil {
		item.MaterialUnitPrice = catalog.MaterialCost
	}
}
