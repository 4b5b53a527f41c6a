package costengine

import (
	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/domain"
)

// CatalogTotals is the rolled-up price block of a catalog item.
type CatalogTotals struct {
	MaterialCost      decimal.Decimal
	LaborCost         decimal.Decimal
	MachineCost       decimal.Decimal
	LaborHoursPerUnit decimal.Decimal
}

// RollupCatalogTotals sums a catalog item's component lists into its fixed
// unit costs. Components referencing a missing resource contribute nothing.
func RollupCatalogTotals(
	materialComponents []domain.MaterialComponent,
	laborComponents []domain.LaborComponent,
	machineComponents []domain.MachineComponent,
	materials map[string]*domain.Material,
	operations map[string]*domain.Operation,
	machines map[string]*domain.Machine,
) CatalogTotals {
	var t CatalogTotals
	for _, c := range materialComponents {
		if m := materials[c.MaterialID]; m != nil {
			t.MaterialCost = t.MaterialCost.Add(c.Amount.Mul(m.Price))
		}
	}
	for _, c := range laborComponents {
		t.LaborHoursPerUnit = t.LaborHoursPerUnit.Add(c.Hours)
		if op := operations[c.OperationID]; op != nil {
			t.LaborCost = t.LaborCost.Add(c.Hours.Mul(op.HourlyRate))
		}
	}
	for _, c := range machineComponents {
		if m := machines[c.MachineID]; m != nil {
			t.MachineCost = t.MachineCost.Add(c.Amount.Mul(m.Price))
		}
	}
	return t
}
