package costengine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkovari/costline/internal/domain"
)

func TestRollupCatalogTotals(t *testing.T) {
	materials := map[string]*domain.Material{
		"brick":  {ID: "brick", Price: dec("150")},
		"mortar": {ID: "mortar", Price: dec("800")},
	}
	operations := map[string]*domain.Operation{
		"laying": {ID: "laying", HourlyRate: dec("4500")},
	}
	machines := map[string]*domain.Machine{
		"mixer": {ID: "mixer", Price: dec("2000")},
	}

	totals := RollupCatalogTotals(
		[]domain.MaterialComponent{
			{MaterialID: "brick", Amount: dec("60")},
			{MaterialID: "mortar", Amount: dec("0.05")},
		},
		[]domain.LaborComponent{
			{OperationID: "laying", Hours: dec("1.2")},
		},
		[]domain.MachineComponent{
			{MachineID: "mixer", Amount: dec("0.1")},
		},
		materials, operations, machines,
	)

	assert.True(t, dec("9040").Equal(totals.MaterialCost), "60*150 + 0.05*800, got %s", totals.MaterialCost)
	assert.True(t, dec("5400").Equal(totals.LaborCost), "1.2*4500, got %s", totals.LaborCost)
	assert.True(t, dec("200").Equal(totals.MachineCost), "0.1*2000, got %s", totals.MachineCost)
	assert.True(t, dec("1.2").Equal(totals.LaborHoursPerUnit))
}

func TestRollupCatalogTotals_MissingResourceIgnored(t *testing.T) {
	totals := RollupCatalogTotals(
		[]domain.MaterialComponent{{MaterialID: "gone", Amount: dec("10")}},
		[]domain.LaborComponent{{OperationID: "gone", Hours: dec("2")}},
		nil, nil, nil, nil,
	)
	assert.True(t, totals.MaterialCost.IsZero())
	assert.True(t, totals.LaborCost.IsZero())
	assert.True(t, dec("2").Equal(totals.LaborHoursPerUnit), "hours still counted")
}
