package costengine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mkovari/costline/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func testProject() *domain.Project {
	return &domain.Project{
		HourlyRate:  dec("5000"),
		HoursPerDay: dec("8"),
	}
}

func TestRecompute_ReferenceItem(t *testing.T) {
	// quantity 3, 2 h/unit, material 250, 60% own crew at 5000/h.
	item := &domain.BudgetLineItem{
		Quantity:             dec("3"),
		LaborHoursPerUnit:    dec("2"),
		MaterialUnitPrice:    dec("250"),
		LaborOwnSharePercent: dec("60"),
	}
	d := Recompute(item, testProject())

	assert.True(t, dec("750").Equal(d.MaterialTotal), "materialTotal got %s", d.MaterialTotal)
	assert.True(t, dec("6000").Equal(d.LaborRateOwnPerUnit), "own rate got %s", d.LaborRateOwnPerUnit)
	assert.True(t, dec("4000").Equal(d.LaborRateSubPerUnit), "sub rate got %s", d.LaborRateSubPerUnit)
	assert.True(t, dec("18000").Equal(d.LaborTotalOwn), "own total got %s", d.LaborTotalOwn)
	assert.True(t, dec("12000").Equal(d.LaborTotalSub), "sub total got %s", d.LaborTotalSub)
	assert.Equal(t, 1, d.ComputedDurationDays, "ceil(3*2/8)")
}

func TestRecompute_SplitConservesFullLabor(t *testing.T) {
	// own + sub always equals quantity * hourlyRate * hoursPerUnit, exactly.
	for _, share := range []string{"0", "12.5", "33.33", "50", "66.67", "100"} {
		item := &domain.BudgetLineItem{
			Quantity:             dec("7"),
			LaborHoursPerUnit:    dec("1.5"),
			MaterialUnitPrice:    dec("99.99"),
			LaborOwnSharePercent: dec(share),
		}
		d := Recompute(item, testProject())
		full := dec("7").Mul(dec("5000")).Mul(dec("1.5"))
		sum := d.LaborTotalOwn.Add(d.LaborTotalSub)
		assert.True(t, full.Equal(sum), "share=%s: %s != %s", share, sum, full)
	}
}

func TestRecompute_ZeroInputsYieldZeroTotals(t *testing.T) {
	item := &domain.BudgetLineItem{LaborOwnSharePercent: dec("100")}
	d := Recompute(item, testProject())
	assert.True(t, d.MaterialTotal.IsZero())
	assert.True(t, d.LaborTotalOwn.IsZero())
	assert.True(t, d.LaborTotalSub.IsZero())
	assert.Equal(t, 1, d.ComputedDurationDays)
}

func TestRecompute_OutOfRangeShareNotClamped(t *testing.T) {
	item := &domain.BudgetLineItem{
		Quantity:             dec("1"),
		LaborHoursPerUnit:    dec("1"),
		LaborOwnSharePercent: dec("150"),
	}
	d := Recompute(item, testProject())
	assert.True(t, dec("7500").Equal(d.LaborTotalOwn), "got %s", d.LaborTotalOwn)
	assert.True(t, dec("-2500").Equal(d.LaborTotalSub), "got %s", d.LaborTotalSub)
}

func TestDeriveDuration(t *testing.T) {
	cases := []struct {
		name     string
		qty, hpu string
		hpd      string
		want     int
	}{
		{"exact fit", "8", "1", "8", 1},
		{"rounds up", "9", "1", "8", 2},
		{"large job", "100", "2", "8", 25},
		{"fractional", "3", "2.5", "8", 1},
		{"minimum one day", "0", "0", "8", 1},
	}
	for _, tc := range cases {
		item := &domain.BudgetLineItem{
			Quantity:          dec(tc.qty),
			LaborHoursPerUnit: dec(tc.hpu),
		}
		p := &domain.Project{HourlyRate: dec("5000"), HoursPerDay: dec(tc.hpd)}
		d := Recompute(item, p)
		assert.Equal(t, tc.want, d.ComputedDurationDays, tc.name)
	}
}

func TestDeriveDuration_ZeroHoursPerDayKeepsPrevious(t *testing.T) {
	item := &domain.BudgetLineItem{
		Quantity:             dec("10"),
		LaborHoursPerUnit:    dec("4"),
		ComputedDurationDays: 5,
	}
	p := &domain.Project{HourlyRate: dec("5000"), HoursPerDay: decimal.Zero}
	d := Recompute(item, p)
	assert.Equal(t, 5, d.ComputedDurationDays, "hpd<=0 is a defensive no-op")
}

func TestDeriveDuration_ManualOverrideKeepsPrevious(t *testing.T) {
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	item := &domain.BudgetLineItem{
		Quantity:             dec("100"),
		LaborHoursPerUnit:    dec("2"),
		ComputedDurationDays: 3,
		ManualStartDate:      &start,
		ManualDurationDays:   7,
	}
	d := Recompute(item, testProject())
	assert.Equal(t, 3, d.ComputedDurationDays)
}

func TestSeedMaterialPrice(t *testing.T) {
	catalog := &domain.CatalogItem{MaterialCost: dec("120")}
	material := &domain.Material{Price: dec("99")}

	item := &domain.BudgetLineItem{}
	SeedMaterialPrice(item, catalog, nil)
	assert.True(t, dec("120").Equal(item.MaterialUnitPrice), "zero price seeds from catalog")

	item = &domain.BudgetLineItem{MaterialUnitPrice: dec("500")}
	SeedMaterialPrice(item, catalog, nil)
	assert.True(t, dec("500").Equal(item.MaterialUnitPrice), "manual price kept")

	item = &domain.BudgetLineItem{MaterialUnitPrice: dec("500")}
	SeedMaterialPrice(item, catalog, material)
	assert.True(t, dec("99").Equal(item.MaterialUnitPrice), "linked material always wins")
}
