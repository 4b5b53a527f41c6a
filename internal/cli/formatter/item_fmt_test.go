package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/testutil"
)

func TestFormatItemTable(t *testing.T) {
	items := []*domain.BudgetLineItem{
		testutil.NewTestLineItem("p1", "Brickwork",
			testutil.WithOrdinal("1"),
			testutil.WithQuantity("3")),
	}
	items[0].MaterialTotal = testutil.Dec("750")
	items[0].LaborTotalOwn = testutil.Dec("18000")
	items[0].ComputedDurationDays = 2

	out := FormatItemTable(items)
	assert.Contains(t, out, "Brickwork")
	assert.Contains(t, out, "18 000")
	assert.Contains(t, out, "750")
}

func TestFormatItemTable_ManualDurationMarked(t *testing.T) {
	start := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	items := []*domain.BudgetLineItem{
		testutil.NewTestLineItem("p1", "Plastering",
			testutil.WithOrdinal("2"),
			testutil.WithManualSchedule(start, 4)),
	}

	out := FormatItemTable(items)
	assert.Contains(t, out, "4*")
}

func TestFormatTimeline_GlobalGroups(t *testing.T) {
	outPayload := FormatTimeline(sampleGlobalPayload())
	assert.Contains(t, outPayload, "Family house")
	assert.Contains(t, outPayload, "Brickwork")
	assert.Contains(t, outPayload, "2025-06-16")
}
