package feed

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/scheduler"
)

var monday = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func scheduledItem(id string, startOffset, duration int) scheduler.Scheduled {
	return scheduler.Scheduled{
		Input: scheduler.Input{
			ID:              id,
			Code:            "K-" + id,
			Description:     "Brickwork " + id,
			Quantity:        decimal.NewFromInt(3),
			Unit:            "m2",
			Category:        "masonry",
			ProgressPercent: decimal.NewFromInt(50),
		},
		Start:    monday.AddDate(0, 0, startOffset),
		Finish:   monday.AddDate(0, 0, startOffset+duration-1),
		Duration: duration,
	}
}

func TestProjectPayload(t *testing.T) {
	links := []domain.DependencyLink{{ID: "l1", SourceID: "a", TargetID: "b", Type: "0"}}
	p := ProjectPayload([]scheduler.Scheduled{scheduledItem("a", 0, 2)}, links)

	require.Len(t, p.Data, 1)
	rec := p.Data[0]
	assert.Equal(t, "a", rec.ID)
	assert.Equal(t, "2025-06-16", rec.StartDate)
	assert.Equal(t, "2025-06-17", rec.FinishDate, "single-project mode carries finish_date")
	assert.Equal(t, 2, rec.Duration)
	assert.InDelta(t, 0.5, rec.Progress, 1e-9)
	assert.Equal(t, "3 m2", rec.Quantity)
	assert.Equal(t, "masonry", rec.Category)
	assert.Empty(t, rec.Parent)

	require.Len(t, p.Links, 1)
	assert.Equal(t, "l1", p.Links[0].ID)
}

func TestGlobalPayload(t *testing.T) {
	sections := []ProjectSection{
		{
			ProjectID: "p1",
			Name:      "Family house",
			Start:     monday,
			Items:     []scheduler.Scheduled{scheduledItem("a", 0, 2), scheduledItem("b", 2, 1)},
		},
		{ProjectID: "p2", Name: "Garage", Start: monday.AddDate(0, 0, 7)},
	}
	p := GlobalPayload(sections, nil)

	require.Len(t, p.Data, 4)

	group := p.Data[0]
	assert.Equal(t, "grp_p1", group.ID)
	assert.Equal(t, "Family house", group.Text)
	assert.Equal(t, "project", group.Type)
	assert.True(t, group.Readonly)
	assert.Empty(t, group.FinishDate, "global mode omits finish_date")

	task := p.Data[1]
	assert.Equal(t, "grp_p1", task.Parent)
	assert.False(t, task.Readonly)
	assert.Empty(t, task.FinishDate)

	assert.Equal(t, "grp_p2", p.Data[3].ID, "empty project still gets its group row")
	assert.NotNil(t, p.Links, "links list always present")
}

func TestGroupIDHelpers(t *testing.T) {
	assert.Equal(t, "grp_p1", GroupID("p1"))
	assert.True(t, IsGroupID("grp_p1"))
	assert.False(t, IsGroupID("p1"))
}
