package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkovari/costline/internal/feed"
)

func sampleGlobalPayload() feed.Payload {
	return feed.Payload{
		Data: []feed.Record{
			{ID: "grp_p1", Text: "Family house", StartDate: "2025-06-16", Type: "project", Readonly: true},
			{ID: "i1", Code: "21-003-001", Text: "Brickwork", StartDate: "2025-06-16",
				Duration: 2, Progress: 0.5, Parent: "grp_p1", Responsible: "Kiss J."},
		},
	}
}

func TestProgressPill(t *testing.T) {
	assert.Contains(t, progressPill(0), "0%")
	assert.Contains(t, progressPill(0.5), "50%")
	assert.Contains(t, progressPill(1), "100%")
}

func TestFormatTimeline_ProjectView(t *testing.T) {
	p := feed.Payload{
		Data: []feed.Record{
			{ID: "i1", Code: "21-003-001", Text: "Brickwork",
				StartDate: "2025-06-16", FinishDate: "2025-06-17", Duration: 2},
		},
	}
	out := FormatTimeline(p)
	assert.Contains(t, out, "21-003-001")
	assert.Contains(t, out, "2025-06-17")
}
