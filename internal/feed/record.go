// Package feed is the boundary adapter between the scheduler's computed
// timeline and the interactive Gantt client. Reads serialize the timeline as
// a flat record list plus a link list; writes arrive one mutation per call,
// parsed into a tagged variant before anything touches storage.
package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/scheduler"
)

const dateLayout = "2006-01-02"

// GroupIDPrefix marks synthetic project rows in the global timeline. Group
// records are read-only; mutations targeting them are rejected.
const GroupIDPrefix = "grp_"

// GroupID returns the synthetic record id for a project's group row.
func GroupID(projectID string) string {
	return GroupIDPrefix + projectID
}

// IsGroupID reports whether id names a synthetic group record.
func IsGroupID(id string) bool {
	return strings.HasPrefix(id, GroupIDPrefix)
}

// Record is one row of the timeline payload.
type Record struct {
	ID          string  `json:"id"`
	Code        string  `json:"code,omitempty"`
	Text        string  `json:"text"`
	StartDate   string  `json:"start_date"`
	FinishDate  string  `json:"finish_date,omitempty"`
	Duration    int     `json:"duration,omitempty"`
	Progress    float64 `json:"progress"`
	Open        bool    `json:"open"`
	Quantity    string  `json:"quantity,omitempty"`
	Category    string  `json:"category,omitempty"`
	Responsible string  `json:"responsible,omitempty"`
	Owner       string  `json:"owner,omitempty"`
	Parent      string  `json:"parent,omitempty"`
	Type        string  `json:"type,omitempty"`
	Readonly    bool    `json:"readonly,omitempty"`
}

// Link is one dependency row of the payload.
type Link struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// Payload is the full read contract: records plus links.
type Payload struct {
	Data  []Record `json:"data"`
	Links []Link   `json:"links"`
}

// ProjectSection is one project's slice of the global timeline.
type ProjectSection struct {
	ProjectID string
	Name      string
	Start     time.Time
	Items     []scheduler.Scheduled
}

// ProjectPayload serializes a single project's timeline. Records carry the
// finish date; there is no group row.
func ProjectPayload(scheduled []scheduler.Scheduled, links []domain.DependencyLink) Payload {
	p := Payload{Data: make([]Record, 0, len(scheduled)), Links: linkRows(links)}
	for _, s := range scheduled {
		rec := taskRecord(s, "")
		rec.FinishDate = s.Finish.Format(dateLayout)
		p.Data = append(p.Data, rec)
	}
	return p
}

// GlobalPayload serializes the multi-project timeline: one read-only group
// row per project, followed by that project's items parented under it.
func GlobalPayload(sections []ProjectSection, links []domain.DependencyLink) Payload {
	var p Payload
	p.Links = linkRows(links)
	for _, sec := range sections {
		p.Data = append(p.Data, Record{
			ID:        GroupID(sec.ProjectID),
			Code:      "PROJECT",
			Text:      sec.Name,
			StartDate: sec.Start.Format(dateLayout),
			Type:      "project",
			Readonly:  true,
		})
		for _, s := range sec.Items {
			p.Data = append(p.Data, taskRecord(s, GroupID(sec.ProjectID)))
		}
	}
	if p.Data == nil {
		p.Data = []Record{}
	}
	return p
}

func taskRecord(s scheduler.Scheduled, parent string) Record {
	return Record{
		ID:          s.ID,
		Code:        s.Code,
		Text:        s.Description,
		StartDate:   s.Start.Format(dateLayout),
		Duration:    s.Duration,
		Progress:    progressFraction(s.ProgressPercent),
		Open:        true,
		Quantity:    quantityDisplay(s.Quantity, s.Unit),
		Category:    s.Category,
		Responsible: s.Responsible,
		Owner:       s.Owner,
		Parent:      parent,
	}
}

func progressFraction(percent decimal.Decimal) float64 {
	f, _ := percent.Div(decimal.NewFromInt(100)).Float64()
	return f
}

func quantityDisplay(qty decimal.Decimal, unit string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", qty.String(), unit))
}

func linkRows(links []domain.DependencyLink) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		out = append(out, Link{ID: l.ID, Source: l.SourceID, Target: l.TargetID, Type: l.Type})
	}
	return out
}
