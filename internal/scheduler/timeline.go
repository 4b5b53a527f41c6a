// Package scheduler turns an ordered set of budget line items into a
// working-calendar timeline. Chaining is a single fold over a pre-sorted
// sequence: each unpinned item starts the workday after the previous item
// finishes. Dependency links never constrain the computed dates; they are
// carried to the client for visualization only.
package scheduler

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/calendar"
	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/naturalorder"
)

// Input is one schedulable line item with the display fields the timeline
// carries through to the feed.
type Input struct {
	ID           string
	OrdinalLabel string
	Code         string
	Description  string
	Quantity     decimal.Decimal
	Unit         string
	Category     string
	Responsible  string
	Owner        string

	ProgressPercent      decimal.Decimal
	ComputedDurationDays int
	ManualStart          *time.Time
	ManualDurationDays   int
}

// Scheduled is a placed timeline entry.
type Scheduled struct {
	Input
	Start    time.Time
	Finish   time.Time
	Duration int
}

// FromLineItem builds a scheduler input from a stored line item.
func FromLineItem(b *domain.BudgetLineItem, code string) Input {
	return Input{
		ID:                   b.ID,
		OrdinalLabel:         b.OrdinalLabel,
		Code:                 code,
		Description:          b.Description,
		Quantity:             b.Quantity,
		Unit:                 b.Unit,
		Category:             b.Category,
		Responsible:          b.Responsible,
		Owner:                b.Owner,
		ProgressPercent:      b.ProgressPercent,
		ComputedDurationDays: b.ComputedDurationDays,
		ManualStart:          b.ManualStartDate,
		ManualDurationDays:   b.ManualDurationDays,
	}
}

// SortByOrdinal orders inputs by the natural order of their ordinal labels,
// so "2" comes before "10". The sort is stable; equal labels keep their
// stored order.
func SortByOrdinal(items []Input) {
	sort.SliceStable(items, func(i, j int) bool {
		return naturalorder.Less(items[i].OrdinalLabel, items[j].OrdinalLabel)
	})
}

// Chain places pre-sorted items on the calendar, starting the chain at the
// first workday on or after projectStart. Pinned items (manual start) keep
// their own position and still advance the pointer, so later unpinned items
// chain from the pinned item's finish.
func Chain(items []Input, projectStart time.Time) []Scheduled {
	pointer := calendar.NextWorkday(projectStart)
	out := make([]Scheduled, 0, len(items))
	for _, item := range items {
		duration := resolveDuration(item)

		start := pointer
		if item.ManualStart != nil {
			start = *item.ManualStart
		}
		start = calendar.NextWorkday(start)
		finish := calendar.AddWorkdays(start, duration)

		pointer = calendar.NextWorkday(finish.AddDate(0, 0, 1))

		out = append(out, Scheduled{Input: item, Start: start, Finish: finish, Duration: duration})
	}
	return out
}

// resolveDuration prefers a manual override (only valid together with a
// manual start); otherwise the stored computed duration, minimum one day.
func resolveDuration(item Input) int {
	if item.ManualStart != nil && item.ManualDurationDays > 0 {
		return item.ManualDurationDays
	}
	if item.ComputedDurationDays < 1 {
		return 1
	}
	return item.ComputedDurationDays
}
