package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovari/costline/internal/calendar"
)

// 2025-06-16 is a Monday.
var monday = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return monday.AddDate(0, 0, offset)
}

func inputs(durations ...int) []Input {
	out := make([]Input, len(durations))
	for i, d := range durations {
		out[i] = Input{ID: string(rune('a' + i)), OrdinalLabel: string(rune('1' + i)), ComputedDurationDays: d}
	}
	return out
}

func TestChain_ThreeItemsFromMonday(t *testing.T) {
	got := Chain(inputs(2, 3, 1), monday)
	require.Len(t, got, 3)

	// Item 1: Mon-Tue.
	assert.Equal(t, monday, got[0].Start)
	assert.Equal(t, day(1), got[0].Finish)
	// Item 2: Wed-Fri.
	assert.Equal(t, day(2), got[1].Start)
	assert.Equal(t, day(4), got[1].Finish)
	// Item 3: next Monday, weekend skipped.
	assert.Equal(t, day(7), got[2].Start)
	assert.Equal(t, day(7), got[2].Finish)
}

func TestChain_NeverLandsOnWeekend(t *testing.T) {
	for startOffset := 0; startOffset < 7; startOffset++ {
		for _, durs := range [][]int{{1, 1, 1, 1, 1}, {3, 4, 2}, {10}, {2, 9, 1, 6}} {
			for _, s := range Chain(inputs(durs...), day(startOffset)) {
				assert.True(t, calendar.IsWorkday(s.Start), "start %s", s.Start)
				assert.True(t, calendar.IsWorkday(s.Finish), "finish %s", s.Finish)
			}
		}
	}
}

func TestChain_WeekendProjectStartCorrected(t *testing.T) {
	got := Chain(inputs(1), day(5)) // Saturday
	require.Len(t, got, 1)
	assert.Equal(t, day(7), got[0].Start)
}

func TestChain_ManualStartPinsItemOnly(t *testing.T) {
	pinned := day(14) // Monday two weeks out
	items := inputs(2, 3, 1)
	items[1].ManualStart = &pinned
	items[1].ManualDurationDays = 5

	got := Chain(items, monday)
	require.Len(t, got, 3)

	// Item 1 chains normally: Mon-Tue.
	assert.Equal(t, monday, got[0].Start)
	// Item 2 is pinned with its manual duration.
	assert.Equal(t, pinned, got[1].Start)
	assert.Equal(t, 5, got[1].Duration)
	assert.Equal(t, day(18), got[1].Finish)
	// Item 3 chains after the pinned item's finish, not after item 1.
	assert.Equal(t, day(21), got[2].Start)
}

func TestChain_ManualStartOnWeekendCorrected(t *testing.T) {
	pinned := day(5) // Saturday
	items := inputs(1)
	items[0].ManualStart = &pinned
	got := Chain(items, monday)
	assert.Equal(t, day(7), got[0].Start)
}

func TestResolveDuration(t *testing.T) {
	assert.Equal(t, 4, resolveDuration(Input{ComputedDurationDays: 4}))
	assert.Equal(t, 1, resolveDuration(Input{ComputedDurationDays: 0}), "minimum one day")
	assert.Equal(t, 1, resolveDuration(Input{ComputedDurationDays: -2}))

	// Manual duration needs a manual start to count.
	assert.Equal(t, 4, resolveDuration(Input{ComputedDurationDays: 4, ManualDurationDays: 9}))
	assert.Equal(t, 9, resolveDuration(Input{ComputedDurationDays: 4, ManualDurationDays: 9, ManualStart: &monday}))
	assert.Equal(t, 4, resolveDuration(Input{ComputedDurationDays: 4, ManualDurationDays: 0, ManualStart: &monday}))
}

func TestSortByOrdinal(t *testing.T) {
	items := []Input{
		{ID: "a", OrdinalLabel: "10"},
		{ID: "b", OrdinalLabel: "2"},
		{ID: "c", OrdinalLabel: "1"},
		{ID: "d", OrdinalLabel: ""},
	}
	SortByOrdinal(items)
	assert.Equal(t, []string{"d", "c", "b", "a"}, []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID})
}

func TestSortByOrdinal_UnparsableLabelSortsAsText(t *testing.T) {
	items := []Input{
		{ID: "a", OrdinalLabel: "zzz"},
		{ID: "b", OrdinalLabel: "5"},
	}
	SortByOrdinal(items)
	assert.Equal(t, "b", items[0].ID)
}
