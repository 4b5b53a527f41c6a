package naturalorder

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLess_NumericRuns(t *testing.T) {
	assert.True(t, Less("1", "2"))
	assert.True(t, Less("2", "10"))
	assert.True(t, Less("9", "10"))
	assert.False(t, Less("10", "9"))
	assert.False(t, Less("10", "10"))
}

func TestLess_MixedLabels(t *testing.T) {
	assert.True(t, Less("3-A", "3-B"))
	assert.True(t, Less("3-B", "12"))
	assert.True(t, Less("item-2", "item-10"))
	assert.True(t, Less("A1", "a2"), "case-insensitive")
}

func TestLess_EmptySortsFirst(t *testing.T) {
	assert.True(t, Less("", "1"))
	assert.True(t, Less("", "a"))
	assert.False(t, Less("1", ""))
	assert.False(t, Less("", ""))
}

func TestKey_UnparsableLabelIsLiteralText(t *testing.T) {
	k := Key("???")
	assert.Len(t, k, 1)
	assert.False(t, k[0].IsNum)
	assert.Equal(t, "???", k[0].Str)
}

func TestKey_HugeDigitRunFallsBackToText(t *testing.T) {
	k := Key("99999999999999999999999999")
	assert.Len(t, k, 1)
	assert.False(t, k[0].IsNum)
}

func TestSort_Canonical(t *testing.T) {
	labels := []string{"item-2", "item-10", "item-1"}
	sort.Slice(labels, func(i, j int) bool { return Less(labels[i], labels[j]) })
	assert.Equal(t, []string{"item-1", "item-2", "item-10"}, labels)
}

func TestSort_NumericLabels(t *testing.T) {
	labels := []string{"10", "2", "1", "11", "3"}
	sort.Slice(labels, func(i, j int) bool { return Less(labels[i], labels[j]) })
	assert.Equal(t, []string{"1", "2", "3", "10", "11"}, labels)
}
