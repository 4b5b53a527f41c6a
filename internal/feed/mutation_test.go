package feed

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func form(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func TestParseMutation_TaskUpdatePartialFields(t *testing.T) {
	m, err := ParseMutation(form(
		"id", "b1",
		"status", "updated",
		"start_date", "2025-06-16 00:00",
		"duration", "4",
	))
	require.NoError(t, err)

	tu, ok := m.(TaskUpdate)
	require.True(t, ok)
	assert.Equal(t, "b1", tu.ID)
	require.NotNil(t, tu.StartDate)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), *tu.StartDate)
	require.NotNil(t, tu.Duration)
	assert.Equal(t, 4, *tu.Duration)
	assert.Nil(t, tu.Progress, "unsupplied field stays nil")
	assert.Nil(t, tu.Responsible)
	assert.Nil(t, tu.Owner)
}

func TestParseMutation_TaskUpdateProgressOnly(t *testing.T) {
	m, err := ParseMutation(form("id", "b1", "status", "updated", "progress", "0.35"))
	require.NoError(t, err)
	tu := m.(TaskUpdate)
	require.NotNil(t, tu.Progress)
	assert.InDelta(t, 0.35, *tu.Progress, 1e-9)
	assert.Nil(t, tu.StartDate)
}

func TestParseMutation_ProgressOutOfRange(t *testing.T) {
	_, err := ParseMutation(form("id", "b1", "status", "updated", "progress", "1.5"))
	require.Error(t, err)
}

func TestParseMutation_NativeEditorStatusKey(t *testing.T) {
	v := form("id", "b1", "progress", "0.5")
	v.Set("!nativeeditor_status", "updated")
	m, err := ParseMutation(v)
	require.NoError(t, err)
	_, ok := m.(TaskUpdate)
	assert.True(t, ok)
}

func TestParseMutation_LinkKindFromFields(t *testing.T) {
	m, err := ParseMutation(form("status", "inserted", "source", "b1", "target", "b2"))
	require.NoError(t, err)
	li, ok := m.(LinkInsert)
	require.True(t, ok)
	assert.Equal(t, "b1", li.SourceID)
	assert.Equal(t, "b2", li.TargetID)
	assert.Equal(t, "0", li.Type, "default link type")
}

func TestParseMutation_LinkUpdateAndDelete(t *testing.T) {
	m, err := ParseMutation(form("id", "l1", "status", "updated", "kind", "link", "type", "2"))
	require.NoError(t, err)
	lu := m.(LinkUpdate)
	assert.Equal(t, "2", lu.Type)

	m, err = ParseMutation(form("id", "l1", "status", "deleted", "kind", "link"))
	require.NoError(t, err)
	_, ok := m.(LinkDelete)
	assert.True(t, ok)
}

func TestParseMutation_TaskInsertAndDelete(t *testing.T) {
	m, err := ParseMutation(form("status", "inserted", "text", "Extra scaffolding", "duration", "2"))
	require.NoError(t, err)
	ti := m.(TaskInsert)
	assert.Equal(t, "Extra scaffolding", ti.Description)
	require.NotNil(t, ti.Duration)
	assert.Equal(t, 2, *ti.Duration)

	m, err = ParseMutation(form("id", "b9", "status", "deleted"))
	require.NoError(t, err)
	td := m.(TaskDelete)
	assert.Equal(t, "b9", td.ID)
}

func TestParseMutation_GroupRowRejected(t *testing.T) {
	_, err := ParseMutation(form("id", "grp_p1", "status", "updated", "duration", "3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group")
}

func TestParseMutation_BadStatus(t *testing.T) {
	_, err := ParseMutation(form("id", "b1", "status", "upserted"))
	require.Error(t, err)

	_, err = ParseMutation(form("id", "b1"))
	require.Error(t, err, "missing status")
}

func TestParseMutation_BadDate(t *testing.T) {
	_, err := ParseMutation(form("id", "b1", "status", "updated", "start_date", "junk"))
	require.Error(t, err)
}
