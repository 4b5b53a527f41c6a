package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

var repoNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

func seedProject(t *testing.T, conn *sql.DB, id string) *domain.Project {
	t.Helper()
	start := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{
		ID:          id,
		Name:        "Family house " + id,
		Status:      domain.ProjectExecution,
		HourlyRate:  dec("5000"),
		HoursPerDay: dec("8"),
		VATRate:     dec("27"),
		StartDate:   &start,
		CreatedAt:   repoNow,
		UpdatedAt:   repoNow,
	}
	require.NoError(t, NewSQLiteProjectRepo(conn).Create(context.Background(), p))
	return p
}

func seedLineItem(t *testing.T, conn *sql.DB, id, projectID, ordinal string) *domain.BudgetLineItem {
	t.Helper()
	b := &domain.BudgetLineItem{
		ID:                   id,
		ProjectID:            projectID,
		OrdinalLabel:         ordinal,
		Description:          "Brickwork",
		Unit:                 "m2",
		Quantity:             dec("3"),
		LaborHoursPerUnit:    dec("2"),
		MaterialUnitPrice:    dec("250"),
		LaborOwnSharePercent: dec("60"),
		ProgressPercent:      dec("0"),
		ComputedDurationDays: 1,
		CreatedAt:            repoNow,
		UpdatedAt:            repoNow,
	}
	require.NoError(t, NewSQLiteLineItemRepo(conn).Create(context.Background(), b))
	return b
}

func TestLineItemRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	seedProject(t, conn, "p1")
	repo := NewSQLiteLineItemRepo(conn)

	manual := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	catalogID := "cat1"
	b := seedLineItem(t, conn, "b1", "p1", "12")
	b.CatalogItemID = &catalogID
	b.ManualStartDate = &manual
	b.ManualDurationDays = 4
	b.MaterialTotal = dec("750")
	b.LaborTotalOwn = dec("18000")
	b.LaborTotalSub = dec("12000")

	// catalog row must exist for the FK
	_, err := conn.Exec(`INSERT INTO catalog_items (id, code, created_at, updated_at) VALUES ('cat1', 'K-1', ?, ?)`,
		repoNow.Format(time.RFC3339), repoNow.Format(time.RFC3339))
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "12", got.OrdinalLabel)
	require.NotNil(t, got.CatalogItemID)
	assert.Equal(t, "cat1", *got.CatalogItemID)
	require.NotNil(t, got.ManualStartDate)
	assert.Equal(t, manual, *got.ManualStartDate)
	assert.Equal(t, 4, got.ManualDurationDays)
	assert.True(t, dec("750").Equal(got.MaterialTotal))
	assert.True(t, dec("18000").Equal(got.LaborTotalOwn))
	assert.True(t, dec("60").Equal(got.LaborOwnSharePercent))
}

func TestLineItemListByProject(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	seedProject(t, conn, "p1")
	seedProject(t, conn, "p2")
	seedLineItem(t, conn, "b1", "p1", "1")
	seedLineItem(t, conn, "b2", "p1", "2")
	seedLineItem(t, conn, "b3", "p2", "1")

	repo := NewSQLiteLineItemRepo(conn)
	items, err := repo.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestLineItemOrdinalLabels(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	seedProject(t, conn, "p1")
	seedProject(t, conn, "p2")
	repo := NewSQLiteLineItemRepo(conn)

	labels, err := repo.OrdinalLabels(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, labels, "empty project")

	seedLineItem(t, conn, "b1", "p1", "7")
	seedLineItem(t, conn, "b2", "p1", "3-A")
	seedLineItem(t, conn, "b3", "p2", "9")
	labels, err = repo.OrdinalLabels(ctx, "p1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"7", "3-A"}, labels)
}

func TestLineItemUpdateMissingRow(t *testing.T) {
	conn := openTestDB(t)
	seedProject(t, conn, "p1")
	b := seedLineItem(t, conn, "b1", "p1", "1")
	b.ID = "nope"
	err := NewSQLiteLineItemRepo(conn).Update(context.Background(), b)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLineItemDeleteCascadesLinks(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	seedProject(t, conn, "p1")
	seedLineItem(t, conn, "b1", "p1", "1")
	seedLineItem(t, conn, "b2", "p1", "2")

	linkRepo := NewSQLiteLinkRepo(conn)
	require.NoError(t, linkRepo.Create(ctx, &domain.DependencyLink{ID: "l1", SourceID: "b1", TargetID: "b2", Type: "0"}))

	require.NoError(t, NewSQLiteLineItemRepo(conn).Delete(ctx, "b1"))

	links, err := linkRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestMalformedStoredDecimalDegradesToZero(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	seedProject(t, conn, "p1")
	seedLineItem(t, conn, "b1", "p1", "1")

	_, err := conn.Exec(`UPDATE line_items SET quantity = 'garbage' WHERE id = 'b1'`)
	require.NoError(t, err)

	got, err := NewSQLiteLineItemRepo(conn).GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, got.Quantity.IsZero())
}
