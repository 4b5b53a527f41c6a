package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovari/costline/internal/repository"
	"github.com/mkovari/costline/internal/testutil"
)

func newLineItemService(t *testing.T) (LineItemService, *sql.DB) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	svc := NewLineItemService(
		repository.NewSQLiteLineItemRepo(conn),
		repository.NewSQLiteProjectRepo(conn),
		repository.NewSQLiteCatalogItemRepo(conn),
		testutil.NewTestUoW(conn),
	)
	return svc, conn
}

func TestLineItemService_CreateFromCatalog_CopiesDefaults(t *testing.T) {
	svc, conn := newLineItemService(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Family house")
	require.NoError(t, repository.NewSQLiteProjectRepo(conn).Create(ctx, p))

	master := testutil.NewTestCatalogItem("21-003-001", "Load-bearing brick wall",
		testutil.WithUnitCosts("250", "0", "0"),
		testutil.WithLaborHours("2"))
	require.NoError(t, repository.NewSQLiteCatalogItemRepo(conn).Create(ctx, master))

	b, err := svc.CreateFromCatalog(ctx, p.ID, master.ID, testutil.Dec("3"))
	require.NoError(t, err)

	assert.Equal(t, "Load-bearing brick wall", b.Description)
	assert.Equal(t, "m2", b.Unit)
	assert.Equal(t, "masonry", b.Category)
	require.NotNil(t, b.CatalogItemID)
	assert.Equal(t, master.ID, *b.CatalogItemID)
	assert.Equal(t, "1", b.OrdinalLabel)

	// Derived fields were computed on the spot: 3 * 250 material,
	// 3 * 2h * 5000/h labor, 6h at 8 h/day rounds up to one day.
	assert.True(t, b.MaterialTotal.Equal(testutil.Dec("750")))
	assert.True(t, b.LaborTotalOwn.Equal(testutil.Dec("30000")))
	assert.Equal(t, 1, b.ComputedDurationDays)

	stored, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, stored.MaterialTotal.Equal(testutil.Dec("750")))
}

func TestLineItemService_CreateFromCatalog_OrdinalSequence(t *testing.T) {
	svc, conn := newLineItemService(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Family house")
	require.NoError(t, repository.NewSQLiteProjectRepo(conn).Create(ctx, p))
	master := testutil.NewTestCatalogItem("21-003-001", "Brick wall")
	require.NoError(t, repository.NewSQLiteCatalogItemRepo(conn).Create(ctx, master))

	first, err := svc.CreateFromCatalog(ctx, p.ID, master.ID, testutil.Dec("1"))
	require.NoError(t, err)
	second, err := svc.CreateFromCatalog(ctx, p.ID, master.ID, testutil.Dec("1"))
	require.NoError(t, err)
	assert.Equal(t, "1", first.OrdinalLabel)
	assert.Equal(t, "2", second.OrdinalLabel)

	// A free-text label does not reset the numeric run onto a taken
	// ordinal; the next insert still continues past the highest number.
	odd := testutil.NewTestLineItem(p.ID, "Extra row", testutil.WithOrdinal("3-A"))
	require.NoError(t, repository.NewSQLiteLineItemRepo(conn).Create(ctx, odd))
	third, err := svc.CreateFromCatalog(ctx, p.ID, master.ID, testutil.Dec("1"))
	require.NoError(t, err)
	assert.Equal(t, "3", third.OrdinalLabel)
}

func TestLineItemService_Update_RecomputesDerived(t *testing.T) {
	svc, conn := newLineItemService(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Family house")
	require.NoError(t, repository.NewSQLiteProjectRepo(conn).Create(ctx, p))

	b := testutil.NewTestLineItem(p.ID, "Brickwork",
		testutil.WithQuantity("3"),
		testutil.WithCostInputs("2", "250", "60"))
	require.NoError(t, svc.Create(ctx, b))

	// 60/40 split of the 10000/unit labor rate.
	assert.True(t, b.LaborTotalOwn.Equal(testutil.Dec("18000")))
	assert.True(t, b.LaborTotalSub.Equal(testutil.Dec("12000")))

	b.Quantity = testutil.Dec("10")
	require.NoError(t, svc.Update(ctx, b))

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.MaterialTotal.Equal(testutil.Dec("2500")))
	// 10 * 2h = 20h at 8 h/day rounds up to 3 days.
	assert.Equal(t, 3, got.ComputedDurationDays)
}

func TestLineItemService_Update_LinkedMaterialOverridesPrice(t *testing.T) {
	svc, conn := newLineItemService(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Family house")
	require.NoError(t, repository.NewSQLiteProjectRepo(conn).Create(ctx, p))

	mat := testutil.NewTestMaterial("B30 brick", "pc", "180")
	require.NoError(t, repository.NewSQLiteResourceRepo(conn).CreateMaterial(ctx, mat))

	b := testutil.NewTestLineItem(p.ID, "Brickwork",
		testutil.WithQuantity("4"),
		testutil.WithCostInputs("1", "250", "100"),
		testutil.WithMaterialID(mat.ID))
	require.NoError(t, svc.Create(ctx, b))

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.MaterialUnitPrice.Equal(testutil.Dec("180")))
	assert.True(t, got.MaterialTotal.Equal(testutil.Dec("720")))
}

func TestLineItemService_UpdateQuantity(t *testing.T) {
	svc, conn := newLineItemService(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Family house")
	require.NoError(t, repository.NewSQLiteProjectRepo(conn).Create(ctx, p))

	b := testutil.NewTestLineItem(p.ID, "Brickwork",
		testutil.WithQuantity("1"),
		testutil.WithCostInputs("2", "250", "100"))
	require.NoError(t, svc.Create(ctx, b))

	require.NoError(t, svc.UpdateQuantity(ctx, b.ID, testutil.Dec("3")))

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(testutil.Dec("3")))
	assert.True(t, got.MaterialTotal.Equal(testutil.Dec("750")))
}
