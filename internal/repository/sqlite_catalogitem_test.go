package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovari/costline/internal/domain"
)

func TestCatalogItemWithComponents(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteCatalogItemRepo(conn)
	resources := NewSQLiteResourceRepo(conn)

	require.NoError(t, resources.CreateMaterial(ctx, &domain.Material{ID: "brick", Name: "Brick", Unit: "pc", Price: dec("150")}))
	require.NoError(t, resources.CreateOperation(ctx, &domain.Operation{ID: "laying", Name: "Bricklaying", HourlyRate: dec("4500")}))

	c := &domain.CatalogItem{
		ID:        "cat1",
		Code:      "21-003-001",
		Unit:      "m2",
		Category:  "masonry",
		CreatedAt: repoNow,
		UpdatedAt: repoNow,
	}
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.AddMaterialComponent(ctx, &domain.MaterialComponent{ID: "mc1", CatalogItemID: "cat1", MaterialID: "brick", Amount: dec("60")}))
	require.NoError(t, repo.AddLaborComponent(ctx, &domain.LaborComponent{ID: "lc1", CatalogItemID: "cat1", OperationID: "laying", Hours: dec("1.2")}))

	mats, err := repo.ListMaterialComponents(ctx, "cat1")
	require.NoError(t, err)
	require.Len(t, mats, 1)
	assert.True(t, dec("60").Equal(mats[0].Amount))

	labor, err := repo.ListLaborComponents(ctx, "cat1")
	require.NoError(t, err)
	require.Len(t, labor, 1)
	assert.True(t, dec("1.2").Equal(labor[0].Hours))

	require.NoError(t, repo.DeleteComponent(ctx, "mc1"))
	mats, err = repo.ListMaterialComponents(ctx, "cat1")
	require.NoError(t, err)
	assert.Empty(t, mats)

	byCode, err := repo.GetByCode(ctx, "21-003-001")
	require.NoError(t, err)
	assert.Equal(t, "cat1", byCode.ID)
}
