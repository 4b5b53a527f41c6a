package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mkovari/costline/internal/costengine"
	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/repository"
)

type catalogService struct {
	catalog   repository.CatalogItemRepo
	resources repository.ResourceRepo
	uow       db.UnitOfWork
	obs       UseCaseObserver
}

func NewCatalogService(
	catalog repository.CatalogItemRepo,
	resources repository.ResourceRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		catalog:   catalog,
		resources: resources,
		uow:       uow,
		obs:       useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Create(ctx context.Context, c *domain.CatalogItem) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := c.Validate(); err != nil {
		return err
	}
	return s.catalog.Create(ctx, c)
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	return s.catalog.GetByID(ctx, id)
}

func (s *catalogService) GetByCode(ctx context.Context, code string) (*domain.CatalogItem, error) {
	return s.catalog.GetByCode(ctx, code)
}

func (s *catalogService) List(ctx context.Context) ([]*domain.CatalogItem, error) {
	return s.catalog.List(ctx)
}

func (s *catalogService) Update(ctx context.Context, c *domain.CatalogItem) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.catalog.Update(ctx, c)
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	return s.catalog.Delete(ctx, id)
}

func (s *catalogService) AddMaterialComponent(ctx context.Context, c *domain.MaterialComponent) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return observe(ctx, s.obs, "catalog_add_material_component",
		map[string]any{"catalog_item_id": c.CatalogItemID},
		func() error {
			return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				if err := repository.NewSQLiteCatalogItemRepo(tx).AddMaterialComponent(ctx, c); err != nil {
					return err
				}
				return recalcTotalsTx(ctx, tx, c.CatalogItemID)
			})
		})
}

func (s *catalogService) AddLaborComponent(ctx context.Context, c *domain.LaborComponent) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return observe(ctx, s.obs, "catalog_add_labor_component",
		map[string]any{"catalog_item_id": c.CatalogItemID},
		func() error {
			return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				if err := repository.NewSQLiteCatalogItemRepo(tx).AddLaborComponent(ctx, c); err != nil {
					return err
				}
				return recalcTotalsTx(ctx, tx, c.CatalogItemID)
			})
		})
}

func (s *catalogService) AddMachineComponent(ctx context.Context, c *domain.MachineComponent) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return observe(ctx, s.obs, "catalog_add_machine_component",
		map[string]any{"catalog_item_id": c.CatalogItemID},
		func() error {
			return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				if err := repository.NewSQLiteCatalogItemRepo(tx).AddMachineComponent(ctx, c); err != nil {
					return err
				}
				return recalcTotalsTx(ctx, tx, c.CatalogItemID)
			})
		})
}

func (s *catalogService) RemoveComponent(ctx context.Context, catalogItemID, componentID string) error {
	return observe(ctx, s.obs, "catalog_remove_component",
		map[string]any{"catalog_item_id": catalogItemID},
		func() error {
			return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				if err := repository.NewSQLiteCatalogItemRepo(tx).DeleteComponent(ctx, componentID); err != nil {
					return err
				}
				return recalcTotalsTx(ctx, tx, catalogItemID)
			})
		})
}

func (s *catalogService) RecalculateTotals(ctx context.Context, catalogItemID string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return recalcTotalsTx(ctx, tx, catalogItemID)
	})
}

func (s *catalogService) BuildUp(ctx context.Context, catalogItemID string) (CatalogBuildUp, error) {
	var out CatalogBuildUp

	matComps, err := s.catalog.ListMaterialComponents(ctx, catalogItemID)
	if err != nil {
		return out, err
	}
	laborComps, err := s.catalog.ListLaborComponents(ctx, catalogItemID)
	if err != nil {
		return out, err
	}
	machComps, err := s.catalog.ListMachineComponents(ctx, catalogItemID)
	if err != nil {
		return out, err
	}

	materials, err := s.resources.ListMaterials(ctx)
	if err != nil {
		return out, err
	}
	operations, err := s.resources.ListOperations(ctx)
	if err != nil {
		return out, err
	}
	machines, err := s.resources.ListMachines(ctx)
	if err != nil {
		return out, err
	}

	matByID := make(map[string]*domain.Material, len(materials))
	for _, m := range materials {
		matByID[m.ID] = m
	}
	opByID := make(map[string]*domain.Operation, len(operations))
	for _, o := range operations {
		opByID[o.ID] = o
	}
	machByID := make(map[string]*domain.Machine, len(machines))
	for _, m := range machines {
		machByID[m.ID] = m
	}

	for _, c := range matComps {
		row := ResolvedComponent{ComponentID: c.ID, Amount: c.Amount}
		if m := matByID[c.MaterialID]; m != nil {
			row.Name = m.Name
			row.Cost = c.Amount.Mul(m.Price)
		}
		out.Materials = append(out.Materials, row)
	}
	for _, c := range laborComps {
		row := ResolvedComponent{ComponentID: c.ID, Amount: c.Hours}
		if o := opByID[c.OperationID]; o != nil {
			row.Name = o.Name
			row.Cost = c.Hours.Mul(o.HourlyRate)
		}
		out.Labor = append(out.Labor, row)
	}
	for _, c := range machComps {
		row := ResolvedComponent{ComponentID: c.ID, Amount: c.Amount}
		if m := machByID[c.MachineID]; m != nil {
			row.Name = m.Name
			row.Cost = c.Amount.Mul(m.Price)
		}
		out.Machines = append(out.Machines, row)
	}
	return out, nil
}

// recalcTotalsTx rolls the component lists up into the catalog item's unit
// costs inside the caller's transaction, so a component write and its rollup
// land together.
func recalcTotalsTx(ctx context.Context, tx db.DBTX, catalogItemID string) error {
	txCatalog := repository.NewSQLiteCatalogItemRepo(tx)
	txResources := repository.NewSQLiteResourceRepo(tx)

	item, err := txCatalog.GetByID(ctx, catalogItemID)
	if err != nil {
		return err
	}
	matComps, err := txCatalog.ListMaterialComponents(ctx, catalogItemID)
	if err != nil {
		return err
	}
	laborComps, err := txCatalog.ListLaborComponents(ctx, catalogItemID)
	if err != nil {
		return err
	}
	machComps, err := txCatalog.ListMachineComponents(ctx, catalogItemID)
	if err != nil {
		return err
	}

	materials, err := txResources.ListMaterials(ctx)
	if err != nil {
		return err
	}
	operations, err := txResources.ListOperations(ctx)
	if err != nil {
		return err
	}
	machines, err := txResources.ListMachines(ctx)
	if err != nil {
		return err
	}

	matByID := make(map[string]*domain.Material, len(materials))
	for _, m := range materials {
		matByID[m.ID] = m
	}
	opByID := make(map[string]*domain.Operation, len(operations))
	for _, o := range operations {
		opByID[o.ID] = o
	}
	machByID := make(map[string]*domain.Machine, len(machines))
	for _, m := range machines {
		machByID[m.ID] = m
	}

	totals := costengine.RollupCatalogTotals(matComps, laborComps, machComps, matByID, opByID, machByID)
	item.MaterialCost = totals.MaterialCost
	item.LaborCost = totals.LaborCost
	item.MachineCost = totals.MachineCost
	item.LaborHoursPerUnit = totals.LaborHoursPerUnit
	item.UpdatedAt = time.Now().UTC()
	return txCatalog.Update(ctx, item)
}
