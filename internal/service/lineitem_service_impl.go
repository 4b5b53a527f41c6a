package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/costengine"
	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/repository"
)

type lineItemService struct {
	items    repository.LineItemRepo
	projects repository.ProjectRepo
	catalog  repository.CatalogItemRepo
	uow      db.UnitOfWork
	obs      UseCaseObserver
}

func NewLineItemService(
	items repository.LineItemRepo,
	projects repository.ProjectRepo,
	catalog repository.CatalogItemRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) LineItemService {
	return &lineItemService{
		items:    items,
		projects: projects,
		catalog:  catalog,
		uow:      uow,
		obs:      useCaseObserverOrNoop(observers),
	}
}

func (s *lineItemService) CreateFromCatalog(ctx context.Context, projectID, catalogItemID string, quantity decimal.Decimal) (*domain.BudgetLineItem, error) {
	var created *domain.BudgetLineItem
	err := observe(ctx, s.obs, "line_item_create_from_catalog",
		map[string]any{"project_id": projectID, "catalog_item_id": catalogItemID},
		func() error {
			return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				txItems := repository.NewSQLiteLineItemRepo(tx)
				txProjects := repository.NewSQLiteProjectRepo(tx)
				txCatalog := repository.NewSQLiteCatalogItemRepo(tx)

				project, err := txProjects.GetByID(ctx, projectID)
				if err != nil {
					return err
				}
				master, err := txCatalog.GetByID(ctx, catalogItemID)
				if err != nil {
					return err
				}
				labels, err := txItems.OrdinalLabels(ctx, projectID)
				if err != nil {
					return err
				}

				now := time.Now().UTC()
				b := &domain.BudgetLineItem{
					ID:                   uuid.New().String(),
					ProjectID:            projectID,
					CatalogItemID:        &master.ID,
					OrdinalLabel:         nextOrdinalLabel(labels),
					Description:          master.Description,
					Unit:                 master.Unit,
					Category:             master.Category,
					Quantity:             quantity,
					LaborHoursPerUnit:    master.LaborHoursPerUnit,
					MaterialUnitPrice:    master.MaterialCost,
					LaborOwnSharePercent: decimal.NewFromInt(100),
					CreatedAt:            now,
					UpdatedAt:            now,
				}
				costengine.Recompute(b, project).Apply(b)
				if err := txItems.Create(ctx, b); err != nil {
					return err
				}
				created = b
				return nil
			})
		})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *lineItemService) Create(ctx context.Context, b *domain.BudgetLineItem) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	b.LaborOwnSharePercent = domain.CoalesceDec(b.LaborOwnSharePercent, decimal.NewFromInt(100))
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteLineItemRepo(tx)
		project, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, b.ProjectID)
		if err != nil {
			return err
		}
		if err := s.seedPrice(ctx, tx, b); err != nil {
			return err
		}
		costengine.Recompute(b, project).Apply(b)
		return txItems.Create(ctx, b)
	})
}

func (s *lineItemService) GetByID(ctx context.Context, id string) (*domain.BudgetLineItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *lineItemService) ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetLineItem, error) {
	return s.items.ListByProject(ctx, projectID)
}

// Update writes the item and its freshly derived fields in one transaction,
// so persisted derived values can never drift from the inputs.
func (s *lineItemService) Update(ctx context.Context, b *domain.BudgetLineItem) error {
	return observe(ctx, s.obs, "line_item_update", map[string]any{"line_item_id": b.ID}, func() error {
		b.UpdatedAt = time.Now().UTC()
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txItems := repository.NewSQLiteLineItemRepo(tx)
			project, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, b.ProjectID)
			if err != nil {
				return err
			}
			if err := s.seedPrice(ctx, tx, b); err != nil {
				return err
			}
			costengine.Recompute(b, project).Apply(b)
			return txItems.Update(ctx, b)
		})
	})
}

func (s *lineItemService) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	b, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	b.Quantity = quantity
	return s.Update(ctx, b)
}

func (s *lineItemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// seedPrice resolves the effective material unit price: a linked material
// resource wins, then a manual price, then the catalog default.
func (s *lineItemService) seedPrice(ctx context.Context, tx db.DBTX, b *domain.BudgetLineItem) error {
	var master *domain.CatalogItem
	var material *domain.Material
	if b.CatalogItemID != nil {
		m, err := repository.NewSQLiteCatalogItemRepo(tx).GetByID(ctx, *b.CatalogItemID)
		if err != nil {
			return err
		}
		master = m
	}
	if b.MaterialID != nil {
		m, err := repository.NewSQLiteResourceRepo(tx).GetMaterial(ctx, *b.MaterialID)
		if err != nil {
			return err
		}
		material = m
	}
	costengine.SeedMaterialPrice(b, master, material)
	return nil
}

// nextOrdinalLabel returns one past the highest purely numeric label in
// the project, so a free-text label like "3-A" never resets the sequence
// onto an ordinal that is already taken.
func nextOrdinalLabel(labels []string) string {
	max := 0
	for _, label := range labels {
		if n, err := strconv.Atoi(label); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}
