package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/costengine"
	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	obs      UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProjectService {
	return &projectService{projects: projects, uow: uow, obs: useCaseObserverOrNoop(observers)}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectLead
	}
	p.HourlyRate = domain.CoalesceDec(p.HourlyRate, decimal.NewFromInt(5000))
	p.HoursPerDay = domain.CoalesceDec(p.HoursPerDay, decimal.NewFromInt(8))
	p.VATRate = domain.CoalesceDec(p.VATRate, decimal.NewFromInt(27))
	if err := p.Validate(); err != nil {
		return err
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

// Update saves the project and, when a rate changed, cascades a recompute
// over every line item of the project. The cascade shares the project's
// transaction: either all derived rows match the new rate or none do.
func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	return observe(ctx, s.obs, "project_update", map[string]any{"project_id": p.ID}, func() error {
		if err := p.Validate(); err != nil {
			return err
		}
		old, err := s.projects.GetByID(ctx, p.ID)
		if err != nil {
			return err
		}
		rateChanged := !old.HourlyRate.Equal(p.HourlyRate) || !old.HoursPerDay.Equal(p.HoursPerDay)

		p.UpdatedAt = time.Now().UTC()
		return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txProjects := repository.NewSQLiteProjectRepo(tx)
			if err := txProjects.Update(ctx, p); err != nil {
				return err
			}
			if !rateChanged {
				return nil
			}
			return recomputeProjectItems(ctx, tx, p)
		})
	})
}

func (s *projectService) RequestDeletion(ctx context.Context, id string) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = domain.ProjectPendingDeletion
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// recomputeProjectItems re-derives every line item of the project inside the
// caller's transaction.
func recomputeProjectItems(ctx context.Context, tx db.DBTX, p *domain.Project) error {
	txItems := repository.NewSQLiteLineItemRepo(tx)
	items, err := txItems.ListByProject(ctx, p.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for _, item := range items {
		costengine.Recompute(item, p).Apply(item)
		item.UpdatedAt = now
		if err := txItems.Update(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
