package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/calendar"
	"github.com/mkovari/costline/internal/costengine"
	"github.com/mkovari/costline/internal/db"
	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/feed"
	"github.com/mkovari/costline/internal/repository"
	"github.com/mkovari/costline/internal/scheduler"
)

type scheduleService struct {
	projects repository.ProjectRepo
	items    repository.LineItemRepo
	links    repository.LinkRepo
	catalog  repository.CatalogItemRepo
	uow      db.UnitOfWork
	obs      UseCaseObserver
}

func NewScheduleService(
	projects repository.ProjectRepo,
	items repository.LineItemRepo,
	links repository.LinkRepo,
	catalog repository.CatalogItemRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		projects: projects,
		items:    items,
		links:    links,
		catalog:  catalog,
		uow:      uow,
		obs:      useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) ProjectTimeline(ctx context.Context, projectID string, today time.Time) (feed.Payload, error) {
	var payload feed.Payload
	err := observe(ctx, s.obs, "schedule_project_timeline",
		map[string]any{"project_id": projectID},
		func() error {
			project, err := s.projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			codes, err := s.catalogCodes(ctx)
			if err != nil {
				return err
			}
			scheduled, err := s.chainProject(ctx, project, today, codes)
			if err != nil {
				return err
			}
			links, err := s.links.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			payload = feed.ProjectPayload(scheduled, links)
			return nil
		})
	return payload, err
}

func (s *scheduleService) GlobalTimeline(ctx context.Context, today time.Time) (feed.Payload, error) {
	var payload feed.Payload
	err := observe(ctx, s.obs, "schedule_global_timeline", nil, func() error {
		projects, err := s.projects.ListSchedulable(ctx)
		if err != nil {
			return err
		}
		codes, err := s.catalogCodes(ctx)
		if err != nil {
			return err
		}

		sections := make([]feed.ProjectSection, 0, len(projects))
		itemIDs := make(map[string]bool)
		for _, p := range projects {
			scheduled, err := s.chainProject(ctx, p, today, codes)
			if err != nil {
				return err
			}
			for _, sc := range scheduled {
				itemIDs[sc.ID] = true
			}
			sections = append(sections, feed.ProjectSection{
				ProjectID: p.ID,
				Name:      p.Name,
				Start:     calendar.NextWorkday(p.EffectiveStart(today)),
				Items:     scheduled,
			})
		}

		all, err := s.links.ListAll(ctx)
		if err != nil {
			return err
		}
		links := make([]domain.DependencyLink, 0, len(all))
		for _, l := range all {
			if itemIDs[l.SourceID] && itemIDs[l.TargetID] {
				links = append(links, l)
			}
		}

		payload = feed.GlobalPayload(sections, links)
		return nil
	})
	return payload, err
}

// chainProject loads, sorts and places one project's line items.
func (s *scheduleService) chainProject(ctx context.Context, p *domain.Project, today time.Time, codes map[string]string) ([]scheduler.Scheduled, error) {
	items, err := s.items.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	inputs := make([]scheduler.Input, 0, len(items))
	for _, b := range items {
		code := ""
		if b.CatalogItemID != nil {
			code = codes[*b.CatalogItemID]
		}
		inputs = append(inputs, scheduler.FromLineItem(b, code))
	}
	scheduler.SortByOrdinal(inputs)
	return scheduler.Chain(inputs, p.EffectiveStart(today)), nil
}

func (s *scheduleService) catalogCodes(ctx context.Context) (map[string]string, error) {
	list, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(list))
	for _, c := range list {
		codes[c.ID] = c.Code
	}
	return codes, nil
}

// ApplyMutation applies one client edit inside a transaction. Any failure
// rolls the edit back and answers with the client's generic error payload;
// the cause goes to the observer, not the client.
func (s *scheduleService) ApplyMutation(ctx context.Context, m feed.Mutation, projectID string) feed.Response {
	var resp feed.Response
	err := observe(ctx, s.obs, "schedule_apply_mutation",
		map[string]any{"project_id": projectID, "mutation": fmt.Sprintf("%T", m)},
		func() error {
			r, err := s.applyMutation(ctx, m, projectID)
			resp = r
			return err
		})
	if err != nil {
		return feed.Error("the edit could not be applied")
	}
	return resp
}

func (s *scheduleService) applyMutation(ctx context.Context, m feed.Mutation, projectID string) (feed.Response, error) {
	switch m := m.(type) {
	case feed.TaskInsert:
		return s.insertTask(ctx, m, projectID)
	case feed.TaskUpdate:
		return s.updateTask(ctx, m)
	case feed.TaskDelete:
		if err := s.items.Delete(ctx, m.ID); err != nil {
			return feed.Response{}, err
		}
		return feed.OK("deleted"), nil
	case feed.LinkInsert:
		return s.insertLink(ctx, m)
	case feed.LinkUpdate:
		return s.updateLink(ctx, m)
	case feed.LinkDelete:
		if err := s.links.Delete(ctx, m.ID); err != nil {
			return feed.Response{}, err
		}
		return feed.OK("deleted"), nil
	default:
		return feed.Response{}, fmt.Errorf("unsupported mutation %T", m)
	}
}

func (s *scheduleService) insertTask(ctx context.Context, m feed.TaskInsert, projectID string) (feed.Response, error) {
	if projectID == "" {
		return feed.Response{}, fmt.Errorf("task insert needs a project")
	}
	var id string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteLineItemRepo(tx)
		project, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID)
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
			OrdinalLabel:         nextOrdinalLabel(labels),
			Description:          domain.CoalesceStr(m.Description, "New task"),
			Responsible:          m.Responsible,
			Owner:                m.Owner,
			LaborOwnSharePercent: decimal.NewFromInt(100),
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		b.ManualStartDate = m.StartDate
		b.ManualDurationDays = domain.IntFromPtrWithDefault(0, m.Duration)
		costengine.Recompute(b, project).Apply(b)
		if err := txItems.Create(ctx, b); err != nil {
			return err
		}
		id = b.ID
		return nil
	})
	if err != nil {
		return feed.Response{}, err
	}
	return feed.Inserted(id), nil
}

func (s *scheduleService) updateTask(ctx context.Context, m feed.TaskUpdate) (feed.Response, error) {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteLineItemRepo(tx)
		b, err := txItems.GetByID(ctx, m.ID)
		if err != nil {
			return err
		}
		project, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, b.ProjectID)
		if err != nil {
			return err
		}

		if m.StartDate != nil {
			b.ManualStartDate = m.StartDate
		}
		b.ManualDurationDays = domain.IntFromPtrWithDefault(b.ManualDurationDays, m.Duration)
		if m.Progress != nil {
			b.ProgressPercent = decimal.NewFromFloat(*m.Progress * 100)
		}
		if m.Responsible != nil {
			b.Responsible = *m.Responsible
		}
		if m.Owner != nil {
			b.Owner = *m.Owner
		}
		b.UpdatedAt = time.Now().UTC()

		costengine.Recompute(b, project).Apply(b)
		return txItems.Update(ctx, b)
	})
	if err != nil {
		return feed.Response{}, err
	}
	return feed.OK("updated"), nil
}

func (s *scheduleService) insertLink(ctx context.Context, m feed.LinkInsert) (feed.Response, error) {
	l := &domain.DependencyLink{
		ID:       uuid.New().String(),
		SourceID: m.SourceID,
		TargetID: m.TargetID,
		Type:     m.Type,
	}
	if err := s.links.Create(ctx, l); err != nil {
		return feed.Response{}, err
	}
	return feed.Inserted(l.ID), nil
}

func (s *scheduleService) updateLink(ctx context.Context, m feed.LinkUpdate) (feed.Response, error) {
	l, err := s.links.GetByID(ctx, m.ID)
	if err != nil {
		return feed.Response{}, err
	}
	l.Type = m.Type
	if err := s.links.Update(ctx, l); err != nil {
		return feed.Response{}, err
	}
	return feed.OK("updated"), nil
}
