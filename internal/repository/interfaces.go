package repository

import (
	"context"

	"github.com/mkovari/costline/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	// ListSchedulable returns projects for the global timeline: rows flagged
	// for deletion excluded, ordered by start date (nulls last).
	ListSchedulable(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type CatalogItemRepo interface {
	Create(ctx context.Context, c *domain.CatalogItem) error
	GetByID(ctx context.Context, id string) (*domain.CatalogItem, error)
	GetByCode(ctx context.Context, code string) (*domain.CatalogItem, error)
	List(ctx context.Context) ([]*domain.CatalogItem, error)
	Update(ctx context.Context, c *domain.CatalogItem) error
	Delete(ctx context.Context, id string) error

	ListMaterialComponents(ctx context.Context, catalogItemID string) ([]domain.MaterialComponent, error)
	ListLaborComponents(ctx context.Context, catalogItemID string) ([]domain.LaborComponent, error)
	ListMachineComponents(ctx context.Context, catalogItemID string) ([]domain.MachineComponent, error)
	AddMaterialComponent(ctx context.Context, c *domain.MaterialComponent) error
	AddLaborComponent(ctx context.Context, c *domain.LaborComponent) error
	AddMachineComponent(ctx context.Context, c *domain.MachineComponent) error
	DeleteComponent(ctx context.Context, componentID string) error
}

type ResourceRepo interface {
	CreateMaterial(ctx context.Context, m *domain.Material) error
	GetMaterial(ctx context.Context, id string) (*domain.Material, error)
	ListMaterials(ctx context.Context) ([]*domain.Material, error)
	UpdateMaterial(ctx context.Context, m *domain.Material) error

	CreateOperation(ctx context.Context, o *domain.Operation) error
	ListOperations(ctx context.Context) ([]*domain.Operation, error)

	CreateMachine(ctx context.Context, m *domain.Machine) error
	ListMachines(ctx context.Context) ([]*domain.Machine, error)
}

type LineItemRepo interface {
	Create(ctx context.Context, b *domain.BudgetLineItem) error
	GetByID(ctx context.Context, id string) (*domain.BudgetLineItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetLineItem, error)
	// OrdinalLabels returns every ordinal label used in the project,
	// in no particular order.
	OrdinalLabels(ctx context.Context, projectID string) ([]string, error)
	Update(ctx context.Context, b *domain.BudgetLineItem) error
	Delete(ctx context.Context, id string) error
}

type LinkRepo interface {
	Create(ctx context.Context, l *domain.DependencyLink) error
	GetByID(ctx context.Context, id string) (*domain.DependencyLink, error)
	// ListByProject returns links whose source item belongs to the project.
	ListByProject(ctx context.Context, projectID string) ([]domain.DependencyLink, error)
	ListAll(ctx context.Context) ([]domain.DependencyLink, error)
	Update(ctx context.Context, l *domain.DependencyLink) error
	Delete(ctx context.Context, id string) error
}
