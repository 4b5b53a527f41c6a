package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/feed"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	// Update persists the project; when HourlyRate or HoursPerDay changed it
	// recomputes every line item of the project in the same transaction.
	Update(ctx context.Context, p *domain.Project) error
	RequestDeletion(ctx context.Context, id string) error
}

type CatalogService interface {
	Create(ctx context.Context, c *domain.CatalogItem) error
	GetByID(ctx context.Context, id string) (*domain.CatalogItem, error)
	GetByCode(ctx context.Context, code string) (*domain.CatalogItem, error)
	List(ctx context.Context) ([]*domain.CatalogItem, error)
	Update(ctx context.Context, c *domain.CatalogItem) error
	Delete(ctx context.Context, id string) error

	AddMaterialComponent(ctx context.Context, c *domain.MaterialComponent) error
	AddLaborComponent(ctx context.Context, c *domain.LaborComponent) error
	AddMachineComponent(ctx context.Context, c *domain.MachineComponent) error
	RemoveComponent(ctx context.Context, catalogItemID, componentID string) error
	// RecalculateTotals rolls the component lists up into the catalog item's
	// fixed unit costs.
	RecalculateTotals(ctx context.Context, catalogItemID string) error
	// BuildUp returns the item's component rows with resource names and
	// per-row costs resolved.
	BuildUp(ctx context.Context, catalogItemID string) (CatalogBuildUp, error)
}

// ResolvedComponent is one component row with its resource name and row cost
// filled in. A component whose resource has disappeared keeps an empty name
// and zero cost.
type ResolvedComponent struct {
	ComponentID string
	Name        string
	Amount      decimal.Decimal
	Cost        decimal.Decimal
}

// CatalogBuildUp is a catalog item's full component build-up.
type CatalogBuildUp struct {
	Materials []ResolvedComponent
	Labor     []ResolvedComponent
	Machines  []ResolvedComponent
}

type ResourceService interface {
	CreateMaterial(ctx context.Context, m *domain.Material) error
	ListMaterials(ctx context.Context) ([]*domain.Material, error)
	// UpdateMaterial changes reference data only; line items pick the new
	// price up at their next recompute.
	UpdateMaterial(ctx context.Context, m *domain.Material) error
	CreateOperation(ctx context.Context, o *domain.Operation) error
	ListOperations(ctx context.Context) ([]*domain.Operation, error)
	CreateMachine(ctx context.Context, m *domain.Machine) error
	ListMachines(ctx context.Context) ([]*domain.Machine, error)
}

type LineItemService interface {
	// CreateFromCatalog instantiates a catalog item on a project, copying
	// its defaults and assigning the next numeric ordinal label.
	CreateFromCatalog(ctx context.Context, projectID, catalogItemID string, quantity decimal.Decimal) (*domain.BudgetLineItem, error)
	// Create stores a free-standing line item with derived fields computed.
	Create(ctx context.Context, b *domain.BudgetLineItem) error
	GetByID(ctx context.Context, id string) (*domain.BudgetLineItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.BudgetLineItem, error)
	// Update persists cost-input edits and recomputes the derived fields in
	// the same transaction.
	Update(ctx context.Context, b *domain.BudgetLineItem) error
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	// ProjectTimeline computes the single-project read model; nothing is
	// persisted, only manual overrides live in storage.
	ProjectTimeline(ctx context.Context, projectID string, today time.Time) (feed.Payload, error)
	// GlobalTimeline computes the multi-project read model with synthetic
	// group rows.
	GlobalTimeline(ctx context.Context, today time.Time) (feed.Payload, error)
	// ApplyMutation applies one client edit atomically. Failures come back
	// as the client's generic error payload, never as a partial write.
	ApplyMutation(ctx context.Context, m feed.Mutation, projectID string) feed.Response
}
