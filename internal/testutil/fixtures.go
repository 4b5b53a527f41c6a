package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/domain"
)

// Dec parses a decimal literal; invalid input yields zero, which is fine for
// test fixtures.
func Dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectStart(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = &d
	}
}

func WithRates(hourlyRate, hoursPerDay string) ProjectOption {
	return func(p *domain.Project) {
		p.HourlyRate = Dec(hourlyRate)
		p.HoursPerDay = Dec(hoursPerDay)
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Status:      domain.ProjectExecution,
		HourlyRate:  Dec("5000"),
		HoursPerDay: Dec("8"),
		VATRate:     Dec("27"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CatalogItem options
type CatalogItemOption func(*domain.CatalogItem)

func WithUnitCosts(material, labor, machine string) CatalogItemOption {
	return func(c *domain.CatalogItem) {
		c.MaterialCost = Dec(material)
		c.LaborCost = Dec(labor)
		c.MachineCost = Dec(machine)
	}
}

func WithLaborHours(h string) CatalogItemOption {
	return func(c *domain.CatalogItem) {
		c.LaborHoursPerUnit = Dec(h)
	}
}

func NewTestCatalogItem(code, description string, opts ...CatalogItemOption) *domain.CatalogItem {
	now := time.Now().UTC()
	c := &domain.CatalogItem{
		ID:          uuid.New().String(),
		Code:        code,
		Description: description,
		Unit:        "m2",
		Category:    "masonry",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BudgetLineItem options
type LineItemOption func(*domain.BudgetLineItem)

func WithOrdinal(label string) LineItemOption {
	return func(b *domain.BudgetLineItem) {
		b.OrdinalLabel = label
	}
}

func WithQuantity(q string) LineItemOption {
	return func(b *domain.BudgetLineItem) {
		b.Quantity = Dec(q)
	}
}

func WithCostInputs(hoursPerUnit, materialPrice, ownShare string) LineItemOption {
	return func(b *domain.BudgetLineItem) {
		b.LaborHoursPerUnit = Dec(hoursPerUnit)
		b.MaterialUnitPrice = Dec(materialPrice)
		b.LaborOwnSharePercent = Dec(ownShare)
	}
}

func WithManualSchedule(start time.Time, days int) LineItemOption {
	return func(b *domain.BudgetLineItem) {
		b.ManualStartDate = &start
		b.ManualDurationDays = days
	}
}

func WithCatalogItemID(id string) LineItemOption {
	return func(b *domain.BudgetLineItem) {
		b.CatalogItemID = &id
	}
}

func WithMaterialID(id string) LineItemOption {
	return func(b *domain.BudgetLineItem) {
		b.MaterialID = &id
	}
}

func NewTestLineItem(projectID, description string, opts ...LineItemOption) *domain.BudgetLineItem {
	now := time.Now().UTC()
	b := &domain.BudgetLineItem{
		ID:                   uuid.New().String(),
		ProjectID:            projectID,
		OrdinalLabel:         "1",
		Description:          description,
		Unit:                 "m2",
		Quantity:             Dec("1"),
		LaborOwnSharePercent: Dec("100"),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func NewTestMaterial(name, unit, price string) *domain.Material {
	return &domain.Material{
		ID:    uuid.New().String(),
		Name:  name,
		Unit:  unit,
		Price: Dec(price),
	}
}

func NewTestOperation(name, hourlyRate string) *domain.Operation {
	return &domain.Operation{
		ID:         uuid.New().String(),
		Name:       name,
		HourlyRate: Dec(hourlyRate),
	}
}

func NewTestMachine(name, price string) *domain.Machine {
	return &domain.Machine{
		ID:    uuid.New().String(),
		Name:  name,
		Price: Dec(price),
	}
}

func NewTestLink(sourceID, targetID string) *domain.DependencyLink {
	return &domain.DependencyLink{
		ID:       uuid.New().String(),
		SourceID: sourceID,
		TargetID: targetID,
		Type:     domain.DefaultLinkType,
	}
}
