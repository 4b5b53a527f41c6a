package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkovari/costline/internal/domain"
	"github.com/mkovari/costline/internal/repository"
)

type resourceService struct {
	resources repository.ResourceRepo
}

func NewResourceService(resources repository.ResourceRepo) ResourceService {
	return &resourceService{resources: resources}
}

func (s *resourceService) CreateMaterial(ctx context.Context, m *domain.Material) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return s.resources.CreateMaterial(ctx, m)
}

func (s *resourceService) ListMaterials(ctx context.Context) ([]*domain.Material, error) {
	return s.resources.ListMaterials(ctx)
}

func (s *resourceService) UpdateMaterial(ctx context.Context, m *domain.Material) error {
	return s.resources.UpdateMaterial(ctx, m)
}

func (s *resourceService) CreateOperation(ctx context.Context, o *domain.Operation) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return s.resources.CreateOperation(ctx, o)
}

func (s *resourceService) ListOperations(ctx context.Context) ([]*domain.Operation, error) {
	return s.resources.ListOperations(ctx)
}

func (s *resourceService) CreateMachine(ctx context.Context, m *domain.Machine) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return s.resources.CreateMachine(ctx, m)
}

func (s *resourceService) ListMachines(ctx context.Context) ([]*domain.Machine, error) {
	return s.resources.ListMachines(ctx)
}
