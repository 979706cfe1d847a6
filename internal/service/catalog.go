package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/clubevents-api/internal/domain"
)

type CatalogService struct {
	store Store
}

func NewCatalogService(store Store) *CatalogService {
	return &CatalogService{
		store: store,
	}
}

func (s *CatalogService) CreateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error) {
	created, err := s.store.Catalog().CreateDegreeLevel(ctx, level)
	if err != nil {
		return domain.DegreeLevel{}, fmt.Errorf("s.store.Catalog.CreateDegreeLevel -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetDegreeLevels(ctx context.Context) ([]domain.DegreeLevel, error) {
	levels, err := s.store.Catalog().FindAllDegreeLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.store.Catalog.FindAllDegreeLevels -> %w", err)
	}

	return levels, nil
}

func (s *CatalogService) UpdateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error) {
	updated, err := s.store.Catalog().UpdateDegreeLevel(ctx, level)
	if err != nil {
		return domain.DegreeLevel{}, fmt.Errorf("s.store.Catalog.UpdateDegreeLevel -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteDegreeLevel(ctx context.Context, id uint) error {
	if err := s.store.Catalog().DeleteDegreeLevel(ctx, id); err != nil {
		return fmt.Errorf("s.store.Catalog.DeleteDegreeLevel -> %w", err)
	}

	return nil
}

func (s *CatalogService) CreateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error) {
	created, err := s.store.Catalog().CreateSubDegreeLevel(ctx, level)
	if err != nil {
		return domain.SubDegreeLevel{}, fmt.Errorf("s.store.Catalog.CreateSubDegreeLevel -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetSubDegreeLevels(ctx context.Context) ([]domain.SubDegreeLevel, error) {
	levels, err := s.store.Catalog().FindAllSubDegreeLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.store.Catalog.FindAllSubDegreeLevels -> %w", err)
	}

	return levels, nil
}

func (s *CatalogService) UpdateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error) {
	updated, err := s.store.Catalog().UpdateSubDegreeLevel(ctx, level)
	if err != nil {
		return domain.SubDegreeLevel{}, fmt.Errorf("s.store.Catalog.UpdateSubDegreeLevel -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteSubDegreeLevel(ctx context.Context, id uint) error {
	if err := s.store.Catalog().DeleteSubDegreeLevel(ctx, id); err != nil {
		return fmt.Errorf("s.store.Catalog.DeleteSubDegreeLevel -> %w", err)
	}

	return nil
}
