package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/repository/dao"
)

var (
	ErrDegreeLevelExists      = dao.ErrDegreeLevelExists
	ErrDegreeLevelNotFound    = dao.ErrDegreeLevelNotFound
	ErrSubDegreeLevelExists   = dao.ErrSubDegreeLevelExists
	ErrSubDegreeLevelNotFound = dao.ErrSubDegreeLevelNotFound
)

type CatalogDAO interface {
	InsertDegreeLevel(ctx context.Context, level dao.DegreeLevel) (dao.DegreeLevel, error)
	FindDegreeLevelByID(ctx context.Context, id uint) (dao.DegreeLevel, error)
	FindAllDegreeLevels(ctx context.Context) ([]dao.DegreeLevel, error)
	UpdateDegreeLevel(ctx context.Context, level dao.DegreeLevel) (dao.DegreeLevel, error)
	DeleteDegreeLevel(ctx context.Context, id uint) error
	InsertSubDegreeLevel(ctx context.Context, level dao.SubDegreeLevel) (dao.SubDegreeLevel, error)
	FindSubDegreeLevelByID(ctx context.Context, id uint) (dao.SubDegreeLevel, error)
	FindAllSubDegreeLevels(ctx context.Context) ([]dao.SubDegreeLevel, error)
	UpdateSubDegreeLevel(ctx context.Context, level dao.SubDegreeLevel) (dao.SubDegreeLevel, error)
	DeleteSubDegreeLevel(ctx context.Context, id uint) error
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) degreeLevelDaoToDomain(l dao.DegreeLevel) domain.DegreeLevel {
	return domain.DegreeLevel{
		ID:         l.ID,
		Name:       l.Name,
		Level:      l.Level,
		ActivityID: l.ActivityID,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func (r *CatalogRepository) subDegreeLevelDaoToDomain(l dao.SubDegreeLevel) domain.SubDegreeLevel {
	return domain.SubDegreeLevel{
		ID:        l.ID,
		Name:      l.Name,
		Level:     l.Level,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (r *CatalogRepository) CreateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error) {
	created, err := r.dao.InsertDegreeLevel(ctx, dao.DegreeLevel{
		Name:       level.Name,
		Level:      level.Level,
		ActivityID: level.ActivityID,
	})
	if err != nil {
		return domain.DegreeLevel{}, fmt.Errorf("r.dao.InsertDegreeLevel -> %w", err)
	}

	return r.degreeLevelDaoToDomain(created), nil
}

func (r *CatalogRepository) FindDegreeLevelByID(ctx context.Context, id uint) (domain.DegreeLevel, error) {
	found, err := r.dao.FindDegreeLevelByID(ctx, id)
	if err != nil {
		return domain.DegreeLevel{}, fmt.Errorf("r.dao.FindDegreeLevelByID -> %w", err)
	}

	return r.degreeLevelDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAllDegreeLevels(ctx context.Context) ([]domain.DegreeLevel, error) {
	found, err := r.dao.FindAllDegreeLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllDegreeLevels -> %w", err)
	}

	levels := make([]domain.DegreeLevel, len(found))
	for i, l := range found {
		levels[i] = r.degreeLevelDaoToDomain(l)
	}

	return levels, nil
}

func (r *CatalogRepository) UpdateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error) {
	updated, err := r.dao.UpdateDegreeLevel(ctx, dao.DegreeLevel{
		ID:         level.ID,
		Name:       level.Name,
		Level:      level.Level,
		ActivityID: level.ActivityID,
	})
	if err != nil {
		return domain.DegreeLevel{}, fmt.Errorf("r.dao.UpdateDegreeLevel -> %w", err)
	}

	return r.degreeLevelDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteDegreeLevel(ctx context.Context, id uint) error {
	if err := r.dao.DeleteDegreeLevel(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteDegreeLevel -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error) {
	created, err := r.dao.InsertSubDegreeLevel(ctx, dao.SubDegreeLevel{
		Name:  level.Name,
		Level: level.Level,
	})
	if err != nil {
		return domain.SubDegreeLevel{}, fmt.Errorf("r.dao.InsertSubDegreeLevel -> %w", err)
	}

	return r.subDegreeLevelDaoToDomain(created), nil
}

func (r *CatalogRepository) FindSubDegreeLevelByID(ctx context.Context, id uint) (domain.SubDegreeLevel, error) {
	found, err := r.dao.FindSubDegreeLevelByID(ctx, id)
	if err != nil {
		return domain.SubDegreeLevel{}, fmt.Errorf("r.dao.FindSubDegreeLevelByID -> %w", err)
	}

	return r.subDegreeLevelDaoToDomain(found), nil
}

func (r *CatalogRepository) FindAllSubDegreeLevels(ctx context.Context) ([]domain.SubDegreeLevel, error) {
	found, err := r.dao.FindAllSubDegreeLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllSubDegreeLevels -> %w", err)
	}

	levels := make([]domain.SubDegreeLevel, len(found))
	for i, l := range found {
		levels[i] = r.subDegreeLevelDaoToDomain(l)
	}

	return levels, nil
}

func (r *CatalogRepository) UpdateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error) {
	updated, err := r.dao.UpdateSubDegreeLevel(ctx, dao.SubDegreeLevel{
		ID:    level.ID,
		Name:  level.Name,
		Level: level.Level,
	})
	if err != nil {
		return domain.SubDegreeLevel{}, fmt.Errorf("r.dao.UpdateSubDegreeLevel -> %w", err)
	}

	return r.subDegreeLevelDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteSubDegreeLevel(ctx context.Context, id uint) error {
	if err := r.dao.DeleteSubDegreeLevel(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteSubDegreeLevel -> %w", err)
	}

	return nil
}
