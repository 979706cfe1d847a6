package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDegreeLevelExists      = errors.New("degree level already exists")
	ErrDegreeLevelNotFound    = errors.New("degree level not found")
	ErrSubDegreeLevelExists   = errors.New("sub-degree level already exists")
	ErrSubDegreeLevelNotFound = errors.New("sub-degree level not found")
)

type DegreeLevel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null;uniqueIndex:uni_degree_levels_name_activity"`
	Level      int    `gorm:"not null"`
	ActivityID *uint  `gorm:"uniqueIndex:uni_degree_levels_name_activity"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SubDegreeLevel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null"`
	Level     int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) InsertDegreeLevel(ctx context.Context, level DegreeLevel) (DegreeLevel, error) {
	result := d.db.WithContext(ctx).Create(&level)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return DegreeLevel{}, ErrDegreeLevelExists
		}

		return DegreeLevel{}, result.Error
	}

	return level, nil
}

func (d *CatalogDAO) FindDegreeLevelByID(ctx context.Context, id uint) (DegreeLevel, error) {
	var level DegreeLevel

	result := d.db.WithContext(ctx).First(&level, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DegreeLevel{}, ErrDegreeLevelNotFound
		}

		return DegreeLevel{}, result.Error
	}

	return level, nil
}

// FindAllDegreeLevels lists degree levels ordered by activity, then from the
// highest level down.
func (d *CatalogDAO) FindAllDegreeLevels(ctx context.Context) ([]DegreeLevel, error) {
	var levels []DegreeLevel

	result := d.db.WithContext(ctx).
		Order("activity_id ASC NULLS FIRST").
		Order("level DESC").
		Find(&levels)
	if result.Error != nil {
		return nil, result.Error
	}

	return levels, nil
}

func (d *CatalogDAO) UpdateDegreeLevel(ctx context.Context, level DegreeLevel) (DegreeLevel, error) {
	result := d.db.WithContext(ctx).
		Model(&DegreeLevel{}).
		Where("id = ?", level.ID).
		Select("Name", "Level", "ActivityID").
		Updates(&level)
	if result.Error != nil {
		return DegreeLevel{}, result.Error
	}
	if result.RowsAffected == 0 {
		return DegreeLevel{}, ErrDegreeLevelNotFound
	}

	return level, nil
}

func (d *CatalogDAO) DeleteDegreeLevel(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&DegreeLevel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDegreeLevelNotFound
	}

	return nil
}

func (d *CatalogDAO) InsertSubDegreeLevel(ctx context.Context, level SubDegreeLevel) (SubDegreeLevel, error) {
	result := d.db.WithContext(ctx).Create(&level)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return SubDegreeLevel{}, ErrSubDegreeLevelExists
		}

		return SubDegreeLevel{}, result.Error
	}

	return level, nil
}

func (d *CatalogDAO) FindSubDegreeLevelByID(ctx context.Context, id uint) (SubDegreeLevel, error) {
	var level SubDegreeLevel

	result := d.db.WithContext(ctx).First(&level, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SubDegreeLevel{}, ErrSubDegreeLevelNotFound
		}

		return SubDegreeLevel{}, result.Error
	}

	return level, nil
}

func (d *CatalogDAO) FindAllSubDegreeLevels(ctx context.Context) ([]SubDegreeLevel, error) {
	var levels []SubDegreeLevel

	result := d.db.WithContext(ctx).Order("level DESC").Find(&levels)
	if result.Error != nil {
		return nil, result.Error
	}

	return levels, nil
}

func (d *CatalogDAO) UpdateSubDegreeLevel(ctx context.Context, level SubDegreeLevel) (SubDegreeLevel, error) {
	result := d.db.WithContext(ctx).
		Model(&SubDegreeLevel{}).
		Where("id = ?", level.ID).
		Select("Name", "Level").
		Updates(&level)
	if result.Error != nil {
		return SubDegreeLevel{}, result.Error
	}
	if result.RowsAffected == 0 {
		return SubDegreeLevel{}, ErrSubDegreeLevelNotFound
	}

	return level, nil
}

func (d *CatalogDAO) DeleteSubDegreeLevel(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&SubDegreeLevel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubDegreeLevelNotFound
	}

	return nil
}
