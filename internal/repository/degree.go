package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/repository/dao"
)

var ErrDegreeRecordNotFound = dao.ErrDegreeRecordNotFound

type DegreeDAO interface {
	InsertRecord(ctx context.Context, record dao.DegreeRecord) (dao.DegreeRecord, error)
	FindRecordByID(ctx context.Context, id uint) (dao.DegreeRecord, error)
	FindRecordsByMemberID(ctx context.Context, memberID uint) ([]dao.DegreeRecord, error)
	FindHighestRecord(ctx context.Context, memberID, activityID uint) (dao.DegreeRecord, error)
	FindRecordsInRange(ctx context.Context, start, end time.Time, activityID *uint) ([]dao.DegreeRecord, error)
	DeleteRecord(ctx context.Context, id uint) error
}

type DegreeRepository struct {
	dao DegreeDAO
}

func NewDegreeRepository(dao DegreeDAO) *DegreeRepository {
	return &DegreeRepository{
		dao: dao,
	}
}

func (r *DegreeRepository) daoToDomain(rec dao.DegreeRecord) domain.DegreeRecord {
	record := domain.DegreeRecord{
		ID:               rec.ID,
		MemberID:         rec.MemberID,
		DegreeLevelID:    rec.DegreeLevelID,
		SubDegreeLevelID: rec.SubDegreeLevelID,
		Date:             rec.Date,
		EventID:          rec.EventID,
		CreatedAt:        rec.CreatedAt,
	}

	if rec.DegreeLevel.ID != 0 {
		record.DegreeLevel = &domain.DegreeLevel{
			ID:         rec.DegreeLevel.ID,
			Name:       rec.DegreeLevel.Name,
			Level:      rec.DegreeLevel.Level,
			ActivityID: rec.DegreeLevel.ActivityID,
		}
	}
	if rec.SubDegreeLevel != nil {
		record.SubDegreeLevel = &domain.SubDegreeLevel{
			ID:    rec.SubDegreeLevel.ID,
			Name:  rec.SubDegreeLevel.Name,
			Level: rec.SubDegreeLevel.Level,
		}
	}

	return record
}

func (r *DegreeRepository) CreateRecord(ctx context.Context, record domain.DegreeRecord) (domain.DegreeRecord, error) {
	created, err := r.dao.InsertRecord(ctx, dao.DegreeRecord{
		MemberID:         record.MemberID,
		DegreeLevelID:    record.DegreeLevelID,
		SubDegreeLevelID: record.SubDegreeLevelID,
		Date:             record.Date,
		EventID:          record.EventID,
	})
	if err != nil {
		return domain.DegreeRecord{}, fmt.Errorf("r.dao.InsertRecord -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DegreeRepository) FindRecordByID(ctx context.Context, id uint) (domain.DegreeRecord, error) {
	found, err := r.dao.FindRecordByID(ctx, id)
	if err != nil {
		return domain.DegreeRecord{}, fmt.Errorf("r.dao.FindRecordByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DegreeRepository) FindRecordsByMemberID(ctx context.Context, memberID uint) ([]domain.DegreeRecord, error) {
	found, err := r.dao.FindRecordsByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecordsByMemberID -> %w", err)
	}

	records := make([]domain.DegreeRecord, len(found))
	for i, rec := range found {
		records[i] = r.daoToDomain(rec)
	}

	return records, nil
}

func (r *DegreeRepository) FindHighestRecord(ctx context.Context, memberID, activityID uint) (domain.DegreeRecord, error) {
	found, err := r.dao.FindHighestRecord(ctx, memberID, activityID)
	if err != nil {
		return domain.DegreeRecord{}, fmt.Errorf("r.dao.FindHighestRecord -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DegreeRepository) FindRecordsInRange(ctx context.Context, start, end time.Time, activityID *uint) ([]domain.DegreeRecord, error) {
	found, err := r.dao.FindRecordsInRange(ctx, start, end, activityID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecordsInRange -> %w", err)
	}

	records := make([]domain.DegreeRecord, len(found))
	for i, rec := range found {
		records[i] = r.daoToDomain(rec)
	}

	return records, nil
}

func (r *DegreeRepository) DeleteRecord(ctx context.Context, id uint) error {
	if err := r.dao.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteRecord -> %w", err)
	}

	return nil
}
