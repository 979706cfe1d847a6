package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDegreeRecordNotFound = errors.New("degree record not found")

type DegreeRecord struct {
	ID               uint      `gorm:"primaryKey"`
	MemberID         uint      `gorm:"not null;index"`
	DegreeLevelID    uint      `gorm:"not null"`
	SubDegreeLevelID *uint
	Date             time.Time `gorm:"not null"`
	EventID          *uint     `gorm:"index"`
	Event            *Event    `gorm:"foreignKey:EventID;constraint:OnDelete:SET NULL"`

	DegreeLevel    DegreeLevel     `gorm:"foreignKey:DegreeLevelID"`
	SubDegreeLevel *SubDegreeLevel `gorm:"foreignKey:SubDegreeLevelID"`

	CreatedAt time.Time
}

type DegreeDAO struct {
	db *gorm.DB
}

func NewDegreeDAO(db *gorm.DB) *DegreeDAO {
	return &DegreeDAO{
		db: db,
	}
}

func (d *DegreeDAO) InsertRecord(ctx context.Context, record DegreeRecord) (DegreeRecord, error) {
	result := d.db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		return DegreeRecord{}, result.Error
	}

	return record, nil
}

func (d *DegreeDAO) FindRecordByID(ctx context.Context, id uint) (DegreeRecord, error) {
	var record DegreeRecord

	result := d.db.WithContext(ctx).
		Preload("DegreeLevel").
		Preload("SubDegreeLevel").
		First(&record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DegreeRecord{}, ErrDegreeRecordNotFound
		}

		return DegreeRecord{}, result.Error
	}

	return record, nil
}

// FindRecordsByMemberID lists a member's ledger, best degree first.
func (d *DegreeDAO) FindRecordsByMemberID(ctx context.Context, memberID uint) ([]DegreeRecord, error) {
	var records []DegreeRecord

	result := d.db.WithContext(ctx).
		Preload("DegreeLevel").
		Preload("SubDegreeLevel").
		Joins("JOIN degree_levels ON degree_levels.id = degree_records.degree_level_id").
		Joins("LEFT JOIN sub_degree_levels ON sub_degree_levels.id = degree_records.sub_degree_level_id").
		Where("degree_records.member_id = ?", memberID).
		Order("degree_levels.level DESC").
		Order("COALESCE(sub_degree_levels.level, 0) DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// FindHighestRecord returns the member's best record for the activity,
// ordered by degree level then sub-degree level, both descending.
func (d *DegreeDAO) FindHighestRecord(ctx context.Context, memberID, activityID uint) (DegreeRecord, error) {
	var record DegreeRecord

	result := d.db.WithContext(ctx).
		Preload("DegreeLevel").
		Preload("SubDegreeLevel").
		Joins("JOIN degree_levels ON degree_levels.id = degree_records.degree_level_id").
		Joins("LEFT JOIN sub_degree_levels ON sub_degree_levels.id = degree_records.sub_degree_level_id").
		Where("degree_records.member_id = ?", memberID).
		Where("degree_levels.activity_id = ?", activityID).
		Order("degree_levels.level DESC").
		Order("COALESCE(sub_degree_levels.level, 0) DESC").
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DegreeRecord{}, ErrDegreeRecordNotFound
		}

		return DegreeRecord{}, result.Error
	}

	return record, nil
}

// FindRecordsInRange lists the records dated within [start, end], optionally
// restricted to one activity's degree ladder, for the statistics aggregator.
func (d *DegreeDAO) FindRecordsInRange(ctx context.Context, start, end time.Time, activityID *uint) ([]DegreeRecord, error) {
	var records []DegreeRecord

	query := d.db.WithContext(ctx).
		Preload("DegreeLevel").
		Preload("SubDegreeLevel").
		Joins("JOIN degree_levels ON degree_levels.id = degree_records.degree_level_id").
		Where("degree_records.date BETWEEN ? AND ?", start, end)
	if activityID != nil {
		query = query.Where("degree_levels.activity_id = ?", *activityID)
	}

	result := query.Distinct("degree_records.*").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *DegreeDAO) DeleteRecord(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&DegreeRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDegreeRecordNotFound
	}

	return nil
}
