package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrContactNotFound  = errors.New("contact not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrSeasonNotFound   = errors.New("season not found")
	ErrActivityNotFound = errors.New("activity not found")
)

type Activity struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Contact struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Kind             string `gorm:"not null;default:individual"`
	BillingContactID *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Member struct {
	ID        uint `gorm:"primaryKey"`
	ContactID uint `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Season struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
}

type MembershipSubscription struct {
	ID       uint `gorm:"primaryKey"`
	MemberID uint `gorm:"not null;index"`
	SeasonID uint `gorm:"not null;index"`
	Active   bool `gorm:"not null;default:true"`
}

type MembershipDAO struct {
	db *gorm.DB
}

func NewMembershipDAO(db *gorm.DB) *MembershipDAO {
	return &MembershipDAO{
		db: db,
	}
}

func (d *MembershipDAO) FindContactByID(ctx context.Context, id uint) (Contact, error) {
	var contact Contact

	result := d.db.WithContext(ctx).First(&contact, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Contact{}, ErrContactNotFound
		}

		return Contact{}, result.Error
	}

	return contact, nil
}

func (d *MembershipDAO) FindMemberByContactID(ctx context.Context, contactID uint) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, "contact_id = ?", contactID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

// FindSeasonByDate picks the season whose range contains the date.
func (d *MembershipDAO) FindSeasonByDate(ctx context.Context, date time.Time) (Season, error) {
	var season Season

	result := d.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", date, date).
		First(&season)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Season{}, ErrSeasonNotFound
		}

		return Season{}, result.Error
	}

	return season, nil
}

func (d *MembershipDAO) FindSeasonByID(ctx context.Context, id uint) (Season, error) {
	var season Season

	result := d.db.WithContext(ctx).First(&season, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Season{}, ErrSeasonNotFound
		}

		return Season{}, result.Error
	}

	return season, nil
}

func (d *MembershipDAO) HasActiveSubscription(ctx context.Context, memberID, seasonID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&MembershipSubscription{}).
		Where("member_id = ? AND season_id = ? AND active = true", memberID, seasonID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *MembershipDAO) FindAllActivities(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Order("name ASC").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *MembershipDAO) FindActivityByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}
