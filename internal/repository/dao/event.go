package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrOrganizerNotFound   = errors.New("organizer not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

type Event struct {
	ID                 uint      `gorm:"primaryKey"`
	ActivityID         uint      `gorm:"not null;index"`
	Date               time.Time `gorm:"not null"`
	EndDate            *time.Time
	Comment            string
	Status             string `gorm:"not null;default:building"`
	Type               string `gorm:"not null"`
	MemberArticleID    *uint
	NonMemberArticleID *uint
	CostCenterID       *uint

	Organizers   []Organizer   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Participants []Participant `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Organizer struct {
	ID            uint `gorm:"primaryKey"`
	EventID       uint `gorm:"not null;index"`
	ContactID     uint `gorm:"not null"`
	IsResponsible bool `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Participant struct {
	ID                uint `gorm:"primaryKey"`
	EventID           uint `gorm:"not null;index"`
	ContactID         uint `gorm:"not null"`
	ResultDegreeID    *uint
	ResultSubDegreeID *uint
	Comment           string
	ArticleID         *uint
	Discount          float64 `gorm:"not null;default:0"`
	BillID            *uint   `gorm:"index"`
	Bill              *Bill   `gorm:"foreignKey:BillID;constraint:OnDelete:SET NULL"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

// FindByID loads the event with both child collections, which CheckValidity
// relies on.
func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).
		Preload("Organizers").
		Preload("Participants").
		First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("date DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", event.ID).
		Select("ActivityID", "Date", "EndDate", "Comment", "Status", "Type",
			"MemberArticleID", "NonMemberArticleID", "CostCenterID").
		Updates(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return event, nil
}

// Delete removes the event; organizers and participants go with it through
// the FK cascade.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) InsertOrganizer(ctx context.Context, organizer Organizer) (Organizer, error) {
	result := d.db.WithContext(ctx).Create(&organizer)
	if result.Error != nil {
		return Organizer{}, result.Error
	}

	return organizer, nil
}

func (d *EventDAO) FindOrganizerByID(ctx context.Context, id uint) (Organizer, error) {
	var organizer Organizer

	result := d.db.WithContext(ctx).First(&organizer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organizer{}, ErrOrganizerNotFound
		}

		return Organizer{}, result.Error
	}

	return organizer, nil
}

func (d *EventDAO) FindOrganizersByEventID(ctx context.Context, eventID uint) ([]Organizer, error) {
	var organizers []Organizer

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&organizers)
	if result.Error != nil {
		return nil, result.Error
	}

	return organizers, nil
}

func (d *EventDAO) UpdateOrganizer(ctx context.Context, organizer Organizer) (Organizer, error) {
	result := d.db.WithContext(ctx).
		Model(&Organizer{}).
		Where("id = ?", organizer.ID).
		Select("ContactID", "IsResponsible").
		Updates(&organizer)
	if result.Error != nil {
		return Organizer{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Organizer{}, ErrOrganizerNotFound
	}

	return organizer, nil
}

func (d *EventDAO) DeleteOrganizer(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Organizer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganizerNotFound
	}

	return nil
}

func (d *EventDAO) InsertParticipant(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *EventDAO) FindParticipantByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *EventDAO) FindParticipantsByEventID(ctx context.Context, eventID uint) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *EventDAO) FindParticipantsByBillID(ctx context.Context, billID uint) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Where("bill_id = ?", billID).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *EventDAO) UpdateParticipant(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("id = ?", participant.ID).
		Select("ContactID", "ResultDegreeID", "ResultSubDegreeID", "Comment",
			"ArticleID", "Discount", "BillID").
		Updates(&participant)
	if result.Error != nil {
		return Participant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Participant{}, ErrParticipantNotFound
	}

	return participant, nil
}

func (d *EventDAO) DeleteParticipant(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Participant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}
