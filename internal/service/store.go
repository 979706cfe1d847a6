package service

import (
	"context"
	"time"

	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/repository"
)

var (
	ErrEventNotFound          = repository.ErrEventNotFound
	ErrOrganizerNotFound      = repository.ErrOrganizerNotFound
	ErrParticipantNotFound    = repository.ErrParticipantNotFound
	ErrDegreeLevelExists      = repository.ErrDegreeLevelExists
	ErrDegreeLevelNotFound    = repository.ErrDegreeLevelNotFound
	ErrSubDegreeLevelExists   = repository.ErrSubDegreeLevelExists
	ErrSubDegreeLevelNotFound = repository.ErrSubDegreeLevelNotFound
	ErrDegreeRecordNotFound   = repository.ErrDegreeRecordNotFound
	ErrContactNotFound        = repository.ErrContactNotFound
	ErrMemberNotFound         = repository.ErrMemberNotFound
	ErrSeasonNotFound         = repository.ErrSeasonNotFound
	ErrActivityNotFound       = repository.ErrActivityNotFound
	ErrBillNotFound           = repository.ErrBillNotFound
	ErrArticleNotFound        = repository.ErrArticleNotFound
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	CreateOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	FindOrganizerByID(ctx context.Context, id uint) (domain.Organizer, error)
	FindOrganizersByEventID(ctx context.Context, eventID uint) ([]domain.Organizer, error)
	UpdateOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	DeleteOrganizer(ctx context.Context, id uint) error
	CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindParticipantByID(ctx context.Context, id uint) (domain.Participant, error)
	FindParticipantsByEventID(ctx context.Context, eventID uint) ([]domain.Participant, error)
	FindParticipantsByBillID(ctx context.Context, billID uint) ([]domain.Participant, error)
	UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	DeleteParticipant(ctx context.Context, id uint) error
}

type CatalogRepository interface {
	CreateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error)
	FindDegreeLevelByID(ctx context.Context, id uint) (domain.DegreeLevel, error)
	FindAllDegreeLevels(ctx context.Context) ([]domain.DegreeLevel, error)
	UpdateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error)
	DeleteDegreeLevel(ctx context.Context, id uint) error
	CreateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error)
	FindSubDegreeLevelByID(ctx context.Context, id uint) (domain.SubDegreeLevel, error)
	FindAllSubDegreeLevels(ctx context.Context) ([]domain.SubDegreeLevel, error)
	UpdateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error)
	DeleteSubDegreeLevel(ctx context.Context, id uint) error
}

type DegreeRepository interface {
	CreateRecord(ctx context.Context, record domain.DegreeRecord) (domain.DegreeRecord, error)
	FindRecordByID(ctx context.Context, id uint) (domain.DegreeRecord, error)
	FindRecordsByMemberID(ctx context.Context, memberID uint) ([]domain.DegreeRecord, error)
	FindHighestRecord(ctx context.Context, memberID, activityID uint) (domain.DegreeRecord, error)
	FindRecordsInRange(ctx context.Context, start, end time.Time, activityID *uint) ([]domain.DegreeRecord, error)
	DeleteRecord(ctx context.Context, id uint) error
}

// MembershipRepository is the consumed membership-service contract.
type MembershipRepository interface {
	FindContactByID(ctx context.Context, id uint) (domain.Contact, error)
	FindMemberByContactID(ctx context.Context, contactID uint) (domain.Member, error)
	SeasonForDate(ctx context.Context, date time.Time) (domain.Season, error)
	FindSeasonByID(ctx context.Context, id uint) (domain.Season, error)
	HasActiveSubscription(ctx context.Context, memberID, seasonID uint) (bool, error)
	FindAllActivities(ctx context.Context) ([]domain.Activity, error)
	FindActivityByID(ctx context.Context, id uint) (domain.Activity, error)
}

// BillingEngine is the consumed billing-engine contract.
type BillingEngine interface {
	FindArticleByID(ctx context.Context, id uint) (domain.Article, error)
	GetOrCreateCustomer(ctx context.Context, contactID uint) (domain.CustomerAccount, error)
	FindOpenStandardBill(ctx context.Context, customerID uint) (domain.Bill, error)
	CreateBill(ctx context.Context, bill domain.Bill) (domain.Bill, error)
	FindBillByID(ctx context.Context, id uint) (domain.Bill, error)
	SaveBillComment(ctx context.Context, billID uint, comment string) error
	DeleteBillLines(ctx context.Context, billID uint) error
	AddBillLine(ctx context.Context, line domain.BillLine) (domain.BillLine, error)
	DeleteBill(ctx context.Context, id uint) error
}

// Store gives access to the repositories and to the transaction boundary
// every top-level mutating operation runs inside.
type Store interface {
	Events() EventRepository
	Catalog() CatalogRepository
	Degrees() DegreeRepository
	Membership() MembershipRepository
	Billing() BillingEngine
	Transact(ctx context.Context, fn func(tx Store) error) error
}
