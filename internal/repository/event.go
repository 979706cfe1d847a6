package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/repository/dao"
)

var (
	ErrEventNotFound       = dao.ErrEventNotFound
	ErrOrganizerNotFound   = dao.ErrOrganizerNotFound
	ErrParticipantNotFound = dao.ErrParticipantNotFound
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
	InsertOrganizer(ctx context.Context, organizer dao.Organizer) (dao.Organizer, error)
	FindOrganizerByID(ctx context.Context, id uint) (dao.Organizer, error)
	FindOrganizersByEventID(ctx context.Context, eventID uint) ([]dao.Organizer, error)
	UpdateOrganizer(ctx context.Context, organizer dao.Organizer) (dao.Organizer, error)
	DeleteOrganizer(ctx context.Context, id uint) error
	InsertParticipant(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindParticipantByID(ctx context.Context, id uint) (dao.Participant, error)
	FindParticipantsByEventID(ctx context.Context, eventID uint) ([]dao.Participant, error)
	FindParticipantsByBillID(ctx context.Context, billID uint) ([]dao.Participant, error)
	UpdateParticipant(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	DeleteParticipant(ctx context.Context, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:                 e.ID,
		ActivityID:         e.ActivityID,
		Date:               e.Date,
		EndDate:            e.EndDate,
		Comment:            e.Comment,
		Status:             string(e.Status),
		Type:               string(e.Type),
		MemberArticleID:    e.MemberArticleID,
		NonMemberArticleID: e.NonMemberArticleID,
		CostCenterID:       e.CostCenterID,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:                 e.ID,
		ActivityID:         e.ActivityID,
		Date:               e.Date,
		EndDate:            e.EndDate,
		Comment:            e.Comment,
		Status:             domain.EventStatus(e.Status),
		Type:               domain.EventType(e.Type),
		MemberArticleID:    e.MemberArticleID,
		NonMemberArticleID: e.NonMemberArticleID,
		CostCenterID:       e.CostCenterID,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}

	for _, o := range e.Organizers {
		event.Organizers = append(event.Organizers, r.organizerDaoToDomain(o))
	}
	for _, p := range e.Participants {
		event.Participants = append(event.Participants, r.participantDaoToDomain(p))
	}

	return event
}

func (r *EventRepository) organizerDomainToDao(o domain.Organizer) dao.Organizer {
	return dao.Organizer{
		ID:            o.ID,
		EventID:       o.EventID,
		ContactID:     o.ContactID,
		IsResponsible: o.IsResponsible,
	}
}

func (r *EventRepository) organizerDaoToDomain(o dao.Organizer) domain.Organizer {
	return domain.Organizer{
		ID:            o.ID,
		EventID:       o.EventID,
		ContactID:     o.ContactID,
		IsResponsible: o.IsResponsible,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (r *EventRepository) participantDomainToDao(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:                p.ID,
		EventID:           p.EventID,
		ContactID:         p.ContactID,
		ResultDegreeID:    p.ResultDegreeID,
		ResultSubDegreeID: p.ResultSubDegreeID,
		Comment:           p.Comment,
		ArticleID:         p.ArticleID,
		Discount:          p.Discount,
		BillID:            p.BillID,
	}
}

func (r *EventRepository) participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:                p.ID,
		EventID:           p.EventID,
		ContactID:         p.ContactID,
		ResultDegreeID:    p.ResultDegreeID,
		ResultSubDegreeID: p.ResultSubDegreeID,
		Comment:           p.Comment,
		ArticleID:         p.ArticleID,
		Discount:          p.Discount,
		BillID:            p.BillID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	created, err := r.dao.InsertOrganizer(ctx, r.organizerDomainToDao(organizer))
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.InsertOrganizer -> %w", err)
	}

	return r.organizerDaoToDomain(created), nil
}

func (r *EventRepository) FindOrganizerByID(ctx context.Context, id uint) (domain.Organizer, error) {
	found, err := r.dao.FindOrganizerByID(ctx, id)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.FindOrganizerByID -> %w", err)
	}

	return r.organizerDaoToDomain(found), nil
}

func (r *EventRepository) FindOrganizersByEventID(ctx context.Context, eventID uint) ([]domain.Organizer, error) {
	found, err := r.dao.FindOrganizersByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOrganizersByEventID -> %w", err)
	}

	organizers := make([]domain.Organizer, len(found))
	for i, o := range found {
		organizers[i] = r.organizerDaoToDomain(o)
	}

	return organizers, nil
}

func (r *EventRepository) UpdateOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	updated, err := r.dao.UpdateOrganizer(ctx, r.organizerDomainToDao(organizer))
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("r.dao.UpdateOrganizer -> %w", err)
	}

	return r.organizerDaoToDomain(updated), nil
}

func (r *EventRepository) DeleteOrganizer(ctx context.Context, id uint) error {
	if err := r.dao.DeleteOrganizer(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteOrganizer -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.InsertParticipant(ctx, r.participantDomainToDao(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.InsertParticipant -> %w", err)
	}

	return r.participantDaoToDomain(created), nil
}

func (r *EventRepository) FindParticipantByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindParticipantByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindParticipantByID -> %w", err)
	}

	return r.participantDaoToDomain(found), nil
}

func (r *EventRepository) FindParticipantsByEventID(ctx context.Context, eventID uint) ([]domain.Participant, error) {
	found, err := r.dao.FindParticipantsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipantsByEventID -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = r.participantDaoToDomain(p)
	}

	return participants, nil
}

func (r *EventRepository) FindParticipantsByBillID(ctx context.Context, billID uint) ([]domain.Participant, error) {
	found, err := r.dao.FindParticipantsByBillID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipantsByBillID -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = r.participantDaoToDomain(p)
	}

	return participants, nil
}

func (r *EventRepository) UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	updated, err := r.dao.UpdateParticipant(ctx, r.participantDomainToDao(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.UpdateParticipant -> %w", err)
	}

	return r.participantDaoToDomain(updated), nil
}

func (r *EventRepository) DeleteParticipant(ctx context.Context, id uint) error {
	if err := r.dao.DeleteParticipant(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteParticipant -> %w", err)
	}

	return nil
}
