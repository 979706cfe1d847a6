package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/clubevents-api/internal/audit"
	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/settings"
)

type EventService struct {
	store  Store
	params *settings.Params
	audit  *audit.Registry
}

func NewEventService(store Store, params *settings.Params, auditReg *audit.Registry) *EventService {
	return &EventService{
		store:  store,
		params: params,
		audit:  auditReg,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.ActivityID == 0 {
		return domain.Event{}, domain.NewValidationError("no activity configured")
	}

	event.Status = domain.EventStatusBuilding
	event.Normalize()

	created, err := s.store.Events().Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.store.Events.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.store.Events().FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.store.Events.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) GetEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.store.Events().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.store.Events.FindAll -> %w", err)
	}

	return events, nil
}

// UpdateEvent saves the event's editable fields. Validated events are
// immutable, and the status can only move through the validate transition.
func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	existing, err := s.store.Events().FindByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.store.Events.FindByID -> %w", err)
	}

	if existing.Status != domain.EventStatusBuilding {
		return domain.Event{}, domain.NewValidationError(existing.Type.Label() + " validated!")
	}

	event.Status = existing.Status
	event.Normalize()

	updated, err := s.store.Events().Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.store.Events.Update -> %w", err)
	}

	s.audit.Changed("event", event.ID, "date", "end_date", "comment", "type")

	return updated, nil
}

// DeleteEvent removes a building event together with its organizers,
// participants and the bills those participants generated.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	return s.store.Transact(ctx, func(tx Store) error {
		event, err := tx.Events().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("tx.Events.FindByID -> %w", err)
		}

		if err = event.CanDelete(); err != nil {
			return err
		}

		var billIDs []uint
		for _, p := range event.Participants {
			if p.BillID != nil {
				billIDs = append(billIDs, *p.BillID)
			}
		}

		if err = tx.Events().Delete(ctx, id); err != nil {
			return fmt.Errorf("tx.Events.Delete -> %w", err)
		}

		for _, billID := range billIDs {
			if err = tx.Billing().DeleteBill(ctx, billID); err != nil {
				return fmt.Errorf("tx.Billing.DeleteBill -> %w", err)
			}
		}

		return nil
	})
}

// CheckValidity reports why the event cannot be validated, "" when it can.
func (s *EventService) CheckValidity(ctx context.Context, id uint) (string, error) {
	event, err := s.store.Events().FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("s.store.Events.FindByID -> %w", err)
	}

	return event.CheckValidity(), nil
}

func (s *EventService) AddOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	event, err := s.store.Events().FindByID(ctx, organizer.EventID)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("s.store.Events.FindByID -> %w", err)
	}

	if event.Status != domain.EventStatusBuilding {
		return domain.Organizer{}, domain.NewValidationError(event.Type.Label() + " validated!")
	}

	created, err := s.store.Events().CreateOrganizer(ctx, organizer)
	if err != nil {
		return domain.Organizer{}, fmt.Errorf("s.store.Events.CreateOrganizer -> %w", err)
	}

	return created, nil
}

func (s *EventService) RemoveOrganizer(ctx context.Context, organizerID uint) error {
	organizer, err := s.store.Events().FindOrganizerByID(ctx, organizerID)
	if err != nil {
		return fmt.Errorf("s.store.Events.FindOrganizerByID -> %w", err)
	}

	event, err := s.store.Events().FindByID(ctx, organizer.EventID)
	if err != nil {
		return fmt.Errorf("s.store.Events.FindByID -> %w", err)
	}

	if event.Status != domain.EventStatusBuilding {
		return domain.NewValidationError(event.Type.Label() + " validated!")
	}

	if err = s.store.Events().DeleteOrganizer(ctx, organizerID); err != nil {
		return fmt.Errorf("s.store.Events.DeleteOrganizer -> %w", err)
	}

	return nil
}

// SetResponsible clears the responsible flag on every organizer of the event
// and raises it on the target. Last writer wins; after the call exactly one
// organizer carries the flag.
func (s *EventService) SetResponsible(ctx context.Context, organizerID uint) error {
	return s.store.Transact(ctx, func(tx Store) error {
		organizer, err := tx.Events().FindOrganizerByID(ctx, organizerID)
		if err != nil {
			return fmt.Errorf("tx.Events.FindOrganizerByID -> %w", err)
		}

		event, err := tx.Events().FindByID(ctx, organizer.EventID)
		if err != nil {
			return fmt.Errorf("tx.Events.FindByID -> %w", err)
		}

		if event.Status != domain.EventStatusBuilding {
			return domain.NewValidationError(event.Type.Label() + " validated!")
		}

		siblings, err := tx.Events().FindOrganizersByEventID(ctx, organizer.EventID)
		if err != nil {
			return fmt.Errorf("tx.Events.FindOrganizersByEventID -> %w", err)
		}

		for _, sibling := range siblings {
			sibling.IsResponsible = false
			if _, err = tx.Events().UpdateOrganizer(ctx, sibling); err != nil {
				return fmt.Errorf("tx.Events.UpdateOrganizer -> %w", err)
			}
		}

		organizer.IsResponsible = true
		if _, err = tx.Events().UpdateOrganizer(ctx, organizer); err != nil {
			return fmt.Errorf("tx.Events.UpdateOrganizer -> %w", err)
		}

		s.audit.Changed("organizer", organizerID, "is_responsible")

		return nil
	})
}

// AddParticipant creates a participant on a building event, seeding the
// comment from the configured template on examinations and defaulting the
// article from the event depending on the contact's membership for the
// season of the event date.
func (s *EventService) AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	event, err := s.store.Events().FindByID(ctx, participant.EventID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.store.Events.FindByID -> %w", err)
	}

	if event.Status != domain.EventStatusBuilding {
		return domain.Participant{}, domain.NewValidationError(event.Type.Label() + " validated!")
	}

	if participant.Comment == "" && event.Type == domain.EventTypeExamination {
		participant.Comment = s.params.DefaultExamComment
	}

	if participant.ArticleID == nil {
		participant.ArticleID = s.defaultArticle(ctx, event, participant.ContactID)
	}

	created, err := s.store.Events().CreateParticipant(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.store.Events.CreateParticipant -> %w", err)
	}

	return created, nil
}

// defaultArticle picks the event's member article when the contact holds an
// active subscription for the season containing the event date, the
// non-member article otherwise.
func (s *EventService) defaultArticle(ctx context.Context, event domain.Event, contactID uint) *uint {
	isMember := false

	member, err := s.store.Membership().FindMemberByContactID(ctx, contactID)
	if err == nil {
		season, sErr := s.store.Membership().SeasonForDate(ctx, event.Date)
		if sErr == nil {
			isMember, _ = s.store.Membership().HasActiveSubscription(ctx, member.ID, season.ID)
		}
	} else if !errors.Is(err, ErrMemberNotFound) {
		zap.L().Warn("membership lookup failed, defaulting to non-member article",
			zap.Uint("contact_id", contactID), zap.Error(err))
	}

	if isMember {
		return event.MemberArticleID
	}
	return event.NonMemberArticleID
}

func (s *EventService) UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	existing, err := s.store.Events().FindParticipantByID(ctx, participant.ID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.store.Events.FindParticipantByID -> %w", err)
	}

	event, err := s.store.Events().FindByID(ctx, existing.EventID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.store.Events.FindByID -> %w", err)
	}

	if event.Status != domain.EventStatusBuilding {
		return domain.Participant{}, domain.NewValidationError(event.Type.Label() + " validated!")
	}

	participant.EventID = existing.EventID
	participant.BillID = existing.BillID

	updated, err := s.store.Events().UpdateParticipant(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.store.Events.UpdateParticipant -> %w", err)
	}

	return updated, nil
}

// RemoveParticipant deletes a participant of a building event along with the
// bill the participant generated, if any.
func (s *EventService) RemoveParticipant(ctx context.Context, participantID uint) error {
	return s.store.Transact(ctx, func(tx Store) error {
		participant, err := tx.Events().FindParticipantByID(ctx, participantID)
		if err != nil {
			return fmt.Errorf("tx.Events.FindParticipantByID -> %w", err)
		}

		event, err := tx.Events().FindByID(ctx, participant.EventID)
		if err != nil {
			return fmt.Errorf("tx.Events.FindByID -> %w", err)
		}

		if event.Status != domain.EventStatusBuilding {
			return domain.NewValidationError(event.Type.Label() + " validated!")
		}

		if err = tx.Events().DeleteParticipant(ctx, participantID); err != nil {
			return fmt.Errorf("tx.Events.DeleteParticipant -> %w", err)
		}

		if participant.BillID != nil {
			if err = tx.Billing().DeleteBill(ctx, *participant.BillID); err != nil {
				return fmt.Errorf("tx.Billing.DeleteBill -> %w", err)
			}
		}

		return nil
	})
}
