package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/clubevents-api/internal/domain"
)

// Validate runs the building -> valid transition: it checks the preconditions
// before touching anything, then, per participant, stores the given result,
// appends the degree history entry and regenerates the payer's bill, and
// finally persists the new status. The whole procedure runs in one database
// transaction; any failure leaves the event building.
func (s *EventService) Validate(ctx context.Context, eventID uint, results []domain.ParticipantResult) (domain.Event, error) {
	var validated domain.Event

	err := s.store.Transact(ctx, func(tx Store) error {
		event, err := tx.Events().FindByID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("tx.Events.FindByID -> %w", err)
		}

		if err = event.RequireValidity(); err != nil {
			return err
		}

		byParticipant := make(map[uint]domain.ParticipantResult, len(results))
		for _, result := range results {
			byParticipant[result.ParticipantID] = result
		}

		for i := range event.Participants {
			participant := &event.Participants[i]

			if result, ok := byParticipant[participant.ID]; ok {
				if err = s.giveResult(ctx, tx, event, participant, result); err != nil {
					return err
				}
			}

			if participant.ArticleID != nil {
				if err = s.generateBill(ctx, tx, event, participant); err != nil {
					return err
				}
			}
		}

		if err = event.Validate(); err != nil {
			return err
		}
		if _, err = tx.Events().Update(ctx, event); err != nil {
			return fmt.Errorf("tx.Events.Update -> %w", err)
		}

		s.audit.Changed("event", event.ID, "status")

		validated = event
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}

	return validated, nil
}

// giveResult stores the degree granted to the participant and appends the
// matching history entry. An id of 0 means "no selection"; a degree left
// empty next to a chosen sub-degree is backfilled from the member's current
// highest degree for the event's activity.
func (s *EventService) giveResult(ctx context.Context, tx Store, event domain.Event, participant *domain.Participant, result domain.ParticipantResult) error {
	degreeID := optionalID(result.DegreeLevelID)
	subDegreeID := optionalID(result.SubDegreeLevelID)
	if !s.params.SubDegreesEnabled {
		subDegreeID = nil
	}

	if degreeID == nil && subDegreeID != nil {
		backfilled, err := s.currentHighestDegree(ctx, tx, event.ActivityID, participant.ContactID)
		if err != nil {
			return err
		}
		degreeID = backfilled
	}

	participant.ResultDegreeID = degreeID
	participant.ResultSubDegreeID = subDegreeID
	if result.Comment != nil {
		participant.Comment = *result.Comment
	}

	if _, err := tx.Events().UpdateParticipant(ctx, *participant); err != nil {
		return fmt.Errorf("tx.Events.UpdateParticipant -> %w", err)
	}

	if degreeID == nil {
		return nil
	}

	// The history append is tolerated to fail: the participant's result is
	// already saved, a missing member row must not abort the validation.
	member, err := tx.Membership().FindMemberByContactID(ctx, participant.ContactID)
	if err != nil {
		zap.L().Warn("skipping degree record, member lookup failed",
			zap.Uint("participant_id", participant.ID),
			zap.Uint("contact_id", participant.ContactID),
			zap.Error(err))
		return nil
	}

	_, err = tx.Degrees().CreateRecord(ctx, domain.DegreeRecord{
		MemberID:         member.ID,
		DegreeLevelID:    *degreeID,
		SubDegreeLevelID: subDegreeID,
		Date:             event.Date,
		EventID:          &event.ID,
	})
	if err != nil {
		zap.L().Warn("skipping degree record, append failed",
			zap.Uint("participant_id", participant.ID),
			zap.Uint("member_id", member.ID),
			zap.Error(err))
	}

	return nil
}

// currentHighestDegree resolves the participant's best degree for the
// activity; no member or no history means no backfill.
func (s *EventService) currentHighestDegree(ctx context.Context, tx Store, activityID, contactID uint) (*uint, error) {
	member, err := tx.Membership().FindMemberByContactID(ctx, contactID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("tx.Membership.FindMemberByContactID -> %w", err)
	}

	highest, err := tx.Degrees().FindHighestRecord(ctx, member.ID, activityID)
	if err != nil {
		if errors.Is(err, ErrDegreeRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("tx.Degrees.FindHighestRecord -> %w", err)
	}

	degreeID := highest.DegreeLevelID
	return &degreeID, nil
}

// generateBill finds or creates the open bill of the participant's payer and
// rebuilds its comment and every line from the participants currently linked
// to it. The rebuild is idempotent: re-running never duplicates lines.
func (s *EventService) generateBill(ctx context.Context, tx Store, event domain.Event, participant *domain.Participant) error {
	contact, err := tx.Membership().FindContactByID(ctx, participant.ContactID)
	if err != nil {
		return fmt.Errorf("tx.Membership.FindContactByID -> %w", err)
	}

	payerID := contact.ResolveMostSpecific().Base().PayerID()

	customer, err := tx.Billing().GetOrCreateCustomer(ctx, payerID)
	if err != nil {
		return fmt.Errorf("tx.Billing.GetOrCreateCustomer -> %w", err)
	}

	bill, err := tx.Billing().FindOpenStandardBill(ctx, customer.ID)
	if err != nil {
		if !errors.Is(err, ErrBillNotFound) {
			return fmt.Errorf("tx.Billing.FindOpenStandardBill -> %w", err)
		}

		bill, err = tx.Billing().CreateBill(ctx, domain.Bill{
			CustomerID: customer.ID,
			Type:       domain.BillTypeStandard,
			Status:     domain.BillStatusBuilding,
			Date:       time.Now(),
		})
		if err != nil {
			return fmt.Errorf("tx.Billing.CreateBill -> %w", err)
		}
	}

	payerIsParticipant := payerID == contact.ID
	comment := domain.BillComment(event.Type, event.Date, event.Comment, participant.Comment, payerIsParticipant)
	if err = tx.Billing().SaveBillComment(ctx, bill.ID, comment); err != nil {
		return fmt.Errorf("tx.Billing.SaveBillComment -> %w", err)
	}

	if err = tx.Billing().DeleteBillLines(ctx, bill.ID); err != nil {
		return fmt.Errorf("tx.Billing.DeleteBillLines -> %w", err)
	}

	// Link the trigger first so the regather below always includes it.
	participant.BillID = &bill.ID
	if _, err = tx.Events().UpdateParticipant(ctx, *participant); err != nil {
		return fmt.Errorf("tx.Events.UpdateParticipant -> %w", err)
	}

	linked, err := tx.Events().FindParticipantsByBillID(ctx, bill.ID)
	if err != nil {
		return fmt.Errorf("tx.Events.FindParticipantsByBillID -> %w", err)
	}

	for _, p := range linked {
		if p.ArticleID == nil {
			continue
		}

		article, err := tx.Billing().FindArticleByID(ctx, *p.ArticleID)
		if err != nil {
			return fmt.Errorf("tx.Billing.FindArticleByID -> %w", err)
		}

		pContact, err := tx.Membership().FindContactByID(ctx, p.ContactID)
		if err != nil {
			return fmt.Errorf("tx.Membership.FindContactByID -> %w", err)
		}

		pEvent := event
		if p.EventID != event.ID {
			pEvent, err = tx.Events().FindByID(ctx, p.EventID)
			if err != nil {
				return fmt.Errorf("tx.Events.FindByID -> %w", err)
			}
		}

		designation := domain.LineDesignation(article.Designation, pContact.Name, p.Comment, pEvent.Type, payerID != p.ContactID)

		_, err = tx.Billing().AddBillLine(ctx, domain.BillLine{
			BillID:      bill.ID,
			ArticleID:   article.ID,
			Designation: designation,
			UnitPrice:   article.Price,
			Discount:    p.Discount,
		})
		if err != nil {
			return fmt.Errorf("tx.Billing.AddBillLine -> %w", err)
		}
	}

	return nil
}

func optionalID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
