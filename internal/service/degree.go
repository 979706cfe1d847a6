package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/clubevents-api/internal/domain"
)

type DegreeService struct {
	store Store
}

func NewDegreeService(store Store) *DegreeService {
	return &DegreeService{
		store: store,
	}
}

// GetMemberDegrees lists the member's ledger, best degree first.
func (s *DegreeService) GetMemberDegrees(ctx context.Context, memberID uint) ([]domain.DegreeRecord, error) {
	records, err := s.store.Degrees().FindRecordsByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("s.store.Degrees.FindRecordsByMemberID -> %w", err)
	}

	return records, nil
}

// DeleteRecord removes a history entry. A record still linked to an event is
// protected: the event has to be deleted first, which nulls the link.
func (s *DegreeService) DeleteRecord(ctx context.Context, recordID uint) error {
	record, err := s.store.Degrees().FindRecordByID(ctx, recordID)
	if err != nil {
		return fmt.Errorf("s.store.Degrees.FindRecordByID -> %w", err)
	}

	if record.EventID != nil {
		event, err := s.store.Events().FindByID(ctx, *record.EventID)
		if err != nil && !errors.Is(err, ErrEventNotFound) {
			return fmt.Errorf("s.store.Events.FindByID -> %w", err)
		}
		if err == nil {
			return domain.NewValidationError(event.Type.Label() + " validated!")
		}
	}

	if err = s.store.Degrees().DeleteRecord(ctx, recordID); err != nil {
		return fmt.Errorf("s.store.Degrees.DeleteRecord -> %w", err)
	}

	return nil
}
