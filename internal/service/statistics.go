package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/settings"
)

// DegreeCount is one statistics row: a printable degree label and how many
// times it was achieved.
type DegreeCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ActivityStatistics groups the counted degrees of one activity. Activity is
// nil when activity scoping is disabled.
type ActivityStatistics struct {
	Activity *domain.Activity `json:"activity"`
	Degrees  []DegreeCount    `json:"degrees"`
}

type StatisticsService struct {
	store  Store
	params *settings.Params
}

func NewStatisticsService(store Store, params *settings.Params) *StatisticsService {
	return &StatisticsService{
		store:  store,
		params: params,
	}
}

// GetStatistics counts the degrees achieved within the season, grouped by
// degree label and ranked best degree first, per activity when activity
// scoping is enabled.
func (s *StatisticsService) GetStatistics(ctx context.Context, seasonID uint) ([]ActivityStatistics, error) {
	season, err := s.store.Membership().FindSeasonByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("s.store.Membership.FindSeasonByID -> %w", err)
	}

	if !s.params.ActivityScopingEnabled {
		records, err := s.store.Degrees().FindRecordsInRange(ctx, season.StartDate, season.EndDate, nil)
		if err != nil {
			return nil, fmt.Errorf("s.store.Degrees.FindRecordsInRange -> %w", err)
		}

		return []ActivityStatistics{{Activity: nil, Degrees: countDegrees(records)}}, nil
	}

	activities, err := s.store.Membership().FindAllActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.store.Membership.FindAllActivities -> %w", err)
	}

	statistics := make([]ActivityStatistics, 0, len(activities))
	for i := range activities {
		activity := activities[i]

		records, err := s.store.Degrees().FindRecordsInRange(ctx, season.StartDate, season.EndDate, &activity.ID)
		if err != nil {
			return nil, fmt.Errorf("s.store.Degrees.FindRecordsInRange -> %w", err)
		}

		statistics = append(statistics, ActivityStatistics{
			Activity: &activity,
			Degrees:  countDegrees(records),
		})
	}

	return statistics, nil
}

// countDegrees groups the records by label and sorts the groups by the
// composite rank key, best degree first.
func countDegrees(records []domain.DegreeRecord) []DegreeCount {
	counts := make(map[string]int)
	ranks := make(map[string]int)
	for i := range records {
		label := records[i].Label()
		if label == "" {
			continue
		}
		counts[label]++
		ranks[label] = records[i].RankKey()
	}

	degrees := make([]DegreeCount, 0, len(counts))
	for label, count := range counts {
		degrees = append(degrees, DegreeCount{Label: label, Count: count})
	}
	sort.Slice(degrees, func(i, j int) bool {
		ri, rj := ranks[degrees[i].Label], ranks[degrees[j].Label]
		if ri != rj {
			return ri > rj
		}
		return degrees[i].Label < degrees[j].Label
	})

	return degrees
}
