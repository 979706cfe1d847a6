package domain

import (
	"fmt"
	"time"
)

// DegreeLevel is one rung of a degree ladder, optionally scoped to an
// activity. Level runs 1-100, higher is better.
type DegreeLevel struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	ActivityID *uint     `json:"activity_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SubDegreeLevel refines a degree; it is independent of any activity.
type SubDegreeLevel struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DegreeRecord is one ledger entry of a member achieving a degree on a date.
// EventID is nulled when the originating event is deleted; while it is set
// the record itself cannot be deleted.
type DegreeRecord struct {
	ID               uint       `json:"id"`
	MemberID         uint       `json:"member_id"`
	DegreeLevelID    uint       `json:"degree_level_id"`
	SubDegreeLevelID *uint      `json:"sub_degree_level_id,omitempty"`
	Date             time.Time  `json:"date"`
	EventID          *uint      `json:"event_id,omitempty"`
	DegreeLevel      *DegreeLevel    `json:"degree_level,omitempty"`
	SubDegreeLevel   *SubDegreeLevel `json:"sub_degree_level,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Label renders the record as "degree [sub-degree]" for display and for the
// statistics grouping key.
func (r *DegreeRecord) Label() string {
	if r.DegreeLevel == nil {
		return ""
	}
	if r.SubDegreeLevel != nil {
		return fmt.Sprintf("%s [%s]", r.DegreeLevel.Name, r.SubDegreeLevel.Name)
	}
	return r.DegreeLevel.Name
}

// RankKey is the composite sort key used by the statistics aggregator:
// degree level dominates, sub-degree level breaks ties.
func (r *DegreeRecord) RankKey() int {
	key := 0
	if r.DegreeLevel != nil {
		key = r.DegreeLevel.Level * 100000
	}
	if r.SubDegreeLevel != nil {
		key += r.SubDegreeLevel.Level
	}
	return key
}
