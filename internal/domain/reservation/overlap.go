package reservation

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Interval is the half-open period [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval normalizes both ends to UTC and rejects empty or inverted
// periods.
func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

// Overlaps reports whether the two periods share an instant. Periods that
// only touch do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// FindConflict returns the first reservation in existing whose period
// overlaps candidate, skipping the reservation with id exclude.
func FindConflict(existing []Reservation, candidate Interval, exclude uuid.UUID) *Reservation {
	for i := range existing {
		if existing[i].ID == exclude {
			continue
		}
		if existing[i].Interval().Overlaps(candidate) {
			return &existing[i]
		}
	}
	return nil
}

// SortByStart orders reservations by start, then end, then id.
func SortByStart(rs []Reservation) {
	slices.SortFunc(rs, func(a, b Reservation) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		if c := a.End.Compare(b.End); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
}

// Occupation maps each room to its reservations in start order.
type Occupation map[uuid.UUID][]Reservation

// BuildOccupation groups reservations by room. Every id in roomIDs gets an
// entry, even without reservations.
func BuildOccupation(roomIDs []uuid.UUID, reservations []Reservation) Occupation {
	occ := make(Occupation, len(roomIDs))
	for _, id := range roomIDs {
		occ[id] = []Reservation{}
	}
	for _, r := range reservations {
		occ[r.RoomID] = append(occ[r.RoomID], r)
	}
	for id := range occ {
		SortByStart(occ[id])
	}
	return occ
}
