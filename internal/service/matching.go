package service

import (
	"roadassist/internal/domain"
)

// NearestMechanic picks the winner for a request at loc from a candidate
// snapshot: eligible (available, approved, active account, known position),
// within its own service radius, and at strictly minimal distance. Equal
// distances resolve to the lexicographically smallest mechanic id so that the
// result never depends on snapshot order. Returns nil when no candidate
// qualifies or loc itself is incomplete.
//
// The scan is O(n) over the snapshot and carries no capacity guard: two
// concurrent requests may both pick the same mechanic.
func NearestMechanic(candidates []*domain.Mechanic, loc domain.Coordinate) *domain.Mechanic {
	if !loc.Known() {
		return nil
	}

	var (
		best     *domain.Mechanic
		bestDist float64
	)

	for _, m := range candidates {
		if m == nil || !m.Eligible() {
			continue
		}

		dist, ok := domain.DistanceKm(m.Position, loc)
		if !ok {
			continue
		}
		if dist > m.ServiceRadiusKm {
			continue
		}

		switch {
		case best == nil:
			best, bestDist = m, dist
		case dist < bestDist:
			best, bestDist = m, dist
		case dist == bestDist && m.ID.String() < best.ID.String():
			best = m
		}
	}

	return best
}
