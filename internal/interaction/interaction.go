// Package interaction resolves explicit interaction attempts against the
// island's locations.
package interaction

import (
	"fmt"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/location"
)

// Radius is the Manhattan distance within which a player can interact. It is
// deliberately a different metric from the discovery radius.
const Radius = 1

// Detail carries the full description of an interacted location so the caller
// can react, for example by spawning an item.
type Detail struct {
	Name        string
	Type        location.Type
	Description string
}

// Result reports the outcome of an interaction attempt.
type Result struct {
	Success bool
	Message string
	Detail  *Detail
}

// System resolves interactions. It holds only a reference to the location
// system; all location mutation stays there.
type System struct {
	locs   *location.System
	radius int
}

// NewSystem creates an interaction system over the given locations.
func NewSystem(locs *location.System) *System {
	return &System{locs: locs, radius: Radius}
}

// TryInteract attempts to interact from (x, y). Resolution order: a location
// exactly at the player's cell, then the first undiscovered nearby location,
// then the first nearby location as a re-examination. Placement order is the
// deterministic tie-break.
func (s *System) TryInteract(x, y int) Result {
	nearby := s.locs.Nearby(x, y, s.radius)
	if len(nearby) == 0 {
		return Result{Message: "Nothing interesting to interact with here."}
	}

	for _, i := range nearby {
		loc := s.locs.At(i)
		if loc.X == x && loc.Y == y {
			return s.resolve(i)
		}
	}
	for _, i := range nearby {
		if !s.locs.At(i).Discovered {
			return s.resolve(i)
		}
	}
	return s.resolve(nearby[0])
}

// resolve discovers the location on first contact and reports it either way.
func (s *System) resolve(i int) Result {
	loc := s.locs.At(i)
	message := fmt.Sprintf("Examining %s...", loc.Name)
	if !loc.Discovered {
		loc = s.locs.Discover(i)
		message = fmt.Sprintf("Discovered %s!", loc.Name)
	}
	return Result{
		Success: true,
		Message: message,
		Detail: &Detail{
			Name:        loc.Name,
			Type:        loc.Type,
			Description: loc.Description,
		},
	}
}
