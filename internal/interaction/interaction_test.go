package interaction

import (
	"strings"
	"testing"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/core"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/location"
)

func systemWithLocationAt(t *testing.T, x, y int) (*System, *location.System) {
	t.Helper()
	g := core.NewFloatGrid(20, 20)
	g.Set(x, y, 0.62)
	locs := location.NewSystem(g, core.NewRNG(1).Source())
	locs.Generate(1, 1)
	if locs.Count() != 1 {
		t.Fatalf("setup: placed %d locations, want 1", locs.Count())
	}
	return NewSystem(locs), locs
}

func TestTryInteractNothingNearby(t *testing.T) {
	s, _ := systemWithLocationAt(t, 10, 10)
	res := s.TryInteract(0, 0)
	if res.Success {
		t.Fatal("interaction far from any location should fail")
	}
	if !strings.Contains(strings.ToLower(res.Message), "nothing") {
		t.Fatalf("failure message %q should mention nothing", res.Message)
	}
	if res.Detail != nil {
		t.Fatal("failed interactions carry no detail")
	}
}

func TestTryInteractDiscoversOnFirstContact(t *testing.T) {
	s, locs := systemWithLocationAt(t, 10, 10)

	res := s.TryInteract(10, 10)
	if !res.Success {
		t.Fatalf("interaction failed: %q", res.Message)
	}
	if !strings.HasPrefix(res.Message, "Discovered ") {
		t.Fatalf("first contact message %q should report a discovery", res.Message)
	}
	if res.Detail == nil || res.Detail.Name == "" || res.Detail.Description == "" {
		t.Fatal("successful interaction must carry full location detail")
	}
	if !locs.At(0).Discovered {
		t.Fatal("interaction should have flipped the discovered flag")
	}

	again := s.TryInteract(10, 10)
	if !strings.HasPrefix(again.Message, "Examining ") {
		t.Fatalf("repeat contact message %q should report re-examination", again.Message)
	}
}

func TestTryInteractWithinManhattanRadius(t *testing.T) {
	s, _ := systemWithLocationAt(t, 10, 10)

	if res := s.TryInteract(10, 11); !res.Success {
		t.Fatal("adjacent cell should be within interaction range")
	}
	// Diagonal neighbor is Manhattan distance 2, outside radius 1.
	s2, _ := systemWithLocationAt(t, 10, 10)
	if res := s2.TryInteract(11, 11); res.Success {
		t.Fatal("diagonal cell should be out of interaction range")
	}
}

func TestTryInteractPrefersExactCell(t *testing.T) {
	g := core.NewFloatGrid(20, 20)
	locs := location.NewSystem(g, core.NewRNG(1).Source())
	locs.Add(location.Location{X: 10, Y: 11, Type: location.Beach, Name: "Shell Cove", Description: "Shells."})
	locs.Add(location.Location{X: 10, Y: 10, Type: location.Village, Name: "Harbor View", Description: "Boats."})
	s := NewSystem(locs)

	res := s.TryInteract(10, 10)
	if res.Detail == nil {
		t.Fatal("expected detail")
	}
	if res.Detail.Name != "Harbor View" {
		t.Fatalf("interacted with %q, want the location at the player's cell", res.Detail.Name)
	}
}

func TestTryInteractPrefersUndiscoveredNearby(t *testing.T) {
	g := core.NewFloatGrid(20, 20)
	locs := location.NewSystem(g, core.NewRNG(1).Source())
	first := locs.Add(location.Location{X: 10, Y: 9, Type: location.Beach, Name: "Golden Sands", Description: "Sand."})
	locs.Add(location.Location{X: 10, Y: 11, Type: location.Grove, Name: "Pine Haven", Description: "Pines."})
	locs.Discover(first)
	s := NewSystem(locs)

	res := s.TryInteract(10, 10)
	if res.Detail == nil || res.Detail.Name != "Pine Haven" {
		t.Fatalf("got %+v, want the undiscovered nearby location", res.Detail)
	}
	if !strings.HasPrefix(res.Message, "Discovered ") {
		t.Fatalf("message %q should report a discovery", res.Message)
	}

	// With everything discovered, storage order breaks the tie.
	res = s.TryInteract(10, 10)
	if res.Detail == nil || res.Detail.Name != "Golden Sands" {
		t.Fatalf("got %+v, want the first nearby location re-examined", res.Detail)
	}
	if !strings.HasPrefix(res.Message, "Examining ") {
		t.Fatalf("message %q should report re-examination", res.Message)
	}
}
