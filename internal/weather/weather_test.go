package weather

import (
	"math"
	"testing"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/core"
)

func TestNewStartsStable(t *testing.T) {
	s := New(core.NewRNG(1).Source())
	if s.IsTransitioning() {
		t.Fatal("fresh system should be stable")
	}
	if s.minutesUntilChange < MinDuration || s.minutesUntilChange > MaxDuration {
		t.Fatalf("countdown %d outside [%d,%d]", s.minutesUntilChange, MinDuration, MaxDuration)
	}
	if s.Current() != Sunny {
		t.Fatalf("initial weather %v, want Sunny", s.Current())
	}
}

func TestDeterministicUnderSeed(t *testing.T) {
	a := New(core.NewRNG(7).Source())
	b := New(core.NewRNG(7).Source())
	for i := 0; i < 5000; i++ {
		a.Update()
		b.Update()
		if a.Current() != b.Current() || a.IsTransitioning() != b.IsTransitioning() {
			t.Fatalf("state diverged after %d updates", i+1)
		}
	}
}

func TestTransitionCompletesToDifferentWeather(t *testing.T) {
	s := New(core.NewRNG(3).Source())
	initial := s.Current()

	s.minutesUntilChange = 1
	s.Update()
	if !s.IsTransitioning() {
		t.Fatal("countdown reaching zero should start a transition")
	}

	for i := 0; i < TransitionDuration && s.IsTransitioning(); i++ {
		s.Update()
	}
	if s.IsTransitioning() {
		t.Fatal("transition should complete within its duration")
	}
	if s.Current() == initial {
		t.Fatalf("weather should have changed from %v", initial)
	}
	if s.transitionMinutes != 0 {
		t.Fatalf("transition counter should reset, got %d", s.transitionMinutes)
	}
	if s.minutesUntilChange < MinDuration || s.minutesUntilChange > MaxDuration {
		t.Fatalf("new countdown %d outside [%d,%d]", s.minutesUntilChange, MinDuration, MaxDuration)
	}
}

func TestForcedTransitionLength(t *testing.T) {
	s := New(core.NewRNG(3).Source())
	s.minutesUntilChange = 1

	// The update that starts the transition already counts as its first
	// minute, so completion takes TransitionDuration-1 further updates.
	s.Update()
	if !s.IsTransitioning() {
		t.Fatal("expected the transition to start")
	}
	for i := 0; i < TransitionDuration-2; i++ {
		s.Update()
	}
	if !s.IsTransitioning() {
		t.Fatal("transition completed a minute early")
	}
	s.Update()
	if s.IsTransitioning() {
		t.Fatal("transition should be complete")
	}
}

func TestColorAdjustmentStable(t *testing.T) {
	cases := []struct {
		typ  Type
		want [3]float64
	}{
		{Sunny, [3]float64{1.1, 1.1, 1.0}},
		{PartlyCloudy, [3]float64{0.9, 0.9, 0.95}},
		{LightRain, [3]float64{0.7, 0.7, 0.8}},
	}
	for _, c := range cases {
		s := New(core.NewRNG(1).Source())
		s.current = c.typ
		r, g, b := s.ColorAdjustment()
		if r != c.want[0] || g != c.want[1] || b != c.want[2] {
			t.Fatalf("%v adjustment = (%f,%f,%f), want %v", c.typ, r, g, b, c.want)
		}
	}
}

func TestColorAdjustmentBlendsDuringTransition(t *testing.T) {
	s := New(core.NewRNG(1).Source())
	s.current = Sunny
	s.next = LightRain
	s.hasNext = true
	s.transitionMinutes = TransitionDuration / 2

	r, g, b := s.ColorAdjustment()
	wantR := (1.1 + 0.7) / 2
	wantG := (1.1 + 0.7) / 2
	wantB := (1.0 + 0.8) / 2
	if math.Abs(r-wantR) > 1e-9 || math.Abs(g-wantG) > 1e-9 || math.Abs(b-wantB) > 1e-9 {
		t.Fatalf("midpoint blend = (%f,%f,%f), want (%f,%f,%f)", r, g, b, wantR, wantG, wantB)
	}
}

func TestNextWeatherNeverRepeats(t *testing.T) {
	s := New(core.NewRNG(5).Source())
	for i := 0; i < 100; i++ {
		if got := s.nextWeather(); got == s.current {
			t.Fatal("nextWeather must differ from the current weather")
		}
	}
}

func TestSymbols(t *testing.T) {
	if Sunny.Symbol() == "" || PartlyCloudy.Symbol() == "" || LightRain.Symbol() == "" {
		t.Fatal("every weather type needs a symbol")
	}
}
