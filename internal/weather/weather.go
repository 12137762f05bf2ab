// Package weather runs the island's weather cycle and its color effects.
package weather

import "math/rand/v2"

// Type enumerates the weather conditions.
type Type uint8

const (
	Sunny Type = iota
	PartlyCloudy
	LightRain

	numTypes
)

// String returns the display name for the weather type.
func (t Type) String() string {
	switch t {
	case Sunny:
		return "Sunny"
	case PartlyCloudy:
		return "Partly Cloudy"
	case LightRain:
		return "Light Rain"
	}
	return "Unknown"
}

// Symbol returns the single-glyph indicator for the weather type.
func (t Type) Symbol() string {
	switch t {
	case Sunny:
		return "☼"
	case PartlyCloudy:
		return "⛅"
	case LightRain:
		return "☂"
	}
	return "?"
}

// Cycle timing, in simulated minutes.
const (
	MinDuration        = 180
	MaxDuration        = 480
	TransitionDuration = 30
)

// adjustments holds the RGB multiplier triple per weather type.
var adjustments = [numTypes][3]float64{
	Sunny:        {1.1, 1.1, 1.0},
	PartlyCloudy: {0.9, 0.9, 0.95},
	LightRain:    {0.7, 0.7, 0.8},
}

// System is the weather state machine: stable periods with a random countdown,
// separated by fixed-length linear transitions.
type System struct {
	rng *rand.Rand

	current            Type
	next               Type
	hasNext            bool
	transitionMinutes  int
	minutesUntilChange int
}

// New returns a sunny weather system with a randomly drawn stable period.
func New(rng *rand.Rand) *System {
	s := &System{rng: rng, current: Sunny}
	s.minutesUntilChange = s.nextDuration()
	return s
}

func (s *System) nextDuration() int {
	return MinDuration + s.rng.IntN(MaxDuration-MinDuration+1)
}

// nextWeather picks a different weather type uniformly at random.
func (s *System) nextWeather() Type {
	candidates := make([]Type, 0, numTypes-1)
	for t := Type(0); t < numTypes; t++ {
		if t != s.current {
			candidates = append(candidates, t)
		}
	}
	return candidates[s.rng.IntN(len(candidates))]
}

// Update advances the weather by one simulated minute.
func (s *System) Update() {
	if s.hasNext {
		s.transitionMinutes++
		if s.transitionMinutes >= TransitionDuration {
			s.current = s.next
			s.hasNext = false
			s.transitionMinutes = 0
			s.minutesUntilChange = s.nextDuration()
		}
		return
	}
	s.minutesUntilChange--
	if s.minutesUntilChange <= 0 {
		s.next = s.nextWeather()
		s.hasNext = true
		s.transitionMinutes = 1
	}
}

// Current returns the active weather type.
func (s *System) Current() Type { return s.current }

// IsTransitioning reports whether a weather change is in progress.
func (s *System) IsTransitioning() bool { return s.hasNext }

// Description returns the display name of the current weather.
func (s *System) Description() string { return s.current.String() }

// ColorAdjustment returns the RGB multipliers for the current weather. During
// a transition the triples of the two conditions are linearly interpolated.
func (s *System) ColorAdjustment() (float64, float64, float64) {
	cur := adjustments[s.current]
	if !s.hasNext {
		return cur[0], cur[1], cur[2]
	}
	nxt := adjustments[s.next]
	progress := float64(s.transitionMinutes) / float64(TransitionDuration)
	if progress > 1 {
		progress = 1
	}
	return cur[0]*(1-progress) + nxt[0]*progress,
		cur[1]*(1-progress) + nxt[1]*progress,
		cur[2]*(1-progress) + nxt[2]*progress
}
