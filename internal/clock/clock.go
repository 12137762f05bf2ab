// Package clock tracks the in-game day/night cycle and its lighting effects.
package clock

import (
	"fmt"
	"math"
)

const (
	// MinutesPerDay is when the minute counter wraps and the day increments.
	MinutesPerDay = 1440

	// startMinutes is 06:00, the traditional first light of a session.
	startMinutes = 360
)

// Day-progress bands for the categorical time description.
const (
	dawnStart  = 0.25
	dayStart   = 0.35
	duskStart  = 0.708
	nightStart = 0.792
)

// Clock advances a fixed number of minutes per turn and wraps at midnight.
type Clock struct {
	minutes        int
	day            int
	minutesPerTurn int
}

// New returns a clock starting at 06:00 on day 1.
func New(minutesPerTurn int) *Clock {
	if minutesPerTurn <= 0 {
		minutesPerTurn = 1
	}
	return &Clock{minutes: startMinutes, day: 1, minutesPerTurn: minutesPerTurn}
}

// Advance moves time forward by one turn.
func (c *Clock) Advance() {
	c.minutes += c.minutesPerTurn
	if c.minutes >= MinutesPerDay {
		c.minutes = 0
		c.day++
	}
}

// Minutes returns minutes since midnight, in [0, 1439].
func (c *Clock) Minutes() int { return c.minutes }

// Day returns the current day counter, starting at 1.
func (c *Clock) Day() int { return c.day }

// TimeOfDay formats the current time in 24-hour HH:MM form.
func (c *Clock) TimeOfDay() string {
	return fmt.Sprintf("%02d:%02d", c.minutes/60, c.minutes%60)
}

// DayProgress returns the fraction of the day elapsed, in [0, 1).
func (c *Clock) DayProgress() float64 {
	return float64(c.minutes) / float64(MinutesPerDay)
}

// LightLevel returns the ambient light in [0, 1], peaking at midday on a
// smoothed sinusoidal curve.
func (c *Clock) LightLevel() float64 {
	angle := 2*math.Pi*c.DayProgress() - math.Pi/2
	return math.Pow((math.Sin(angle)+1)/2, 0.8)
}

// Description returns the categorical time of day.
func (c *Clock) Description() string {
	p := c.DayProgress()
	switch {
	case p < dawnStart:
		return "Night"
	case p < dayStart:
		return "Dawn"
	case p < duskStart:
		return "Day"
	case p < nightStart:
		return "Dusk"
	}
	return "Night"
}

// AdjustColor applies the time-of-day brightness and tint to an RGB triple,
// clamping each channel to 255.
func (c *Clock) AdjustColor(r, g, b uint8) (uint8, uint8, uint8) {
	p := c.DayProgress()

	var brightness float64
	var tint [3]float64
	switch {
	case p < dawnStart || p >= nightStart:
		brightness = 0.35
		tint = [3]float64{1.0, 1.15, 1.43}
	case p < dayStart || (p >= duskStart && p < nightStart):
		brightness = 0.67
		tint = [3]float64{1.34, 1.0, 0.78}
	default:
		brightness = 1.0
		tint = [3]float64{1.0, 1.0, 1.0}
	}

	return clampChannel(float64(r) * brightness * tint[0]),
		clampChannel(float64(g) * brightness * tint[1]),
		clampChannel(float64(b) * brightness * tint[2])
}

func clampChannel(v float64) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
