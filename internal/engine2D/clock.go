package engine2D

import (
	"math"
	"time"
)

// Tau is one full turn.
const Tau = 2 * math.Pi

// TimeSource supplies the wall-clock time once per frame. Angles are
// always recomputed fresh from it, never incremented, so the display
// tracks true time even across stalls or clock adjustments.
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// SystemTime returns the real local-time source.
func SystemTime() TimeSource { return systemTime{} }

// FixedTime is a TimeSource pinned to one instant, for tests.
type FixedTime struct {
	T time.Time
}

func (f FixedTime) Now() time.Time { return f.T }

// Angle maps a fraction of a revolution to a direction angle: 0 is the
// 12 o'clock top, and the angle decreases as f grows so motion reads
// clockwise on screen.
func Angle(f float64) float64 {
	return -Tau*f + Tau/4
}

// HandAngles holds the three hand direction angles for one instant.
type HandAngles struct {
	Hour, Minute, Second float64
}

// AnglesAt derives the hand angles from local wall-clock time. With
// sweep set the second hand moves continuously through the sub-second
// fraction; otherwise it ticks on whole seconds. Minute and hour
// progression is derived from the whole second either way, so the mode
// affects only the second hand.
func AnglesAt(t time.Time, sweep bool) HandAngles {
	hour, min, secInt := t.Clock()
	whole := float64(secInt)
	sec := whole
	if sweep {
		sec += float64(t.Nanosecond()) / 1e9
	}
	m := float64(min) + whole/60
	h := float64(hour%12) + m/60
	return HandAngles{
		Hour:   Angle(h / 12),
		Minute: Angle(m / 60),
		Second: Angle(sec / 60),
	}
}

// NumeralAngle gives the direction angle of numeral position n (1..12):
// 12 sits at the top, each step is one-twelfth turn clockwise.
func NumeralAngle(n int) float64 {
	return Angle(float64(n%12) / 12)
}
