package geometry

// HandKind selects which clock hand to generate.
type HandKind int

const (
	HandHour HandKind = iota
	HandMinute
	HandSecond
)

// HandStyle selects the cosmetic variant of the hand set.
type HandStyle int

const (
	// HandSpade is the ornamented set: spade hour hand, tapered dauphine
	// minute hand, needle second hand with a round hub.
	HandSpade HandStyle = iota
	// HandBaton is the plain set: straight rectangular hands.
	HandBaton
)

// HandShape returns a closed triangle list for one hand, centered at the
// pivot (origin) and pointing in local +Y. The tip never exceeds radius 1
// so the hand stays inside the dial at the standard draw-time scale.
func HandShape(kind HandKind, style HandStyle) []Point {
	switch style {
	case HandBaton:
		return batonHand(kind)
	default:
		return spadeHand(kind)
	}
}

type handBuilder struct {
	pts []Point
}

func (b *handBuilder) tri(a, c, d Point) {
	b.pts = append(b.pts, a, c, d)
}

// rect adds an axis-aligned rectangle spanning x in [-w/2, w/2] and
// y in [y0, y1].
func (b *handBuilder) rect(w, y0, y1 float32) {
	h := w * 0.5
	b.tri(Point{-h, y0}, Point{h, y0}, Point{h, y1})
	b.tri(Point{-h, y0}, Point{h, y1}, Point{-h, y1})
}

// disc adds a filled circle of the given radius centered at (0, cy).
func (b *handBuilder) disc(segments int, radius, cy float32) {
	fan := DiscFan(segments)
	for i := 2; i < len(fan); i++ {
		b.tri(
			Point{0, cy},
			Point{fan[i-1].X * radius, fan[i-1].Y*radius + cy},
			Point{fan[i].X * radius, fan[i].Y*radius + cy},
		)
	}
}

func spadeHand(kind HandKind) []Point {
	var b handBuilder
	switch kind {
	case HandHour:
		// short wide stem, spade bulb near the tip, small tail
		const (
			reach = 0.62
			width = 0.12
			tail  = 0.08
			bulbR = 0.14
		)
		b.rect(width, 0, reach-0.12)
		b.disc(48, bulbR, reach-0.08)
		b.rect(width, -tail, 0)
	case HandMinute:
		// long tapered pointer with a tiny tail
		const (
			reach = 0.88
			width = 0.08
			tail  = 0.10
		)
		b.rect(width, 0, reach-0.12)
		b.tri(
			Point{-0.45 * width, reach - 0.12},
			Point{0.45 * width, reach - 0.12},
			Point{0, reach},
		)
		b.rect(width, -tail, 0)
	case HandSecond:
		// thin needle, counterweight tail, round hub
		const (
			reach = 0.95
			width = 0.02
			tail  = 0.18
			hubR  = 0.035
		)
		b.rect(width, 0, reach)
		b.rect(width, -tail, 0)
		b.disc(32, hubR, 0)
	}
	return b.pts
}

func batonHand(kind HandKind) []Point {
	var b handBuilder
	switch kind {
	case HandHour:
		b.rect(0.10, -0.10, 0.55)
	case HandMinute:
		b.rect(0.07, -0.10, 0.80)
	case HandSecond:
		b.rect(0.02, -0.16, 0.92)
		b.disc(32, 0.03, 0)
	}
	return b.pts
}
