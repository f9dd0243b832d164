// Package glyph builds the clock-face numerals from the classic
// seven-segment digit arrangement.
package glyph

import (
	"math"

	"analog-clock/internal/engine2D/geometry"
)

// Style selects how digit segments are rendered.
type Style int

const (
	// StyleFilled renders each active segment as a thick quadrilateral
	// (triangle-list output).
	StyleFilled Style = iota
	// StyleStroke renders each active segment as a bare line segment
	// (line-list output).
	StyleStroke
)

// Segment identifiers follow the classic naming: top(A), upper-right(B),
// lower-right(C), bottom(D), lower-left(E), upper-left(F), middle(G).
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var digitSegments = [10]uint8{
	0: segA | segB | segC | segD | segE | segF,
	1: segB | segC,
	2: segA | segB | segG | segE | segD,
	3: segA | segB | segG | segC | segD,
	4: segF | segG | segB | segC,
	5: segA | segF | segG | segC | segD,
	6: segA | segF | segG | segE | segD | segC,
	7: segA | segB | segC,
	8: segA | segB | segC | segD | segE | segF | segG,
	9: segA | segB | segC | segD | segF | segG,
}

// Digit frame in local glyph space.
const (
	frameX0 = -0.45
	frameX1 = 0.45
	frameY0 = -0.60
	frameY1 = 0.60
	frameYm = 0.0
)

// SegmentThickness is the bar thickness used for filled digits.
const SegmentThickness = 0.22

// Two-digit layout: each digit is shifted sideways by DigitOffset, so the
// glyph centers sit 2*DigitOffset apart.
const (
	glyphHalfWidth = 0.70
	digitGap       = 0.20

	// DigitOffset is half the glyph width plus the inter-digit gap.
	DigitOffset = glyphHalfWidth + digitGap
)

// segment endpoints indexed by bit position A..G
var segmentLines = [7][4]float32{
	{frameX0, frameY1, frameX1, frameY1}, // A
	{frameX1, frameY1, frameX1, frameYm}, // B
	{frameX1, frameYm, frameX1, frameY0}, // C
	{frameX0, frameY0, frameX1, frameY0}, // D
	{frameX0, frameYm, frameX0, frameY0}, // E
	{frameX0, frameY1, frameX0, frameYm}, // F
	{frameX0, frameYm, frameX1, frameYm}, // G
}

// thickLine appends the two triangles of a rectangle of the given
// thickness oriented along the segment axis.
func thickLine(pts []geometry.Point, x1, y1, x2, y2, thickness float32) []geometry.Point {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return pts
	}
	px := float32(-dy/length) * thickness * 0.5
	py := float32(dx/length) * thickness * 0.5
	a := geometry.Point{X: x1 + px, Y: y1 + py}
	b := geometry.Point{X: x2 + px, Y: y2 + py}
	c := geometry.Point{X: x2 - px, Y: y2 - py}
	d := geometry.Point{X: x1 - px, Y: y1 - py}
	return append(pts, a, b, c, a, c, d)
}

// DigitFilled returns digit d (0-9) as a triangle list of thick segment
// bars. Out-of-range digits yield an empty shape.
func DigitFilled(d int, thickness float32) []geometry.Point {
	if d < 0 || d > 9 {
		return nil
	}
	var pts []geometry.Point
	for bit, line := range segmentLines {
		if digitSegments[d]&(1<<bit) == 0 {
			continue
		}
		pts = thickLine(pts, line[0], line[1], line[2], line[3], thickness)
	}
	return pts
}

// DigitStroke returns digit d (0-9) as a line list, one endpoint pair per
// active segment.
func DigitStroke(d int) []geometry.Point {
	if d < 0 || d > 9 {
		return nil
	}
	var pts []geometry.Point
	for bit, line := range segmentLines {
		if digitSegments[d]&(1<<bit) == 0 {
			continue
		}
		pts = append(pts,
			geometry.Point{X: line[0], Y: line[1]},
			geometry.Point{X: line[2], Y: line[3]},
		)
	}
	return pts
}

func digit(d int, style Style) []geometry.Point {
	if style == StyleStroke {
		return DigitStroke(d)
	}
	return DigitFilled(d, SegmentThickness)
}

func shifted(pts []geometry.Point, dx float32) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	for i, p := range pts {
		out[i] = geometry.Point{X: p.X + dx, Y: p.Y}
	}
	return out
}

// Numeral returns the vertex list for one clock-face numeral (1-12).
// Single digits are centered; 10-12 compose the tens glyph shifted left
// and the ones glyph shifted right by DigitOffset, vertically centered.
// The topology matches the style: triangles for StyleFilled, lines for
// StyleStroke. Out-of-range numerals yield an empty shape.
func Numeral(n int, style Style) []geometry.Point {
	if n < 1 || n > 12 {
		return nil
	}
	if n < 10 {
		return digit(n, style)
	}
	tens := shifted(digit(n/10, style), -DigitOffset)
	ones := shifted(digit(n%10, style), DigitOffset)
	return append(tens, ones...)
}
