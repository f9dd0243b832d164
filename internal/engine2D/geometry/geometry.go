package geometry

import "math"

const tau = 2 * math.Pi

// Point is a 2D vertex in normalized local shape space. Shape generators
// never bake in screen position; scale, rotation and translation are
// applied at draw time.
type Point struct {
	X, Y float32
}

func onCircle(angle float64, radius float32) Point {
	return Point{
		X: float32(math.Cos(angle)) * radius,
		Y: float32(math.Sin(angle)) * radius,
	}
}

// Ring produces a closed triangle-strip band spanning rInner..rOuter.
// Vertices alternate inner/outer around the full circle, starting at
// angle 0 and increasing counter-clockwise; the seam pair is repeated so
// the strip closes. segments slices means segments+1 vertex pairs.
func Ring(segments int, rInner, rOuter float32) []Point {
	if segments <= 0 {
		return nil
	}
	pts := make([]Point, 0, (segments+1)*2)
	step := tau / float64(segments)
	for i := 0; i <= segments; i++ {
		a := float64(i) * step
		pts = append(pts, onCircle(a, rInner), onCircle(a, rOuter))
	}
	return pts
}

// DiscFan produces a filled unit disc as a triangle fan: the center
// vertex followed by segments+1 perimeter vertices closing the loop.
func DiscFan(segments int) []Point {
	if segments <= 0 {
		return nil
	}
	pts := make([]Point, 0, segments+2)
	pts = append(pts, Point{})
	step := tau / float64(segments)
	for i := 0; i <= segments; i++ {
		pts = append(pts, onCircle(float64(i)*step, 1))
	}
	return pts
}

// RadialTicks produces count evenly spaced radial marks as a line list,
// one inner/outer endpoint pair per mark.
func RadialTicks(count int, rInner, rOuter float32) []Point {
	if count <= 0 {
		return nil
	}
	pts := make([]Point, 0, count*2)
	step := tau / float64(count)
	for i := 0; i < count; i++ {
		a := float64(i) * step
		pts = append(pts, onCircle(a, rInner), onCircle(a, rOuter))
	}
	return pts
}

// QuadTicks produces count evenly spaced radial marks as thin filled
// quadrilaterals (two triangles each) with the given tangential
// half-width. Preferred over RadialTicks where line primitives render
// too thin.
func QuadTicks(count int, rInner, rOuter, halfWidth float32) []Point {
	if count <= 0 {
		return nil
	}
	pts := make([]Point, 0, count*6)
	step := tau / float64(count)
	for i := 0; i < count; i++ {
		a := float64(i) * step
		c := float32(math.Cos(a))
		s := float32(math.Sin(a))
		// tangent is the radial direction rotated a quarter turn
		tx, ty := -s*halfWidth, c*halfWidth
		i0 := Point{c*rInner - tx, s*rInner - ty}
		i1 := Point{c*rInner + tx, s*rInner + ty}
		o0 := Point{c*rOuter - tx, s*rOuter - ty}
		o1 := Point{c*rOuter + tx, s*rOuter + ty}
		pts = append(pts, i0, i1, o1, i0, o1, o0)
	}
	return pts
}
