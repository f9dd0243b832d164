package glyph

import (
	"math"
	"reflect"
	"testing"

	"analog-clock/internal/engine2D/geometry"
)

// active segment count per digit in the classic 7-segment encoding
var segmentCounts = [10]int{6, 2, 5, 5, 4, 5, 6, 3, 7, 6}

func TestDigitFilled_VertexCounts(t *testing.T) {
	for d := 0; d <= 9; d++ {
		pts := DigitFilled(d, SegmentThickness)
		// each active segment is a quad: two triangles, six vertices
		if got, want := len(pts), segmentCounts[d]*6; got != want {
			t.Errorf("DigitFilled(%d) vertex count = %d, want %d", d, got, want)
		}
	}
}

func TestDigitStroke_VertexCounts(t *testing.T) {
	for d := 0; d <= 9; d++ {
		pts := DigitStroke(d)
		if got, want := len(pts), segmentCounts[d]*2; got != want {
			t.Errorf("DigitStroke(%d) vertex count = %d, want %d", d, got, want)
		}
	}
}

func TestDigit_OutOfRange(t *testing.T) {
	for _, d := range []int{-1, 10} {
		if pts := DigitFilled(d, SegmentThickness); pts != nil {
			t.Errorf("DigitFilled(%d) = %d vertices, want none", d, len(pts))
		}
		if pts := DigitStroke(d); pts != nil {
			t.Errorf("DigitStroke(%d) = %d vertices, want none", d, len(pts))
		}
	}
}

type box struct {
	minX, maxX, minY, maxY float32
}

func bounds(pts []geometry.Point) box {
	b := box{minX: math.MaxFloat32, maxX: -math.MaxFloat32, minY: math.MaxFloat32, maxY: -math.MaxFloat32}
	for _, p := range pts {
		b.minX = min(b.minX, p.X)
		b.maxX = max(b.maxX, p.X)
		b.minY = min(b.minY, p.Y)
		b.maxY = max(b.maxY, p.Y)
	}
	return b
}

func TestNumeral_SingleDigitCentered(t *testing.T) {
	// digit 8 uses every segment, so its extents are symmetric
	b := bounds(Numeral(8, StyleFilled))
	if math.Abs(float64(b.minX+b.maxX)) > 1e-5 || math.Abs(float64(b.minY+b.maxY)) > 1e-5 {
		t.Errorf("numeral 8 not centered: bounds %+v", b)
	}
}

func TestNumeral_TwoDigitComposition(t *testing.T) {
	for _, style := range []Style{StyleFilled, StyleStroke} {
		for n := 10; n <= 12; n++ {
			pts := Numeral(n, style)
			tensBase := digit(n/10, style)
			onesBase := digit(n%10, style)
			if len(pts) != len(tensBase)+len(onesBase) {
				t.Fatalf("Numeral(%d) vertex count = %d, want %d", n, len(pts), len(tensBase)+len(onesBase))
			}
			tens := pts[:len(tensBase)]
			ones := pts[len(tensBase):]

			// each glyph is the base digit translated by exactly DigitOffset
			for i, p := range tens {
				if p.X != tensBase[i].X-DigitOffset || p.Y != tensBase[i].Y {
					t.Fatalf("Numeral(%d) tens vertex %d = %v, want %v shifted left by %v",
						n, i, p, tensBase[i], float32(DigitOffset))
				}
			}
			for i, p := range ones {
				if p.X != onesBase[i].X+DigitOffset || p.Y != onesBase[i].Y {
					t.Fatalf("Numeral(%d) ones vertex %d = %v, want %v shifted right by %v",
						n, i, p, onesBase[i], float32(DigitOffset))
				}
			}

			// glyph frames sit 2*DigitOffset apart and must not overlap
			if bt, bo := bounds(tens), bounds(ones); bt.maxX >= bo.minX {
				t.Errorf("Numeral(%d) digit boxes overlap: tens %+v ones %+v", n, bt, bo)
			}
		}
	}
}

func TestNumeral_OutOfRange(t *testing.T) {
	for _, n := range []int{0, 13, -5} {
		if pts := Numeral(n, StyleFilled); pts != nil {
			t.Errorf("Numeral(%d) = %d vertices, want none", n, len(pts))
		}
	}
}

func TestNumeral_Deterministic(t *testing.T) {
	for n := 1; n <= 12; n++ {
		if !reflect.DeepEqual(Numeral(n, StyleFilled), Numeral(n, StyleFilled)) {
			t.Errorf("Numeral(%d, filled) not deterministic", n)
		}
		if !reflect.DeepEqual(Numeral(n, StyleStroke), Numeral(n, StyleStroke)) {
			t.Errorf("Numeral(%d, stroke) not deterministic", n)
		}
	}
}
