package engine2D

import (
	"errors"
	"image/color"
	"math"

	"analog-clock/internal/engine2D/geometry"
	"analog-clock/internal/engine2D/glyph"
)

// Options selects the cosmetic variants of the clock face.
type Options struct {
	Hands    geometry.HandStyle
	Numerals glyph.Style
}

// Role marks a draw step whose rotation is resolved per frame from the
// current hand angles. Static steps keep rotation zero; numerals stay
// upright on purpose regardless of their position on the dial.
type Role int

const (
	RoleStatic Role = iota
	RoleHourHand
	RoleMinuteHand
	RoleSecondHand
)

// Step is one entry of the ordered draw plan: a mesh, its static
// transform and color, and the role used to resolve its rotation. The
// plan is plain data consumed by the renderer, back to front.
type Step struct {
	Name                   string
	Mesh                   *Mesh
	Role                   Role
	ScaleX, ScaleY         float32
	TranslateX, TranslateY float32
	Color                  color.RGBA
	LineWidth              float32
}

// Presentation constants. Variants of this clock disagree on several of
// these (numeral radius 0.66 vs 0.73 and so on); they are cosmetic
// tuning, not requirements.
const (
	bezelInner   = 0.86
	bezelOuter   = 0.98
	dialScale    = 0.86
	chapterInner = 0.82
	chapterOuter = 0.84

	minuteTickInner = 0.82
	minuteTickOuter = 0.88
	hourTickInner   = 0.78
	hourTickOuter   = 0.90
	hourTickHalfW   = 0.009

	numeralRadius = 0.73
	numeralScale  = 0.10
	capScale      = 0.035
)

var (
	colorBezel   = color.RGBA{R: 107, G: 56, B: 31, A: 255}
	colorFace    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorChapter = color.RGBA{R: 191, G: 191, B: 191, A: 255}
	colorInk     = color.RGBA{A: 255}
	colorGold    = color.RGBA{R: 204, G: 179, B: 89, A: 255}
)

var ErrSceneDestroyed = errors.New("engine2D: scene already destroyed")

// Scene owns the fixed mesh set and the ordered draw plan. Meshes are
// built once before the frame loop and destroyed exactly once at
// teardown.
type Scene struct {
	meshes    []*Mesh
	plan      []Step
	destroyed bool
}

// NewScene builds every mesh of the clock face and lays out the draw
// plan back to front: bezel, dial, chapter ring, ticks, numerals, hands,
// center cap.
func NewScene(opts Options) *Scene {
	s := &Scene{}

	bezel := s.upload(geometry.Ring(256, bezelInner, bezelOuter), TriangleStrip)
	dial := s.upload(geometry.DiscFan(128), TriangleFan)
	chapter := s.upload(geometry.Ring(256, chapterInner, chapterOuter), TriangleStrip)
	minTicks := s.upload(geometry.RadialTicks(60, minuteTickInner, minuteTickOuter), Lines)
	hourTicks := s.upload(geometry.QuadTicks(12, hourTickInner, hourTickOuter, hourTickHalfW), Triangles)
	hourHand := s.upload(geometry.HandShape(geometry.HandHour, opts.Hands), Triangles)
	minuteHand := s.upload(geometry.HandShape(geometry.HandMinute, opts.Hands), Triangles)
	secondHand := s.upload(geometry.HandShape(geometry.HandSecond, opts.Hands), Triangles)
	capDisc := s.upload(geometry.DiscFan(40), TriangleFan)

	numeralTopology := Triangles
	var numeralLineWidth float32
	if opts.Numerals == glyph.StyleStroke {
		numeralTopology = Lines
		numeralLineWidth = 2
	}

	s.step(Step{Name: "bezel", Mesh: bezel, ScaleX: 1, ScaleY: 1, Color: colorBezel})
	s.step(Step{Name: "dial", Mesh: dial, ScaleX: dialScale, ScaleY: dialScale, Color: colorFace})
	s.step(Step{Name: "chapter", Mesh: chapter, ScaleX: 1, ScaleY: 1, Color: colorChapter})
	s.step(Step{Name: "minute-ticks", Mesh: minTicks, ScaleX: 1, ScaleY: 1, Color: colorInk, LineWidth: 1.2})
	s.step(Step{Name: "hour-ticks", Mesh: hourTicks, ScaleX: 1, ScaleY: 1, Color: colorInk})

	for n := 1; n <= 12; n++ {
		mesh := s.upload(glyph.Numeral(n, opts.Numerals), numeralTopology)
		a := NumeralAngle(n)
		s.step(Step{
			Name:       numeralName(n),
			Mesh:       mesh,
			ScaleX:     numeralScale,
			ScaleY:     numeralScale,
			TranslateX: float32(math.Cos(a)) * numeralRadius,
			TranslateY: float32(math.Sin(a)) * numeralRadius,
			Color:      colorInk,
			LineWidth:  numeralLineWidth,
		})
	}

	s.step(Step{Name: "hour-hand", Mesh: hourHand, Role: RoleHourHand, ScaleX: 1, ScaleY: 1, Color: colorInk})
	s.step(Step{Name: "minute-hand", Mesh: minuteHand, Role: RoleMinuteHand, ScaleX: 1, ScaleY: 1, Color: colorInk})
	s.step(Step{Name: "second-hand", Mesh: secondHand, Role: RoleSecondHand, ScaleX: 1, ScaleY: 1, Color: colorGold})
	s.step(Step{Name: "cap", Mesh: capDisc, ScaleX: capScale, ScaleY: capScale, Color: colorInk})

	return s
}

func (s *Scene) upload(verts []geometry.Point, topology Topology) *Mesh {
	m := NewMesh(verts, topology)
	s.meshes = append(s.meshes, m)
	return m
}

func (s *Scene) step(st Step) {
	s.plan = append(s.plan, st)
}

// Plan returns the ordered draw steps, back to front.
func (s *Scene) Plan() []Step { return s.plan }

// MeshCount reports how many meshes the scene owns.
func (s *Scene) MeshCount() int { return len(s.meshes) }

// Destroy releases every mesh exactly once, in reverse creation order.
func (s *Scene) Destroy() error {
	if s.destroyed {
		return ErrSceneDestroyed
	}
	s.destroyed = true
	var firstErr error
	for i := len(s.meshes) - 1; i >= 0; i-- {
		if err := s.meshes[i].Destroy(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func numeralName(n int) string {
	names := [...]string{"", "numeral-1", "numeral-2", "numeral-3", "numeral-4",
		"numeral-5", "numeral-6", "numeral-7", "numeral-8", "numeral-9",
		"numeral-10", "numeral-11", "numeral-12"}
	return names[n]
}
