package engine2D

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibBackend draws meshes with raylib's 2D primitives. The transform
// stage (rotate, scale, translate, then viewport mapping with Y flipped
// to screen space) runs on the CPU before the draw call; compositing is
// draw order alone.
type RaylibBackend struct {
	centerX float32
	centerY float32
	unit    float32
}

func NewRaylibBackend() *RaylibBackend { return &RaylibBackend{} }

func (b *RaylibBackend) SetViewport(width, height int) {
	side := width
	if height < side {
		side = height
	}
	b.centerX = float32(width) / 2
	b.centerY = float32(height) / 2
	b.unit = float32(side) / 2
}

func (b *RaylibBackend) DrawMesh(m *Mesh, cmd DrawCommand) error {
	verts, err := m.Vertices()
	if err != nil {
		return err
	}
	if len(verts) == 0 {
		return ErrMeshEmpty
	}

	cos := float32(math.Cos(float64(cmd.Rotation)))
	sin := float32(math.Sin(float64(cmd.Rotation)))
	pts := make([]rl.Vector2, len(verts))
	for i, v := range verts {
		x := (cos*v.X - sin*v.Y)*cmd.ScaleX + cmd.TranslateX
		y := (sin*v.X + cos*v.Y)*cmd.ScaleY + cmd.TranslateY
		pts[i] = rl.NewVector2(b.centerX+x*b.unit, b.centerY-y*b.unit)
	}

	switch m.Topology() {
	case Triangles:
		for i := 0; i+2 < len(pts); i += 3 {
			drawTriangle(pts[i], pts[i+1], pts[i+2], cmd.Color)
		}
	case TriangleStrip:
		for i := 2; i < len(pts); i++ {
			drawTriangle(pts[i-2], pts[i-1], pts[i], cmd.Color)
		}
	case TriangleFan:
		for i := 2; i < len(pts); i++ {
			drawTriangle(pts[0], pts[i-1], pts[i], cmd.Color)
		}
	case Lines:
		for i := 0; i+1 < len(pts); i += 2 {
			if cmd.LineWidth > 1 {
				rl.DrawLineEx(pts[i], pts[i+1], cmd.LineWidth, cmd.Color)
			} else {
				rl.DrawLineV(pts[i], pts[i+1], cmd.Color)
			}
		}
	}
	return nil
}

// drawTriangle reorders vertices counter-clockwise in screen space,
// which raylib requires for filled triangles.
func drawTriangle(a, b, c rl.Vector2, col color.RGBA) {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(a, b, c, col)
}
