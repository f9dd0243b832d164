package engine2D

import "image/color"

// DrawCommand carries the per-draw transform and shading parameters: the
// vertex stage applies rotate, then anisotropic scale, then translate in
// local clock space; the shading stage emits one flat color. Commands are
// built transiently each frame and discarded after the draw.
type DrawCommand struct {
	Rotation   float32 // radians, counter-clockwise in local space
	ScaleX     float32
	ScaleY     float32
	TranslateX float32
	TranslateY float32
	Color      color.RGBA
	LineWidth  float32 // pixels, line-list meshes only
}

// Backend is the draw target for the renderer. Implementations map the
// unit clock space (radius 1, Y up) onto the current viewport and issue
// the actual primitives. Draw order is the only compositing rule.
type Backend interface {
	// SetViewport adopts the current frame size; the unit radius maps to
	// half the smaller dimension, centered.
	SetViewport(width, height int)

	// DrawMesh draws the whole mesh with one transform and color.
	DrawMesh(m *Mesh, cmd DrawCommand) error
}
