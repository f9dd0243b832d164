package engine2D

import "fmt"

// Renderer walks the scene's draw plan once per frame, resolving hand
// rotations from the current time. It holds no per-frame state of its
// own; every frame is computed fresh from the time source.
type Renderer struct {
	backend Backend
	scene   *Scene
	time    TimeSource
	sweep   bool
}

func NewRenderer(backend Backend, scene *Scene, time TimeSource, sweep bool) *Renderer {
	return &Renderer{backend: backend, scene: scene, time: time, sweep: sweep}
}

// RenderFrame issues the full draw sequence for the given frame size.
// Hand meshes are modeled pointing at 12 o'clock, so their applied
// rotation is the direction angle minus a quarter turn.
func (r *Renderer) RenderFrame(width, height int) error {
	angles := AnglesAt(r.time.Now(), r.sweep)
	r.backend.SetViewport(width, height)

	for _, st := range r.scene.Plan() {
		cmd := DrawCommand{
			ScaleX:     st.ScaleX,
			ScaleY:     st.ScaleY,
			TranslateX: st.TranslateX,
			TranslateY: st.TranslateY,
			Color:      st.Color,
			LineWidth:  st.LineWidth,
		}
		switch st.Role {
		case RoleHourHand:
			cmd.Rotation = float32(angles.Hour - Tau/4)
		case RoleMinuteHand:
			cmd.Rotation = float32(angles.Minute - Tau/4)
		case RoleSecondHand:
			cmd.Rotation = float32(angles.Second - Tau/4)
		}
		if err := r.backend.DrawMesh(st.Mesh, cmd); err != nil {
			return fmt.Errorf("draw %s: %w", st.Name, err)
		}
	}
	return nil
}
