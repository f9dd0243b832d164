package main

import (
	"errors"
	"fmt"

	"analog-clock/internal/engine2D"
	"analog-clock/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config carries the command-line presentation choices into the window.
type Config struct {
	Size   int
	FPS    int
	Sweep  bool
	Corner bool
	Scene  engine2D.Options
}

// Window owns the graphics context and the immutable clock scene. One
// thread drives the whole loop; the only suspension point is the frame
// presentation inside EndDrawing.
type Window struct {
	scene    *engine2D.Scene
	renderer *engine2D.Renderer
	closed   bool
}

const cornerMargin = 24

func NewWindow(cfg Config) (*Window, error) {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	flags := uint32(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if cfg.Corner {
		flags |= rl.FlagWindowUndecorated | rl.FlagWindowTopmost
	}
	rl.SetConfigFlags(flags)

	rl.InitWindow(int32(cfg.Size), int32(cfg.Size), "Analog Clock")
	if !rl.IsWindowReady() {
		return nil, errors.New("window/context creation failed")
	}
	rl.SetTargetFPS(int32(cfg.FPS))

	if cfg.Corner {
		if screenW, screenH, err := utils.ScreenSize(); err == nil {
			rl.SetWindowPosition(screenW-cfg.Size-cornerMargin, screenH-cfg.Size-cornerMargin)
		} else {
			utils.Warn("Corner placement unavailable: %v", err)
		}
	}

	scene := engine2D.NewScene(cfg.Scene)
	renderer := engine2D.NewRenderer(
		engine2D.NewRaylibBackend(),
		scene,
		engine2D.SystemTime(),
		cfg.Sweep,
	)

	utils.Debug("Scene built: %d meshes, %d draw steps", scene.MeshCount(), len(scene.Plan()))
	return &Window{scene: scene, renderer: renderer}, nil
}

// Run drives the frame loop until the window is closed.
func (w *Window) Run() error {
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.White)
		err := w.renderer.RenderFrame(rl.GetScreenWidth(), rl.GetScreenHeight())
		rl.EndDrawing()
		if err != nil {
			return fmt.Errorf("frame render: %w", err)
		}
	}
	return nil
}

// Close tears down in order: meshes first, then the window/context.
// Safe to call more than once so error paths can close eagerly.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if err := w.scene.Destroy(); err != nil {
		utils.Warn("Scene teardown: %v", err)
	}
	rl.CloseWindow()
}
