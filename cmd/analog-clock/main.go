package main

import (
	"flag"
	"os"

	"analog-clock/internal/engine2D/geometry"
	"analog-clock/internal/engine2D/glyph"
	"analog-clock/internal/utils"
)

func main() {
	size := flag.Int("size", 800, "Window size in pixels (square)")
	fps := flag.Int("fps", 60, "Target frames per second")
	sweep := flag.Bool("sweep", false, "Smooth-sweeping second hand instead of whole-second ticks")
	hands := flag.String("hands", "spade", "Hand style: spade or baton")
	numerals := flag.String("numerals", "filled", "Numeral style: filled or stroke")
	corner := flag.Bool("corner", false, "Park the window in the bottom-right screen corner (X11)")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
	}

	utils.Info("--- Analog Clock Start ---")

	cfg := Config{
		Size:   *size,
		FPS:    *fps,
		Sweep:  *sweep,
		Corner: *corner,
	}

	switch *hands {
	case "spade":
		cfg.Scene.Hands = geometry.HandSpade
	case "baton":
		cfg.Scene.Hands = geometry.HandBaton
	default:
		utils.Error("Unknown hand style: %s", *hands)
		os.Exit(1)
	}

	switch *numerals {
	case "filled":
		cfg.Scene.Numerals = glyph.StyleFilled
	case "stroke":
		cfg.Scene.Numerals = glyph.StyleStroke
	default:
		utils.Error("Unknown numeral style: %s", *numerals)
		os.Exit(1)
	}

	window, err := NewWindow(cfg)
	if err != nil {
		utils.Error("Window initialization failed: %v", err)
		os.Exit(1)
	}
	defer window.Close()

	if err := window.Run(); err != nil {
		utils.Error("Frame loop error: %v", err)
		window.Close()
		os.Exit(1)
	}
}
