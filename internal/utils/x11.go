package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// ScreenSize queries the X11 default screen dimensions in pixels. Used
// for desktop-widget window placement; callers fall back to centered
// placement when no X server is reachable.
func ScreenSize() (int, int, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, err
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}
