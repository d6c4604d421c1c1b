// Package graphics is the raylib backend: window loop, camera, shader program and the GPU
// implementations of the scene's uniform, mesh and texture interfaces.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	TargetFPS  int32
}

// Run opens the window and runs the main loop. setup is called once the OpenGL context exists;
// if it fails the window closes and its error is returned. Each frame Run calls update, then
// clears the screen and calls draw. teardown runs before the window closes.
func Run(w Window, setup func() error, update, draw func(), teardown func()) error {
	width, height := w.Width, w.Height
	if w.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	} else {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	if w.TargetFPS > 0 {
		rl.SetTargetFPS(w.TargetFPS)
	}
	if err := setup(); err != nil {
		return err
	}
	defer teardown()

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	return nil
}
