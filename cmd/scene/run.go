package main

import (
	"still-life/internal/config"
	"still-life/internal/debug"
	"still-life/internal/graphics"
	"still-life/internal/logger"
	"still-life/internal/scene"
	"still-life/internal/shader"
	"still-life/internal/texture"
)

// run opens the window and renders the scene every frame until the window is closed.
func run(cfg config.Config, log *logger.Logger) error {
	var (
		gpu *graphics.Backend
		scn *scene.Scene
	)
	viewer := graphics.NewViewer(cfg.Camera.Position, cfg.Camera.Target, cfg.Camera.Fovy)
	viewer.GridVisible = cfg.ShowGrid
	dbg := debug.New()
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	dbg.ShowDraws = cfg.Debug.ShowDraws

	setup := func() error {
		var err error
		if gpu, err = graphics.NewBackend(); err != nil {
			return err
		}
		scn = scene.New(scene.Options{
			Uniforms: gpu.Uniforms,
			Meshes:   gpu.Meshes,
			Decoder:  texture.FileDecoder{},
			GPU:      gpu.Textures,
			Log:      log,
			Textures: textureSources(cfg),
			ShowAxis: cfg.ShowAxis,
		})
		if err := scn.Prepare(); err != nil {
			scn.Close()
			gpu.Close()
			return err
		}
		return nil
	}
	draw := func() {
		viewer.Draw(func() {
			gpu.Textures.Restore()
			gpu.Uniforms.SetVec3(shader.ViewPosition, viewer.Position())
			dbg.SetStats(scn.Render())
		})
		dbg.Draw()
	}
	teardown := func() {
		scn.Close()
		gpu.Close()
		log.Log("scene closed")
	}

	win := graphics.Window{
		Width:      int32(cfg.Window.Width),
		Height:     int32(cfg.Window.Height),
		Title:      cfg.Window.Title,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  int32(cfg.Window.TargetFPS),
	}
	return graphics.Run(win, setup, viewer.Update, draw, teardown)
}
