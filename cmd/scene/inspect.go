package main

import (
	"fmt"
	"io"

	"still-life/internal/config"
	"still-life/internal/logger"
	"still-life/internal/mesh/meshtest"
	"still-life/internal/objects"
	"still-life/internal/scene"
	"still-life/internal/shader/shadertest"
	"still-life/internal/texture"
	"still-life/internal/texture/texturetest"
)

// list prints the scene's objects and their render items in draw order.
func list(w io.Writer, withAxis bool) error {
	total := 0
	for _, a := range objects.Scene(withAxis) {
		items := a.Build()
		fmt.Fprintf(w, "%s (%d items)\n", a.Name, len(items))
		for _, it := range items {
			fmt.Fprintf(w, "  %s\n", it)
		}
		total += len(items)
	}
	fmt.Fprintf(w, "%d items\n", total)
	return nil
}

// trace prepares the scene against recording fakes and renders one frame, printing every
// uniform upload and draw call in the order they happen. Textures are decoded from disk.
func trace(w io.Writer, cfg config.Config, log *logger.Logger, withPrepare bool) error {
	return traceWith(w, cfg, log, texture.FileDecoder{}, withPrepare)
}

func traceWith(w io.Writer, cfg config.Config, log *logger.Logger, dec texture.Decoder, withPrepare bool) error {
	uniforms := shadertest.NewRecorder()
	meshes := meshtest.NewRecorder()
	scn := scene.New(scene.Options{
		Uniforms: uniforms,
		Meshes:   meshes,
		Decoder:  dec,
		GPU:      &texturetest.GPU{},
		Log:      log,
		Textures: textureSources(cfg),
		ShowAxis: cfg.ShowAxis,
	})
	defer scn.Close()

	if withPrepare {
		uniforms.Hook = func(u shadertest.Upload) { fmt.Fprintf(w, "prepare %s\n", u) }
	}
	if err := scn.Prepare(); err != nil {
		return err
	}
	for _, e := range scn.Textures() {
		fmt.Fprintf(w, "slot %d: %s\n", e.Slot, e.Tag)
	}

	uniforms.Hook = func(u shadertest.Upload) { fmt.Fprintf(w, "  %s\n", u) }
	meshes.Hook = func(d meshtest.Draw) { fmt.Fprintf(w, "%s\n", d) }
	st := scn.Render()
	fmt.Fprintf(w, "%d items, %d draws, %d skipped\n", st.Items, st.Draws, st.Skipped)
	if len(meshes.Unloaded) > 0 {
		return fmt.Errorf("trace: drew primitives that were never loaded: %v", meshes.Unloaded)
	}
	return nil
}
