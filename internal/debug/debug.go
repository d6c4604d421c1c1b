package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"still-life/internal/render"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the on-screen overlays (FPS, heap, draw counts). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowDraws    bool

	frameCount   uint32
	stats        render.Stats
	lastFpsText  string
	lastMemText  string
	lastDrawText string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetStats records the latest frame's dispatch counts for the draw overlay.
func (d *Debug) SetStats(s render.Stats) {
	d.stats = s
}

// Lines returns the overlay text for the enabled overlays, refreshing it every updateInterval
// frames (or immediately when an overlay has no text yet). fps is the current frame rate.
func (d *Debug) Lines(fps int32) []string {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.lastFpsText == "") ||
		(d.ShowMemAlloc && d.lastMemText == "") ||
		(d.ShowDraws && d.lastDrawText == "")

	var lines []string
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
		}
		lines = append(lines, d.lastFpsText)
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		lines = append(lines, d.lastMemText)
	}
	if d.ShowDraws {
		if update {
			d.lastDrawText = fmt.Sprintf("Draws: %d/%d", d.stats.Draws, d.stats.Items)
			if d.stats.Skipped > 0 {
				d.lastDrawText += fmt.Sprintf(" (%d skipped)", d.stats.Skipped)
			}
		}
		lines = append(lines, d.lastDrawText)
	}
	return lines
}

// Draw renders the enabled overlays right-aligned at the top of the screen, in green.
// Call after the 3D scene in the draw loop.
func (d *Debug) Draw() {
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.Lines(rl.GetFPS()) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
