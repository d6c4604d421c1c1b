package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Viewer holds the free-fly camera the scene is seen through and an optional ground grid.
// Based on raylib examples/core/core_3d_camera_free.
type Viewer struct {
	Camera      rl.Camera3D
	GridVisible bool
	cursorDone  bool
}

// NewViewer returns a perspective camera at position looking at target.
func NewViewer(position, target [3]float32, fovy float32) *Viewer {
	v := &Viewer{}
	v.Camera.Position = rl.NewVector3(position[0], position[1], position[2])
	v.Camera.Target = rl.NewVector3(target[0], target[1], target[2])
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = fovy
	v.Camera.Projection = rl.CameraPerspective
	return v
}

// Update runs once per frame. The mouse is captured on the first call so it steers the camera.
func (v *Viewer) Update() {
	if !v.cursorDone {
		rl.DisableCursor()
		v.cursorDone = true
	}
	rl.UpdateCamera(&v.Camera, rl.CameraFree)
}

// Position returns the camera position, uploaded as viewPosition for specular lighting.
func (v *Viewer) Position() mgl32.Vec3 {
	p := v.Camera.Position
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Draw runs scene between BeginMode3D and EndMode3D with back-face culling off, since open
// cylinders show their inside, then draws the grid when visible.
func (v *Viewer) Draw(scene func()) {
	rl.BeginMode3D(v.Camera)
	rl.DisableBackfaceCulling()
	scene()
	rl.EnableBackfaceCulling()
	if v.GridVisible {
		drawGrid()
	}
	rl.EndMode3D()
}

// drawGrid draws major/minor lines on the XZ plane and the three axis lines through the origin.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
