// Package camera implements the orthographic view over the world and its
// keyboard controller.
package camera

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Camera is an orthographic view Height world units tall. Center.X is the
// horizontal middle of the view; Center.Y is its bottom edge.
type Camera struct {
	Center cp.Vector
	Height float64
	Aspect float64
}

// ViewBounds returns the visible world rectangle.
func (c Camera) ViewBounds() (left, right, bottom, top float64) {
	halfW := c.Height * c.Aspect / 2
	return -halfW + c.Center.X, halfW + c.Center.X, c.Center.Y, c.Height + c.Center.Y
}

// PixelsPerUnit is the scale from world units to screen pixels for a screen
// screenH pixels tall.
func (c Camera) PixelsPerUnit(screenH int) float64 {
	if c.Height <= 0 {
		return 0
	}
	return float64(screenH) / c.Height
}

// WorldToScreen maps a world position to pixel coordinates. World y grows
// upwards; screen y grows downwards.
func (c Camera) WorldToScreen(p cp.Vector, screenW, screenH int) (float64, float64) {
	left, right, bottom, top := c.ViewBounds()
	if right == left || top == bottom {
		return 0, 0
	}
	x := (p.X - left) / (right - left) * float64(screenW)
	y := (top - p.Y) / (top - bottom) * float64(screenH)
	return x, y
}

// Visible reports whether p lies within the view, padded by margin world units.
func (c Camera) Visible(p cp.Vector, margin float64) bool {
	left, right, bottom, top := c.ViewBounds()
	return p.X >= left-margin && p.X <= right+margin && p.Y >= bottom-margin && p.Y <= top+margin
}

// Controller pans a camera while direction keys are held.
type Controller struct {
	Speed float64

	up, down, left, right bool
}

func NewController(speed float64) *Controller {
	return &Controller{Speed: speed}
}

// SetPressed records the held state of each direction.
func (c *Controller) SetPressed(up, down, left, right bool) {
	c.up, c.down, c.left, c.right = up, down, left, right
}

// ReadKeys polls WASD and the arrow keys.
func (c *Controller) ReadKeys() {
	c.SetPressed(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)
}

// Apply moves cam by Speed along each held direction.
func (c *Controller) Apply(cam *Camera) {
	if c.up {
		cam.Center.Y += c.Speed
	}
	if c.down {
		cam.Center.Y -= c.Speed
	}
	if c.right {
		cam.Center.X += c.Speed
	}
	if c.left {
		cam.Center.X -= c.Speed
	}
}
