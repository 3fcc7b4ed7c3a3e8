package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/wanderers/camera"
	"github.com/milk9111/wanderers/ecs"
	"github.com/milk9111/wanderers/ecs/component"
	"github.com/milk9111/wanderers/render"
)

// RenderSystem draws every animated instance at its transform. It reads the
// world and never mutates it.
type RenderSystem struct {
	Sheet *render.Sheet
	// SpriteSize is the drawn height of one frame in world units.
	SpriteSize float64
}

func NewRenderSystem(sheet *render.Sheet, spriteSize float64) *RenderSystem {
	return &RenderSystem{Sheet: sheet, SpriteSize: spriteSize}
}

// Draw renders instances in roster order, so later instances overlap earlier
// ones.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, cam camera.Camera) {
	if r == nil || r.Sheet == nil || r.Sheet.Len() == 0 {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := r.Sheet.FrameSize()
	scale := r.SpriteSize * cam.PixelsPerUnit(sh) / float64(fh)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.AnimatorComponent.Kind(), func(e ecs.Entity, t *component.Transform, anim *component.Animator) {
		if !cam.Visible(t.Position, r.SpriteSize) {
			return
		}
		img := r.Sheet.Frame(anim.Frame())
		if img == nil {
			return
		}
		x, y := cam.WorldToScreen(t.Position, sw, sh)

		op := &ebiten.DrawImageOptions{}
		// Anchor the sprite at its bottom-center.
		op.GeoM.Translate(-float64(fw)/2, -float64(fh))
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	})
}
