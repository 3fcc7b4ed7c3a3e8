// Command spsa previews the four directional animations of a spec side by
// side, without any wandering.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/wanderers/clock"
	"github.com/milk9111/wanderers/ecs/component"
	"github.com/milk9111/wanderers/prefabs"
	"github.com/milk9111/wanderers/render"
)

const (
	previewW = 512
	previewH = 160
)

type previewGame struct {
	sheet     *render.Sheet
	clock     clock.Clock
	animators [component.DirectionCount]*component.Animator
}

func (g *previewGame) Update() error {
	now := g.clock.Now()
	for _, a := range g.animators {
		a.Update(now)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	fw, fh := g.sheet.FrameSize()
	slot := previewW / component.DirectionCount
	scale := float64(slot) / float64(max(fw, fh)) * 0.75

	for d, a := range g.animators {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(d*slot)+(float64(slot)-float64(fw)*scale)/2, 24)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(g.sheet.Frame(a.Frame()), op)

		label := fmt.Sprintf("%s %d", component.Direction(d), a.Frame())
		ebitenutil.DebugPrintAt(screen, label, d*slot+8, 4)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewW, previewH
}

func main() {
	specName := flag.String("spec", "", "spec file in prefabs/ (default wanderers.yaml)")
	flag.Parse()

	spec, err := prefabs.LoadWanderSpec(*specName)
	if err != nil {
		log.Fatal(err)
	}
	table, err := spec.DirectionalAnimations()
	if err != nil {
		log.Fatal(err)
	}

	sheet, err := spec.LoadSheet()
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{sheet: sheet, clock: clock.System{}}
	now := g.clock.Now()
	for d := range g.animators {
		g.animators[d] = component.NewAnimator(table.For(component.Direction(d)), now)
	}

	ebiten.SetWindowSize(previewW*2, previewH*2)
	ebiten.SetWindowTitle("spsa: " + spec.Name)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
