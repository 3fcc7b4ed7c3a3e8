package main

import (
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/wanderers/common"
	"github.com/milk9111/wanderers/prefabs"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// backgroundPalette is cycled by the overlay's colour button after the
// spec's own background.
var backgroundPalette = []color.Color{
	colornames.Black,
	colornames.Midnightblue,
	colornames.Darkslategray,
	colornames.Darkolivegreen,
	colornames.Maroon,
	colornames.Slategray,
}

// DebugOverlay shows frame timing and lets the background colour be changed
// and copied. Tab toggles it.
type DebugOverlay struct {
	game    *Game
	ui      *ebitenui.UI
	status  *widget.Text
	colorTx *widget.Text
	visible bool

	avgFrame   float64
	paletteIdx int
	clipOK     bool
}

func NewDebugOverlay(g *Game) *DebugOverlay {
	o := &DebugOverlay{game: g, visible: true, paletteIdx: -1}

	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		o.clipOK = true
	}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	rowData := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})

	o.status = widget.NewText(
		widget.TextOpts.Text(g.statusLine(0), &face, white),
		widget.TextOpts.WidgetOpts(rowData),
	)
	o.colorTx = widget.NewText(
		widget.TextOpts.Text(o.colorLabel(), &face, white),
		widget.TextOpts.WidgetOpts(rowData),
	)

	nextBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Next colour", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(rowData),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			o.nextColor()
		}),
	)

	copyBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Copy hex", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(rowData),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			o.copyColor()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(o.status)
	panel.AddChild(o.colorTx)
	panel.AddChild(nextBtn)
	panel.AddChild(copyBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	o.ui = &ebitenui.UI{Container: root}
	return o
}

// Update refreshes the timing label with a smoothed frame time.
func (o *DebugOverlay) Update(frameTime time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
	if frameTime > 0 {
		o.avgFrame = common.Smooth(o.avgFrame, float64(frameTime), 0.1)
	}
	if !o.visible {
		return
	}
	o.status.Label = o.game.statusLine(time.Duration(o.avgFrame))
	o.ui.Update()
}

func (o *DebugOverlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	o.ui.Draw(screen)
}

func (o *DebugOverlay) nextColor() {
	o.paletteIdx = (o.paletteIdx + 1) % len(backgroundPalette)
	o.game.SetBackground(backgroundPalette[o.paletteIdx])
	o.colorTx.Label = o.colorLabel()
}

func (o *DebugOverlay) copyColor() {
	hex := prefabs.Hex(o.game.Background())
	if !o.clipOK {
		log.Printf("debug: background %s (clipboard unavailable)", hex)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(hex))
}

func (o *DebugOverlay) colorLabel() string {
	return "Background: " + prefabs.Hex(o.game.Background())
}
