// Package render turns spritesheets into per-frame images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var ErrFrameSize = errors.New("render: frame size must be positive")

// Sheet is a grid of equally sized frames read left-to-right, top-to-bottom.
type Sheet struct {
	frameW int
	frameH int
	frames []*ebiten.Image
}

// NewSheet slices img into frameW x frameH frames. count limits how many are
// read; zero reads the whole grid.
func NewSheet(img *ebiten.Image, frameW, frameH, count int) (*Sheet, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, ErrFrameSize
	}
	b := img.Bounds()
	cols := b.Dx() / frameW
	rows := b.Dy() / frameH
	maxFrames := cols * rows
	if maxFrames == 0 {
		return nil, fmt.Errorf("render: sheet %dx%d smaller than one %dx%d frame", b.Dx(), b.Dy(), frameW, frameH)
	}
	if count <= 0 || count > maxFrames {
		count = maxFrames
	}

	s := &Sheet{frameW: frameW, frameH: frameH, frames: make([]*ebiten.Image, count)}
	for i := range s.frames {
		r := FrameRect(i, cols, frameW, frameH).Add(b.Min)
		s.frames[i] = img.SubImage(r).(*ebiten.Image)
	}
	return s, nil
}

// LoadSheet decodes a PNG spritesheet from disk.
func LoadSheet(path string, frameW, frameH, count int) (*Sheet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	return NewSheet(ebiten.NewImageFromImage(img), frameW, frameH, count)
}

// placeholderPalette tints each row of the generated sheet.
var placeholderPalette = []color.RGBA{
	colornames.Cornflowerblue,
	colornames.Goldenrod,
	colornames.Mediumseagreen,
	colornames.Indianred,
}

// PlaceholderSheet draws a sheet for running without art: one tinted row per
// direction with a marker that steps across the frame.
func PlaceholderSheet(frameW, frameH, cols, count int) (*Sheet, error) {
	if frameW <= 0 || frameH <= 0 || cols <= 0 {
		return nil, ErrFrameSize
	}
	if count <= 0 {
		count = cols
	}
	rows := (count + cols - 1) / cols
	img := ebiten.NewImage(cols*frameW, rows*frameH)

	for i := 0; i < count; i++ {
		r := FrameRect(i, cols, frameW, frameH)
		row := i / cols
		body := placeholderPalette[row%len(placeholderPalette)]

		inset := float32(frameW) / 8
		vector.DrawFilledRect(img, float32(r.Min.X)+inset, float32(r.Min.Y)+inset,
			float32(frameW)-2*inset, float32(frameH)-2*inset, body, false)

		step := float32(i%cols) / float32(cols)
		mx := float32(r.Min.X) + inset + step*(float32(frameW)-2*inset)
		vector.DrawFilledCircle(img, mx, float32(r.Min.Y)+float32(frameH)/2, float32(frameW)/10, colornames.White, true)
	}
	return NewSheet(img, frameW, frameH, count)
}

// FrameRect locates frame i on a sheet with cols columns.
func FrameRect(i, cols, frameW, frameH int) image.Rectangle {
	if cols <= 0 {
		return image.Rectangle{}
	}
	x := (i % cols) * frameW
	y := (i / cols) * frameH
	return image.Rect(x, y, x+frameW, y+frameH)
}

// Frame returns frame i, wrapping out-of-range indices.
func (s *Sheet) Frame(i int) *ebiten.Image {
	if s == nil || len(s.frames) == 0 {
		return nil
	}
	i %= len(s.frames)
	if i < 0 {
		i += len(s.frames)
	}
	return s.frames[i]
}

func (s *Sheet) Len() int              { return len(s.frames) }
func (s *Sheet) FrameSize() (int, int) { return s.frameW, s.frameH }
