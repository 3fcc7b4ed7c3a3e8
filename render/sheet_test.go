package render

import (
	"image"
	"testing"
)

func TestFrameRect(t *testing.T) {
	cases := []struct {
		name string
		i    int
		want image.Rectangle
	}{
		{"first", 0, image.Rect(0, 0, 32, 16)},
		{"end_of_row", 5, image.Rect(160, 0, 192, 16)},
		{"second_row", 6, image.Rect(0, 16, 32, 32)},
		{"last", 23, image.Rect(160, 48, 192, 64)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FrameRect(c.i, 6, 32, 16); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
	if got := FrameRect(3, 0, 32, 16); got != (image.Rectangle{}) {
		t.Fatalf("expected empty rect for zero columns, got %v", got)
	}
}

func TestNilSheetFrame(t *testing.T) {
	var s *Sheet
	if s.Frame(3) != nil {
		t.Fatalf("nil sheet returned a frame")
	}
}
