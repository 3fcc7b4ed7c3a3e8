package common

import "testing"

func TestSmooth(t *testing.T) {
	cases := []struct {
		name           string
		avg, sample, t float64
		want           float64
	}{
		{"seed", 0, 16, 0.1, 16},
		{"blend", 10, 20, 0.5, 15},
		{"hold", 10, 20, 0, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Smooth(c.avg, c.sample, c.t); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}
