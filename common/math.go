package common

// Logical screen size the game lays out against.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Smooth eases a running average toward sample, weighting the new sample by
// t. The first sample seeds the average.
func Smooth(avg, sample, t float64) float64 {
	if avg == 0 {
		return sample
	}
	return Lerp(avg, sample, t)
}
