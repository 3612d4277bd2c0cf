// Package mood aggregates image palettes into HSV summaries and classifies
// them into perceptual color mood categories.
package mood

import (
	"github.com/audiodevout/Image-Sorter-By-Colour/internal/colorspace"
	"github.com/audiodevout/Image-Sorter-By-Colour/internal/palette"
)

// Category is a perceptual color mood label.
type Category string

// The five mood categories, in sort priority order.
const (
	Earthy Category = "earthy"
	Warm   Category = "warm"
	Bright Category = "bright"
	Cool   Category = "cool"
	Muted  Category = "muted"
)

// Order returns the fixed category sort priority. Images are ordered by
// their category's position in this list, then by hue.
func Order() []Category {
	return []Category{Earthy, Warm, Bright, Cool, Muted}
}

// Summary is the weighted HSV centroid of an image's palette.
type Summary struct {
	Hue        float64 // degrees [0,360)
	Saturation float64 // [0,1]
	Value      float64 // [0,1]
}

// Summarize folds a weighted palette into a single HSV summary. Palette
// weights already sum to 1, so the weighted sums are the averages.
//
// Hue is averaged linearly, not circularly: two hues straddling the 0/360
// wraparound (say 350 and 10) average to 180, not 0. Changing this would
// shift classifications near the red boundary, so the linear average is
// kept deliberately.
func Summarize(p palette.Palette) Summary {
	var s Summary
	for _, e := range p {
		hsv := colorspace.ToHSV(e.Color)
		s.Hue += hsv.H * e.Weight
		s.Saturation += hsv.S * e.Weight
		s.Value += hsv.V * e.Weight
	}
	return s
}

// Categorize maps a summary to exactly one category. The rules overlap, so
// evaluation order matters: earthy wins over warm, bright over warm and
// cool, muted over cool. Every comparison is strict, so values sitting
// exactly on a threshold fall through to a later rule.
func Categorize(s Summary) Category {
	// Warm hues: red through yellow, plus the magenta-to-red wraparound.
	warm := s.Hue <= 60 || s.Hue >= 300

	switch {
	case warm && s.Saturation < 0.5 && s.Value > 0.3 && s.Value < 0.7:
		return Earthy
	case s.Saturation > 0.6 && s.Value > 0.7:
		return Bright
	case s.Saturation < 0.3 && s.Value < 0.5:
		return Muted
	case warm:
		return Warm
	default:
		return Cool
	}
}
