// Package palette extracts dominant color palettes from images using
// k-means clustering.
package palette

import (
	"errors"
	"image"

	"github.com/audiodevout/Image-Sorter-By-Colour/internal/colorspace"
)

// ErrDecode is returned when an image file cannot be read or decoded.
var ErrDecode = errors.New("image decode failed")

// ErrAnalysis is returned when clustering cannot produce a valid palette.
var ErrAnalysis = errors.New("palette analysis failed")

// Entry is one dominant color and its share of the sampled pixels.
type Entry struct {
	Color  colorspace.RGB
	Weight float64
}

// Palette is an ordered set of dominant colors. Weights sum to 1.0 within
// floating tolerance.
type Palette []Entry

// Extractor reduces an image to a small palette of representative colors.
// Implementations must be deterministic for a given image so repeated runs
// produce the same ordering.
type Extractor interface {
	Extract(img image.Image, count int) (Palette, error)
}
