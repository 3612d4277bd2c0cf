// Package colorspace provides RGB and HSV color representations and the
// conversions between them.
package colorspace

import (
	"fmt"
	"math"
)

// RGB is a color with real-valued channels in [0,255]. Channels are floats
// rather than bytes because cluster centroids are means of pixel values.
type RGB struct {
	R, G, B float64
}

// New clamps each channel into [0,255] and returns the resulting color.
// Out-of-range input is clamped rather than rejected.
func New(r, g, b float64) RGB {
	return RGB{R: clamp(r), G: clamp(g), B: clamp(b)}
}

func clamp(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

// Hex returns the color as a hex string (e.g., "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(c.R)), uint8(math.Round(c.G)), uint8(math.Round(c.B)))
}

// HSV is a color in hue/saturation/value form. Hue is in degrees [0,360),
// saturation and value are in [0,1].
type HSV struct {
	H, S, V float64
}

// ToHSV converts an RGB color to HSV using the six-sector hue formula.
// Achromatic colors (r=g=b) get hue 0 and saturation 0.
func ToHSV(c RGB) HSV {
	r := c.R / 255
	g := c.G / 255
	b := c.B / 255

	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	diff := mx - mn

	var h float64
	switch {
	case diff == 0:
		h = 0
	case mx == r:
		h = math.Mod(60*((g-b)/diff)+360, 360)
	case mx == g:
		h = math.Mod(60*((b-r)/diff)+120, 360)
	default:
		h = math.Mod(60*((r-g)/diff)+240, 360)
	}

	var s float64
	if mx > 0 {
		s = diff / mx
	}

	return HSV{H: h, S: s, V: mx}
}

// FromHSV converts an HSV color back to RGB. Used for rendering swatches;
// the analysis pipeline itself only goes RGB -> HSV.
func FromHSV(c HSV) RGB {
	if c.S == 0 {
		v := c.V * 255
		return New(v, v, v)
	}

	sector := math.Mod(c.H, 360) / 60
	i := math.Floor(sector)
	f := sector - i

	p := c.V * (1 - c.S)
	q := c.V * (1 - f*c.S)
	t := c.V * (1 - (1-f)*c.S)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = c.V, t, p
	case 1:
		r, g, b = q, c.V, p
	case 2:
		r, g, b = p, c.V, t
	case 3:
		r, g, b = p, q, c.V
	case 4:
		r, g, b = t, p, c.V
	case 5:
		r, g, b = c.V, p, q
	}

	return New(r*255, g*255, b*255)
}
