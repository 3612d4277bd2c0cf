package colorspace

import (
	"math"
	"testing"
)

func TestToHSVPrimaries(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSV
	}{
		{
			name: "pure red",
			rgb:  RGB{R: 255},
			want: HSV{H: 0, S: 1, V: 1},
		},
		{
			name: "pure green",
			rgb:  RGB{G: 255},
			want: HSV{H: 120, S: 1, V: 1},
		},
		{
			name: "pure blue",
			rgb:  RGB{B: 255},
			want: HSV{H: 240, S: 1, V: 1},
		},
		{
			name: "yellow",
			rgb:  RGB{R: 255, G: 255},
			want: HSV{H: 60, S: 1, V: 1},
		},
		{
			name: "cyan",
			rgb:  RGB{G: 255, B: 255},
			want: HSV{H: 180, S: 1, V: 1},
		},
		{
			name: "magenta",
			rgb:  RGB{R: 255, B: 255},
			want: HSV{H: 300, S: 1, V: 1},
		},
		{
			name: "black",
			rgb:  RGB{},
			want: HSV{H: 0, S: 0, V: 0},
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: HSV{H: 0, S: 0, V: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHSV(tt.rgb)
			if got != tt.want {
				t.Errorf("ToHSV(%v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestToHSVAchromatic(t *testing.T) {
	// Every gray level must have zero hue and saturation.
	for v := 0; v <= 255; v++ {
		c := float64(v)
		got := ToHSV(RGB{R: c, G: c, B: c})
		if got.H != 0 || got.S != 0 {
			t.Fatalf("ToHSV(gray %d) = %v, want hue 0 and sat 0", v, got)
		}
		wantV := c / 255
		if got.V != wantV {
			t.Fatalf("ToHSV(gray %d).V = %v, want %v", v, got.V, wantV)
		}
	}
}

func TestToHSVDeterministic(t *testing.T) {
	c := RGB{R: 123.4, G: 45.6, B: 210.9}
	first := ToHSV(c)
	second := ToHSV(c)
	if first != second {
		t.Errorf("ToHSV not deterministic: %v vs %v", first, second)
	}
}

func TestToHSVHueRange(t *testing.T) {
	// Sweep a coarse grid and verify hue stays in [0,360) and sat/val in [0,1].
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				got := ToHSV(RGB{R: float64(r), G: float64(g), B: float64(b)})
				if got.H < 0 || got.H >= 360 {
					t.Fatalf("ToHSV(%d,%d,%d).H = %v, out of [0,360)", r, g, b, got.H)
				}
				if got.S < 0 || got.S > 1 || got.V < 0 || got.V > 1 {
					t.Fatalf("ToHSV(%d,%d,%d) = %v, sat/val out of [0,1]", r, g, b, got)
				}
			}
		}
	}
}

func TestNewClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    RGB
	}{
		{
			name: "in range unchanged",
			r:    10, g: 128.5, b: 255,
			want: RGB{R: 10, G: 128.5, B: 255},
		},
		{
			name: "negative clamps to zero",
			r:    -4, g: 0, b: 12,
			want: RGB{R: 0, G: 0, B: 12},
		},
		{
			name: "overflow clamps to 255",
			r:    300, g: 255.01, b: 90,
			want: RGB{R: 255, G: 255, B: 90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("New(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestFromHSVRoundTrip(t *testing.T) {
	colors := []RGB{
		{R: 255},
		{G: 255},
		{B: 255},
		{R: 255, G: 128},
		{R: 30, G: 144, B: 255},
		{R: 128, G: 128, B: 128},
	}

	for _, c := range colors {
		back := FromHSV(ToHSV(c))
		if math.Abs(back.R-c.R) > 1 || math.Abs(back.G-c.G) > 1 || math.Abs(back.B-c.B) > 1 {
			t.Errorf("round trip of %v gave %v", c, back)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want string
	}{
		{RGB{R: 255}, "#ff0000"},
		{RGB{R: 26, G: 43, B: 60}, "#1a2b3c"},
		{RGB{R: 127.6, G: 0, B: 255}, "#8000ff"},
	}

	for _, tt := range tests {
		if got := tt.rgb.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.rgb, got, tt.want)
		}
	}
}
