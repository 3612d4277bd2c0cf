package palette

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/nfnt/resize"

	"github.com/audiodevout/Image-Sorter-By-Colour/internal/colorspace"
)

const (
	// DefaultClusters is the default palette size per image.
	DefaultClusters = 5

	// DefaultSampleSize is the square edge images are downscaled to before
	// sampling. Downscaling is a performance measure; the exact size does
	// not affect correctness.
	DefaultSampleSize = 100

	// clusterSeed pins centroid initialization. The kmeans package draws
	// its initial centroids from the shared math/rand source, so the
	// source is reseeded before every partition to keep palettes
	// reproducible across runs. rand.Seed is a no-op under the default
	// randseednop GODEBUG setting, so binaries that need reproducible
	// palettes must re-enable it with "//go:debug randseednop=0" (see
	// cmd/image-sorter).
	clusterSeed = 42
)

// KMeansExtractor extracts palettes by clustering downscaled pixel samples
// in RGB space.
type KMeansExtractor struct {
	SampleSize int // downscale edge in pixels; 0 uses DefaultSampleSize
}

// NewKMeansExtractor returns an extractor with the default sample size.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{SampleSize: DefaultSampleSize}
}

// pixelObservation wraps an RGB sample to implement the
// clusters.Observation interface.
type pixelObservation struct {
	coords clusters.Coordinates
}

func (o pixelObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o pixelObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Extract downsamples img and partitions its pixels into count clusters.
// Each returned entry is a cluster centroid with the cluster's share of all
// samples as its weight. When the image has fewer distinct colors than
// count, the palette shrinks to the distinct count instead of failing, so a
// flat single-color image still yields a one-entry palette.
func (e *KMeansExtractor) Extract(img image.Image, count int) (Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: cluster count %d, need at least 1", ErrAnalysis, count)
	}

	pixels := samplePixels(img, e.sampleSize())
	if len(pixels) == 0 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrAnalysis)
	}
	if count > len(pixels) {
		return nil, fmt.Errorf("%w: %d clusters requested from %d samples", ErrAnalysis, count, len(pixels))
	}

	if distinct := distinctColors(pixels); distinct < count {
		count = distinct
	}

	// A single cluster needs no partitioning, and the clustering library
	// would return its random initial center untouched for k=1: no
	// assignment pass ever moves a point, so the center is never
	// recomputed from the data. The sample mean is the exact centroid.
	if count == 1 {
		return Palette{{Color: meanColor(pixels), Weight: 1.0}}, nil
	}

	observations := make(clusters.Observations, len(pixels))
	for i, p := range pixels {
		observations[i] = pixelObservation{
			coords: clusters.Coordinates{p.R, p.G, p.B},
		}
	}

	rand.Seed(clusterSeed)
	km := kmeans.New()
	result, err := km.Partition(observations, count)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	palette := make(Palette, 0, len(result))
	total := float64(len(pixels))
	for _, cluster := range result {
		palette = append(palette, Entry{
			Color:  colorspace.New(cluster.Center[0], cluster.Center[1], cluster.Center[2]),
			Weight: float64(len(cluster.Observations)) / total,
		})
	}

	return palette, nil
}

func (e *KMeansExtractor) sampleSize() int {
	if e.SampleSize > 0 {
		return e.SampleSize
	}
	return DefaultSampleSize
}

// samplePixels downscales img to a size x size square and flattens it to a
// list of RGB samples. The square resize intentionally ignores aspect
// ratio; the samples feed clustering, not display.
func samplePixels(img image.Image, size int) []colorspace.RGB {
	small := resize.Resize(uint(size), uint(size), img, resize.NearestNeighbor)

	bounds := small.Bounds()
	pixels := make([]colorspace.RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := small.At(x, y).RGBA()
			pixels = append(pixels, colorspace.RGB{
				R: float64(r >> 8),
				G: float64(g >> 8),
				B: float64(b >> 8),
			})
		}
	}
	return pixels
}

// meanColor returns the average of the samples.
func meanColor(pixels []colorspace.RGB) colorspace.RGB {
	var r, g, b float64
	for _, p := range pixels {
		r += p.R
		g += p.G
		b += p.B
	}
	n := float64(len(pixels))
	return colorspace.New(r/n, g/n, b/n)
}

// distinctColors counts unique samples. Sample channels come from 8-bit
// pixel data, so exact float comparison is safe here.
func distinctColors(pixels []colorspace.RGB) int {
	seen := make(map[colorspace.RGB]struct{}, len(pixels))
	for _, p := range pixels {
		seen[p] = struct{}{}
	}
	return len(seen)
}
