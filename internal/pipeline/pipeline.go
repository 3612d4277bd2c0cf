// Package pipeline runs the image analysis batch: scan a folder, analyze
// each image, order the results, and build the rename plan.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/audiodevout/Image-Sorter-By-Colour/internal/mood"
	"github.com/audiodevout/Image-Sorter-By-Colour/internal/palette"
	"github.com/audiodevout/Image-Sorter-By-Colour/internal/plan"
)

// supportedExts are the image extensions the scanner accepts. Matching is
// case-insensitive.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
}

// Config holds the parameters for one pipeline run.
type Config struct {
	Dir        string // folder containing the images
	Clusters   int    // palette size per image
	SampleSize int    // downscale edge in pixels before sampling
	Execute    bool   // apply renames; otherwise preview only
}

// DefaultConfig returns the recommended defaults. Execute is off, so the
// default run is a dry-run preview.
func DefaultConfig() Config {
	return Config{
		Clusters:   palette.DefaultClusters,
		SampleSize: palette.DefaultSampleSize,
	}
}

// ListImages returns the supported image filenames directly inside dir, in
// directory order. Subdirectories are not descended.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Failure records an image that could not be analyzed.
type Failure struct {
	Name string
	Err  error
}

// Analyzer runs per-image color analysis with an injected palette
// extractor, so tests can substitute a deterministic stub.
type Analyzer struct {
	extractor palette.Extractor
	clusters  int
	log       *slog.Logger
}

// NewAnalyzer creates an analyzer. A clusters value below 1 falls back to
// the default palette size.
func NewAnalyzer(extractor palette.Extractor, clusters int, log *slog.Logger) *Analyzer {
	if clusters < 1 {
		clusters = palette.DefaultClusters
	}
	return &Analyzer{extractor: extractor, clusters: clusters, log: log}
}

// Analyze processes each named image in dir in turn. A failing image is
// logged, recorded as a Failure, and skipped; it never aborts the batch or
// disturbs the ordering of the remaining images.
func (a *Analyzer) Analyze(ctx context.Context, dir string, names []string) ([]plan.Record, []Failure, error) {
	var records []plan.Record
	var failures []Failure

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		record, err := a.analyzeOne(filepath.Join(dir, name))
		if err != nil {
			a.log.Warn("skipping image", "file", name, "error", err)
			failures = append(failures, Failure{Name: name, Err: err})
			continue
		}
		record.Name = name

		a.log.Info("analyzed image",
			"file", name,
			"category", record.Category,
			"hue", fmt.Sprintf("%.1f", record.Summary.Hue),
			"sat", fmt.Sprintf("%.2f", record.Summary.Saturation),
			"val", fmt.Sprintf("%.2f", record.Summary.Value))

		records = append(records, record)
	}

	return records, failures, nil
}

func (a *Analyzer) analyzeOne(path string) (plan.Record, error) {
	img, err := palette.Load(path)
	if err != nil {
		return plan.Record{}, err
	}

	pal, err := a.extractor.Extract(img, a.clusters)
	if err != nil {
		return plan.Record{}, err
	}

	summary := mood.Summarize(pal)
	return plan.Record{
		Category: mood.Categorize(summary),
		Summary:  summary,
	}, nil
}

// Result summarizes one pipeline run.
type Result struct {
	RunID    uuid.UUID
	Ordered  []plan.Record
	Plan     plan.Plan
	Failures []Failure
}

// Run scans cfg.Dir, analyzes every supported image, and builds the rename
// plan. When cfg.Execute is set, a CSV manifest is written next to the
// images and the renames are applied; otherwise nothing on disk changes.
func Run(ctx context.Context, cfg Config, log *slog.Logger) (*Result, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("no image folder configured")
	}

	names, err := ListImages(cfg.Dir)
	if err != nil {
		return nil, err
	}
	log.Info("scanned folder", "dir", cfg.Dir, "images", len(names))

	extractor := palette.NewKMeansExtractor()
	if cfg.SampleSize > 0 {
		extractor.SampleSize = cfg.SampleSize
	}

	analyzer := NewAnalyzer(extractor, cfg.Clusters, log)
	records, failures, err := analyzer.Analyze(ctx, cfg.Dir, names)
	if err != nil {
		return nil, err
	}

	ordered := plan.Order(records)
	renames := plan.Build(ordered)

	result := &Result{
		RunID:    uuid.New(),
		Ordered:  ordered,
		Plan:     renames,
		Failures: failures,
	}

	if !cfg.Execute {
		return result, nil
	}

	if err := writeManifest(cfg.Dir, result); err != nil {
		return nil, err
	}

	if err := renames.Apply(cfg.Dir); err != nil {
		return nil, fmt.Errorf("applying renames: %w", err)
	}
	log.Info("renamed images", "count", len(renames), "run_id", result.RunID)

	return result, nil
}

// writeManifest records the run in cfg.Dir before any file moves, so the
// original names survive even if a later rename halts the run.
func writeManifest(dir string, result *Result) error {
	name := fmt.Sprintf("sort-manifest-%s.csv", result.RunID)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}

	if err := plan.WriteManifest(f, result.RunID, result.Ordered, result.Plan); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
