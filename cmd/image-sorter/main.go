// Command image-sorter analyzes a folder of images and renames them into
// color mood order (earthy, warm, bright, cool, muted; hue ascending
// within each mood). By default it only previews the plan; renaming the
// files is destructive and must be requested with -x.
//
// Palette extraction reseeds math/rand to keep clustering reproducible;
// rand.Seed is a no-op by default since Go 1.24, so re-enable it here.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/audiodevout/Image-Sorter-By-Colour/internal/logger"
	"github.com/audiodevout/Image-Sorter-By-Colour/internal/pipeline"
	"github.com/audiodevout/Image-Sorter-By-Colour/internal/plan"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := pipeline.DefaultConfig()

	flag.StringVar(&cfg.Dir, "dir", "", "folder containing the images to sort")
	flag.IntVar(&cfg.Clusters, "k", cfg.Clusters, "number of palette colors per image")
	flag.IntVar(&cfg.SampleSize, "sample", cfg.SampleSize, "downscale edge in pixels before sampling")
	flag.BoolVar(&cfg.Execute, "x", false, "execute the renames (default is a dry-run preview)")
	flag.Parse()

	if cfg.Dir == "" && flag.NArg() > 0 {
		cfg.Dir = flag.Arg(0)
	}
	if cfg.Dir == "" {
		return fmt.Errorf("usage: image-sorter [-k n] [-sample px] [-x] <folder>")
	}

	log := logger.New(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	result, err := pipeline.Run(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	fmt.Print(plan.FormatSummary(result.Ordered, result.Plan))

	if len(result.Failures) > 0 {
		fmt.Printf("\nSkipped %d unreadable image(s):\n", len(result.Failures))
		for _, f := range result.Failures {
			fmt.Printf("  %s: %v\n", f.Name, f.Err)
		}
	}

	if !cfg.Execute {
		fmt.Println("\nDry run: no files were renamed. Re-run with -x to apply.")
	}

	return nil
}
