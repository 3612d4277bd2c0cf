// Package plan orders analyzed images by mood and derives sequential
// rename plans.
package plan

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/audiodevout/Image-Sorter-By-Colour/internal/mood"
)

// ErrTargetExists is returned when a rename would overwrite an existing
// file, typically left behind by a prior partial run.
var ErrTargetExists = errors.New("rename target already exists")

// Record is one analyzed image awaiting ordering.
type Record struct {
	Name     string // original filename, extension included
	Category mood.Category
	Summary  mood.Summary
}

// Order sorts records by category priority, then by average hue within a
// category. The sort is stable, so records tied on both keys keep their
// input order.
func Order(records []Record) []Record {
	priority := make(map[mood.Category]int)
	for i, c := range mood.Order() {
		priority[c] = i
	}

	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b Record) int {
		if d := priority[a.Category] - priority[b.Category]; d != 0 {
			return d
		}
		return cmp.Compare(a.Summary.Hue, b.Summary.Hue)
	})
	return ordered
}

// Rename maps an original filename to its sequential target name.
type Rename struct {
	From string
	To   string
}

// Plan is the ordered list of renames for one run.
type Plan []Rename

// Build numbers the ordered records sequentially starting at 1, keeping
// each file's original extension.
func Build(ordered []Record) Plan {
	p := make(Plan, len(ordered))
	for i, r := range ordered {
		p[i] = Rename{
			From: r.Name,
			To:   fmt.Sprintf("%d%s", i+1, filepath.Ext(r.Name)),
		}
	}
	return p
}

// Apply executes the renames inside dir. An existing file at a target path
// halts the run before that rename and everything after it; overwriting
// would silently destroy an image.
func (p Plan) Apply(dir string) error {
	for _, r := range p {
		if r.From == r.To {
			continue
		}

		dst := filepath.Join(dir, r.To)
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("%w: %s", ErrTargetExists, r.To)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", r.To, err)
		}

		if err := os.Rename(filepath.Join(dir, r.From), dst); err != nil {
			return fmt.Errorf("renaming %s: %w", r.From, err)
		}
	}
	return nil
}
