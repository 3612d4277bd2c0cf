package plan

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
)

// manifestHeader is the column order of the run manifest.
var manifestHeader = []string{
	"run_id", "original", "renamed", "category", "hue", "saturation", "value",
}

// WriteManifest writes one CSV row per planned rename so a run can still be
// audited after the files have moved. The plan must come from Build on the
// same ordered records.
func WriteManifest(w io.Writer, runID uuid.UUID, ordered []Record, p Plan) error {
	if len(ordered) != len(p) {
		return fmt.Errorf("manifest mismatch: %d records but %d renames", len(ordered), len(p))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(manifestHeader); err != nil {
		return fmt.Errorf("writing manifest header: %w", err)
	}

	for i, r := range ordered {
		row := []string{
			runID.String(),
			r.Name,
			p[i].To,
			string(r.Category),
			strconv.FormatFloat(r.Summary.Hue, 'f', 1, 64),
			strconv.FormatFloat(r.Summary.Saturation, 'f', 2, 64),
			strconv.FormatFloat(r.Summary.Value, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing manifest row for %s: %w", r.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
