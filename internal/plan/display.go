package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/audiodevout/Image-Sorter-By-Colour/internal/colorspace"
)

const swatch = "██"

// FormatSummary returns a human-readable preview of the planned order.
// Each line shows a swatch tinted with the image's average color, the
// target name, the source name, and the mood classification. The plan must
// come from Build on the same ordered records.
func FormatSummary(ordered []Record, p Plan) string {
	var sb strings.Builder

	if len(ordered) == 0 {
		sb.WriteString("No images to sort\n")
		return sb.String()
	}

	imageWord := "image"
	if len(ordered) > 1 {
		imageWord = "images"
	}
	sb.WriteString(fmt.Sprintf("Planned order for %d %s:\n", len(ordered), imageWord))

	for i, r := range ordered {
		avg := colorspace.FromHSV(colorspace.HSV{
			H: r.Summary.Hue,
			S: r.Summary.Saturation,
			V: r.Summary.Value,
		})
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(avg.Hex()))

		sb.WriteString(fmt.Sprintf("  %s %s <- %s  %s (hue %.1f, sat %.2f, val %.2f)\n",
			style.Render(swatch), p[i].To, r.Name, r.Category,
			r.Summary.Hue, r.Summary.Saturation, r.Summary.Value))
	}

	return sb.String()
}
