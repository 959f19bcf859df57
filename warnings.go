package anasys

import (
	"fmt"
	"strings"
)

// Section names used in warnings.
const (
	sectionHeightMaps      = "HeightMaps"
	sectionRenderedSpectra = "RenderedSpectra"
)

// Warning describes a non-fatal issue encountered during an import,
// such as a channel skipped because its payload had the wrong size.
// Warnings never affect the success of an import.
type Warning struct {
	Section string // section the item belongs to
	Index   int    // 1-based position of the item within its section
	Message string
}

// String returns the warning as a single line.
func (w Warning) String() string {
	return fmt.Sprintf("%s[%d]: %s", w.Section, w.Index, w.Message)
}

// FormatWarnings joins warnings into a readable multi-line string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
