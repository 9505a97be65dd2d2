package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/slate/internal/classification"
)

// TextExporter writes a plain report with one example per bucket.
type TextExporter struct{}

// NewTextExporter creates a text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Format returns the exporter format identifier.
func (e *TextExporter) Format() string {
	return "txt"
}

// Export writes the heading followed by each sorted key with its count and example.
func (e *TextExporter) Export(w io.Writer, groups *classification.Groups, mode string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "EXPORTED %s RESULTS\n%s\n\n", strings.ToUpper(mode), strings.Repeat("=", 80))
	for _, key := range groups.SortedKeys() {
		fmt.Fprintf(bw, "%s (%d words)\n", key, groups.Count(key))
		fmt.Fprintf(bw, "Example: %s\n\n", example(groups, key))
	}

	return bw.Flush()
}
