package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Veraticus/slate/internal/classification"
)

// CSVExporter writes one row per bucket under a fixed header.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Format returns the exporter format identifier.
func (e *CSVExporter) Format() string {
	return "csv"
}

// Export writes the header and a row per sorted key. The mode is not recorded.
func (e *CSVExporter) Export(w io.Writer, groups *classification.Groups, _ string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Pattern", "Count", "Example Path"}); err != nil {
		return err
	}

	for _, key := range groups.SortedKeys() {
		row := []string{key, strconv.Itoa(groups.Count(key)), example(groups, key)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
