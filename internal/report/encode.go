package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/slate/internal/classification"
	"github.com/Veraticus/slate/internal/common"
	"gopkg.in/yaml.v3"
)

// Output formats for statistics.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormat reports whether format is a known output format.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// EncodeStats writes s to w as JSON or YAML.
func EncodeStats(w io.Writer, s classification.Stats, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode stats as JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode stats as YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", common.ErrInvalidFormat, format)
	}
}
