// Package export writes a grouping to a TXT or CSV file.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/slate/internal/classification"
)

// Exporter writes a grouping in one file format.
type Exporter interface {
	Export(w io.Writer, groups *classification.Groups, mode string) error
	Format() string
}

// ForPath picks the exporter for a destination file by its extension.
func ForPath(path string) Exporter {
	if strings.HasSuffix(path, ".csv") {
		return NewCSVExporter()
	}
	return NewTextExporter()
}

// WriteFile exports groups to path and returns the absolute path written.
// A failed export leaves no file behind.
func WriteFile(path string, groups *classification.Groups, mode string) (string, error) {
	return writeFile(path, ForPath(path), groups, mode)
}

func writeFile(path string, exp Exporter, groups *classification.Groups, mode string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve export path %s: %w", path, err)
	}

	f, err := os.Create(abs) // #nosec G304 -- destination chosen by the user
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := exp.Export(f, groups, mode); err != nil {
		_ = f.Close()
		discard(abs)
		return "", fmt.Errorf("failed to write %s export: %w", exp.Format(), err)
	}
	if err := f.Close(); err != nil {
		discard(abs)
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	return abs, nil
}

func discard(path string) {
	if err := os.Remove(path); err != nil {
		slog.Warn("Failed to remove partial export", "path", path, "error", err)
	}
}

func example(groups *classification.Groups, key string) string {
	rec, _ := groups.Example(key)
	return rec.Line
}
