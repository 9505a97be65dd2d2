// Package loader reads solver paths from a text source.
package loader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Veraticus/slate/internal/common"
	"github.com/Veraticus/slate/internal/model"
)

// maxLineSize bounds a single path line; longer lines are skipped.
const maxLineSize = 1024 * 1024

// Stats counts what happened to the lines of one source.
type Stats struct {
	Lines    int
	Accepted int
	Skipped  int
}

// Result is the outcome of loading one source.
type Result struct {
	Records []model.Record
	Stats   Stats
}

// Loader keeps the lines that are solver paths for one opening guess.
type Loader struct {
	guess string
}

// New creates a Loader for the given opening guess.
func New(guess string) *Loader {
	return &Loader{guess: guess}
}

// Accept parses line and reports whether it is a well-formed path.
//
// A path is kept iff it is non-empty after trimming, its first field is the
// opening guess, and every field is five lowercase letters. Anything else is
// noise in the supplied data and is dropped without an error.
func (l *Loader) Accept(line string) (model.Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.Record{}, false
	}

	rec := model.NewRecord(line)
	if rec.Opener() != l.guess {
		return model.Record{}, false
	}
	for _, f := range rec.Fields {
		if !model.IsWord(f) {
			return model.Record{}, false
		}
	}
	return rec, true
}

// Read loads every well-formed path from r in source order.
func (l *Loader) Read(ctx context.Context, r io.Reader) (*Result, error) {
	res := &Result{}

	br := bufio.NewReaderSize(r, 64*1024)
	var buf []byte

	for {
		line, oversized, err := readLine(br, buf[:0])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read paths: %w", err)
		}
		buf = line

		if res.Stats.Lines%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		res.Stats.Lines++

		if oversized {
			res.Stats.Skipped++
			continue
		}
		rec, ok := l.Accept(string(line))
		if !ok {
			res.Stats.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
		res.Stats.Accepted++
	}

	common.LogDebug("Loaded solver paths", common.Fields{
		"lines":    res.Stats.Lines,
		"accepted": res.Stats.Accepted,
		"skipped":  res.Stats.Skipped,
	})

	return res, nil
}

// LoadFile loads every well-formed path from the file at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.NewUserError(fmt.Sprintf("%s not found", path), common.ErrInputNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return l.Read(ctx, f)
}

// readLine appends the next line of br to buf. A line longer than maxLineSize
// is consumed to its end and reported as oversized with an empty buf.
func readLine(br *bufio.Reader, buf []byte) ([]byte, bool, error) {
	oversized := false
	for {
		frag, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || oversized) {
				return buf, oversized, nil
			}
			return buf, oversized, err
		}

		if !oversized {
			if len(buf)+len(frag) > maxLineSize {
				oversized = true
				buf = buf[:0]
			} else {
				buf = append(buf, frag...)
			}
		}
		if !isPrefix {
			return buf, oversized, nil
		}
	}
}
