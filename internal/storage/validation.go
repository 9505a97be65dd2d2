package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/slate/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidRun    = errors.New("invalid run")
	ErrInvalidBucket = errors.New("invalid bucket")
	ErrRunNotFound   = errors.New("run not found")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateRun(run *model.Run) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if !model.IsWord(run.Guess) {
		return fmt.Errorf("%w: guess %q is not a %d-letter word", ErrInvalidRun, run.Guess, model.WordLength)
	}
	if run.InputPath == "" {
		return fmt.Errorf("%w: missing input path", ErrInvalidRun)
	}
	if run.Total < 0 || run.Patterns < 0 || run.Subtrees < 0 {
		return fmt.Errorf("%w: negative counts", ErrInvalidRun)
	}
	return nil
}

func validateBuckets(buckets []model.Bucket) error {
	for i, b := range buckets {
		if !b.Kind.Valid() {
			return fmt.Errorf("%w: bucket %d has kind %q", ErrInvalidBucket, i, b.Kind)
		}
		if b.Key == "" {
			return fmt.Errorf("%w: bucket %d has no key", ErrInvalidBucket, i)
		}
		if b.Count <= 0 {
			return fmt.Errorf("%w: bucket %d has count %d", ErrInvalidBucket, i, b.Count)
		}
	}
	return nil
}
