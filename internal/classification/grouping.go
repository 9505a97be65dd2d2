package classification

import (
	"github.com/Veraticus/slate/internal/model"
	"github.com/Veraticus/slate/internal/pattern"
)

// Option configures a grouping pass.
type Option func(*options)

type options struct {
	progress func()
}

// WithProgress calls fn once for every record a pass visits.
func WithProgress(fn func()) Option {
	return func(o *options) {
		o.progress = fn
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ByPattern files every record under the feedback pattern of its secret.
// Records whose secret is not five characters long are left out.
func ByPattern(records []model.Record, scorer pattern.Scorer, opts ...Option) *Groups {
	o := buildOptions(opts)
	groups := newGroups()

	for _, rec := range records {
		if o.progress != nil {
			o.progress()
		}
		secret := rec.Secret()
		if len(secret) != model.WordLength {
			continue
		}
		groups.add(string(scorer.Score(secret)), rec)
	}

	return groups
}

// BySubtree files every record under its second guess.
// Records with a single field are left out.
func BySubtree(records []model.Record, opts ...Option) *Groups {
	o := buildOptions(opts)
	groups := newGroups()

	for _, rec := range records {
		if o.progress != nil {
			o.progress()
		}
		second, ok := rec.SecondGuess()
		if !ok {
			continue
		}
		groups.add(second, rec)
	}

	return groups
}
