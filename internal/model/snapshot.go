package model

import "time"

// BucketKind names the grouping a snapshot bucket belongs to.
type BucketKind string

// Bucket kinds.
const (
	KindPattern BucketKind = "pattern"
	KindSubtree BucketKind = "subtree"
)

// Valid reports whether k is a known bucket kind.
func (k BucketKind) Valid() bool {
	return k == KindPattern || k == KindSubtree
}

// Run is one saved classification of an input file.
type Run struct {
	CreatedAt time.Time
	ID        string
	Guess     string
	InputPath string
	Total     int
	Patterns  int
	Subtrees  int
}

// Bucket is one key of a grouping as saved with a run.
type Bucket struct {
	RunID   string
	Kind    BucketKind
	Key     string
	Example string
	Count   int
}
