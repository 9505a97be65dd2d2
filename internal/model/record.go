// Package model defines the solver path records shared across the application.
package model

import "strings"

// WordLength is the length of every guess and secret.
const WordLength = 5

// Record is one solver path: the guesses in order, ending with the secret.
type Record struct {
	// Line is the trimmed source line the fields were split from.
	Line   string
	Fields []string
}

// NewRecord splits a comma-separated path into a Record.
func NewRecord(line string) Record {
	line = strings.TrimSpace(line)
	return Record{
		Line:   line,
		Fields: strings.Split(line, ","),
	}
}

// Secret returns the answer this path solves for.
func (r Record) Secret() string {
	if len(r.Fields) == 0 {
		return ""
	}
	return r.Fields[len(r.Fields)-1]
}

// SecondGuess returns the guess played after the opener.
func (r Record) SecondGuess() (string, bool) {
	if len(r.Fields) < 2 {
		return "", false
	}
	return r.Fields[1], true
}

// Opener returns the first guess of the path.
func (r Record) Opener() string {
	if len(r.Fields) == 0 {
		return ""
	}
	return r.Fields[0]
}

// Len is the number of guesses in the path, including the secret.
func (r Record) Len() int {
	return len(r.Fields)
}

// String returns the comma-joined path.
func (r Record) String() string {
	return r.Line
}

// IsWord reports whether s is exactly five lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
