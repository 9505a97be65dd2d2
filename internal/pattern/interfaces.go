// Package pattern computes Wordle feedback patterns for an opening guess.
package pattern

// Symbols used in a feedback pattern.
const (
	Green  byte = 'g'
	Yellow byte = 'y'
	Grey   byte = '_'
)

// Invalid is the all-grey sentinel returned for secrets that cannot be scored.
const Invalid Pattern = "_____"

// Pattern is the five-symbol feedback of a guess against a secret, e.g. "g_y__".
type Pattern string

// Scorer scores secrets against a fixed opening guess.
type Scorer interface {
	// Guess returns the opening guess secrets are scored against.
	Guess() string
	// Score returns the feedback pattern of the opening guess against secret.
	Score(secret string) Pattern
}
