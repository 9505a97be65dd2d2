package pattern

import "strings"

const wordLength = 5

// Compute returns the feedback of guess against secret.
//
// Greens are resolved before yellows so a letter that appears once in the
// secret is credited to its correctly placed occurrence first. A secret or
// guess that is not five bytes long yields Invalid.
func Compute(guess, secret string) Pattern {
	if len(secret) != wordLength || len(guess) != wordLength {
		return Invalid
	}

	var remaining [256]int
	for i := 0; i < wordLength; i++ {
		remaining[secret[i]]++
	}

	var out [wordLength]byte
	for i := 0; i < wordLength; i++ {
		out[i] = Grey
		if guess[i] == secret[i] {
			out[i] = Green
			remaining[guess[i]]--
		}
	}

	for i := 0; i < wordLength; i++ {
		if out[i] == Green {
			continue
		}
		if remaining[guess[i]] > 0 {
			out[i] = Yellow
			remaining[guess[i]]--
		}
	}

	return Pattern(out[:])
}

// GuessScorer is a Scorer bound to one opening guess.
type GuessScorer struct {
	guess string
}

// NewScorer creates a Scorer for the given opening guess.
func NewScorer(guess string) *GuessScorer {
	return &GuessScorer{guess: guess}
}

// Guess returns the opening guess.
func (s *GuessScorer) Guess() string {
	return s.guess
}

// Score returns the feedback of the opening guess against secret.
func (s *GuessScorer) Score(secret string) Pattern {
	return Compute(s.guess, secret)
}

// Greens counts the green symbols in p.
func (p Pattern) Greens() int {
	return strings.Count(string(p), string(Green))
}

// Yellows counts the yellow symbols in p.
func (p Pattern) Yellows() int {
	return strings.Count(string(p), string(Yellow))
}

// HasGreen reports whether p contains at least one green symbol.
func (p Pattern) HasGreen() bool {
	return p.Greens() > 0
}

func (p Pattern) String() string {
	return string(p)
}

// Valid reports whether s is a well-formed pattern of five symbols.
func Valid(s string) bool {
	if len(s) != wordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case Green, Yellow, Grey:
		default:
			return false
		}
	}
	return true
}
