package search

import "github.com/doublescale/anagrind/dict"

// suggestionLimit caps the "possible additions" computed for a shortfall.
const suggestionLimit = 20

// Shortfall describes an include that cannot be satisfied by the input:
// Missing holds the positive per-letter deficit, Suggestions up to 20 word
// sequences that would cover exactly the missing letters.
type Shortfall struct {
	Missing     dict.Bag
	Suggestions *Results
}

// MissingCount returns the total number of missing letters.
func (s *Shortfall) MissingCount() int {
	return s.Missing.Sum()
}

// shortfallOf computes the clamped deficit of include over input.
func shortfallOf(input, include dict.Bag) dict.Bag {
	missing := include
	missing.Subtract(input)
	missing.ClampNegative()
	return missing
}
