package dict

import "strings"

// Bag is a letter multiset over 'a'..'z', one signed count per letter.
// Counts are signed on purpose: include validation subtracts the include
// bag from the input bag and reads the negative components back out as the
// per-letter deficit.
type Bag [26]int8

// maxCount bounds a single letter count. A bag summing 127 letters is far
// beyond any word list entry; hitting the bound means corrupt input made it
// past validation.
const maxCount = 127

// WordBag sums the lowercased ASCII letters of word. Every other byte is
// ignored.
func WordBag(word []byte) Bag {
	var b Bag
	for _, c := range word {
		if c >= 'a' && c <= 'z' {
			b.inc(int(c - 'a'))
		} else if c >= 'A' && c <= 'Z' {
			b.inc(int(c - 'A'))
		}
	}
	return b
}

// StringBag is WordBag for a string, without copying.
func StringBag(s string) Bag {
	var b Bag
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			b.inc(int(c - 'a'))
		} else if c >= 'A' && c <= 'Z' {
			b.inc(int(c - 'A'))
		}
	}
	return b
}

func (b *Bag) inc(i int) {
	if b[i] >= maxCount {
		panic("dict: letter count overflow")
	}
	b[i]++
}

// Empty reports whether every count is zero.
func (b Bag) Empty() bool {
	return b == Bag{}
}

// Positive reports whether no count is negative and at least one is
// positive.
func (b Bag) Positive() bool {
	positive := false
	for _, c := range b {
		if c < 0 {
			return false
		}
		positive = positive || c > 0
	}
	return positive
}

// Underflowed reports whether any count is negative.
func (b Bag) Underflowed() bool {
	for _, c := range b {
		if c < 0 {
			return true
		}
	}
	return false
}

// Contains reports whether b covers o component-wise.
func (b Bag) Contains(o Bag) bool {
	for i, c := range b {
		if c < o[i] {
			return false
		}
	}
	return true
}

// Add adds o into b. Exceeding the per-letter bound is a programmer error.
func (b *Bag) Add(o Bag) {
	for i := range b {
		sum := int(b[i]) + int(o[i])
		if sum > maxCount {
			panic("dict: letter count overflow")
		}
		b[i] = int8(sum)
	}
}

// Subtract removes o from b and reports whether no count went below zero.
// The subtraction is always carried out so the caller can inspect the
// underflowed components afterwards.
func (b *Bag) Subtract(o Bag) bool {
	negative := false
	for i := range b {
		b[i] -= o[i]
		negative = negative || b[i] < 0
	}
	return !negative
}

// Sum returns the arithmetic sum of all counts.
func (b Bag) Sum() int {
	sum := 0
	for _, c := range b {
		sum += int(c)
	}
	return sum
}

// ClampNegative floors each count to zero.
func (b *Bag) ClampNegative() {
	for i, c := range b {
		if c < 0 {
			b[i] = 0
		}
	}
}

// Hash folds the counts into a rolling polynomial seeded at 1.
func (b Bag) Hash() uint32 {
	h := uint32(1)
	for _, c := range b {
		h = 107*h + uint32(int32(c))
	}
	return h
}

// String spells the bag out letter by letter, in alphabetical order.
// Negative counts are skipped.
func (b Bag) String() string {
	var sb strings.Builder
	for i, c := range b {
		for j := int8(0); j < c; j++ {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}
