package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteRange(t *testing.T) {
	test := func(input string, start, count int, want string, wantChanged bool) func(*testing.T) {
		return func(t *testing.T) {
			got, changed := deleteRange([]byte(input), start, count)
			assert.Equal(t, want, string(got))
			assert.Equal(t, wantChanged, changed)
		}
	}

	t.Run("", test("hello", 1, 2, "hlo", true))
	t.Run("", test("hello", 0, 5, "", true))
	t.Run("", test("hello", 4, 10, "hell", true))
	t.Run("", test("hello", 10, 3, "hello", false))
	t.Run("", test("hello", 2, 0, "hello", false))
	t.Run("", test("", 0, 1, "", false))
}

func TestInsertByte(t *testing.T) {
	s, ok := insertByte([]byte("ct"), 1, 'a')
	assert.True(t, ok)
	assert.Equal(t, "cat", string(s))

	s, ok = insertByte([]byte(""), 0, 'x')
	assert.True(t, ok)
	assert.Equal(t, "x", string(s))

	full := make([]byte, maxFieldSize)
	_, ok = insertByte(full, 0, 'x')
	assert.False(t, ok)
}

func TestWordBoundaries(t *testing.T) {
	s := []byte("one  two three")

	prev := func(start int) int { return prevWordBoundary(s, start) }
	next := func(start int) int { return nextWordBoundary(s, start) }

	assert.Equal(t, 0, prev(0))
	assert.Equal(t, 0, prev(3))
	// From the start of a word, skip back over the space run to the
	// previous word start.
	assert.Equal(t, 0, prev(5))
	assert.Equal(t, 5, prev(8))
	assert.Equal(t, 9, prev(14))

	assert.Equal(t, 3, next(0))
	assert.Equal(t, 8, next(3))
	assert.Equal(t, 8, next(5))
	assert.Equal(t, 14, next(9))
	assert.Equal(t, 14, next(14))
}

func TestWordBoundsAround(t *testing.T) {
	test := func(input string, around, wantStart, wantEnd int) func(*testing.T) {
		return func(t *testing.T) {
			start, end := wordBoundsAround([]byte(input), around)
			assert.Equal(t, wantStart, start)
			assert.Equal(t, wantEnd, end)
		}
	}

	// Deleting a middle or trailing word swallows the spaces to its left.
	t.Run("", test("one two three", 5, 3, 7))
	t.Run("", test("one two three", 9, 7, 13))
	// Deleting the first word swallows the spaces to its right instead.
	t.Run("", test("one two three", 1, 0, 4))
	t.Run("", test("one   two", 1, 0, 6))
	t.Run("", test("solo", 2, 0, 4))
}
