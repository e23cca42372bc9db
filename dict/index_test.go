package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(class *Class) []string {
	if class == nil {
		return nil
	}
	var out []string
	for _, w := range class.Words {
		out = append(out, string(w))
	}
	return out
}

func TestBuild(t *testing.T) {
	idx := Build([]byte("listen\nsilent\ncat\nact\ntinsel\n"), BuildOptions{})

	require.Equal(t, 5, idx.Words())
	require.Len(t, idx.Classes(), 2)

	// Within a class, the newest insertion comes first.
	assert.Equal(t, []string{"tinsel", "silent", "listen"}, words(idx.Lookup(StringBag("listen"))))
	assert.Equal(t, []string{"act", "cat"}, words(idx.Lookup(StringBag("cat"))))
	assert.Nil(t, idx.Lookup(StringBag("dog")))

	// Classes traverse in first-insertion order.
	assert.Equal(t, StringBag("listen"), idx.Classes()[0].Key)
	assert.Equal(t, StringBag("cat"), idx.Classes()[1].Key)
}

func TestBuildSeparators(t *testing.T) {
	// Any run of LF/CR/VT/FF terminates a word.
	idx := Build([]byte("one\r\ntwo\vthree\ffour\r\r\nfive"), BuildOptions{})
	assert.Equal(t, 5, idx.Words())
	assert.NotNil(t, idx.Lookup(StringBag("three")))
	assert.NotNil(t, idx.Lookup(StringBag("five")))
}

func TestBuildRejections(t *testing.T) {
	test := func(input string, opts BuildOptions, wantWords int) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, wantWords, Build([]byte(input), opts).Words())
		}
	}

	t.Run("uppercase skipped", test("cat\nDog\nbird\n", BuildOptions{}, 2))
	t.Run("uppercase accepted", test("cat\nDog\nbird\n", BuildOptions{AllowUpper: true}, 3))
	t.Run("non-ascii skipped", test("caf\xc3\xa9\ncat\n", BuildOptions{}, 1))
	t.Run("non-ascii skipped even with upper", test("caf\xc3\xa9\ncat\n", BuildOptions{AllowUpper: true}, 1))
	t.Run("letterless dropped", test("123\n...\ncat\n", BuildOptions{}, 1))
	t.Run("blank lines dropped", test("\n\n\ncat\n\n", BuildOptions{}, 1))
	t.Run("empty buffer", test("", BuildOptions{}, 0))
}

func TestBuildCasePreserved(t *testing.T) {
	idx := Build([]byte("Cat\nact\n"), BuildOptions{AllowUpper: true})
	assert.Equal(t, []string{"act", "Cat"}, words(idx.Lookup(StringBag("cat"))))
}

func TestBuildDedupe(t *testing.T) {
	idx := Build([]byte("cat\nact\ncat\n"), BuildOptions{})
	assert.Equal(t, 2, idx.Words())
	assert.Equal(t, []string{"act", "cat"}, words(idx.Lookup(StringBag("cat"))))
}

func TestBuildWordsWithNonLetters(t *testing.T) {
	// Punctuation does not invalidate a word, it only drops out of the key.
	idx := Build([]byte("it's\n"), BuildOptions{})
	assert.Equal(t, []string{"it's"}, words(idx.Lookup(StringBag("tis"))))
}

func TestGroups(t *testing.T) {
	idx := Build([]byte("listen\nsilent\ntinsel\ncat\nact\ndog\n"), BuildOptions{})

	groups := idx.Groups(2)
	require.Len(t, groups, 2)
	assert.Equal(t, StringBag("listen"), groups[0].Key)
	assert.Equal(t, StringBag("cat"), groups[1].Key)

	assert.Len(t, idx.Groups(3), 1)
	assert.Len(t, idx.Groups(4), 0)

	// Ties keep traversal order.
	idx = Build([]byte("cat\nact\nnet\nten\n"), BuildOptions{})
	groups = idx.Groups(2)
	require.Len(t, groups, 2)
	assert.Equal(t, StringBag("cat"), groups[0].Key)
	assert.Equal(t, StringBag("net"), groups[1].Key)
}
