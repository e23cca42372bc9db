package anagrind

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doublescale/anagrind/dict"
	"github.com/doublescale/anagrind/search"
)

func testIndex(words ...string) *dict.Index {
	return dict.Build([]byte(strings.Join(words, "\n")), dict.BuildOptions{})
}

func TestWriteResults(t *testing.T) {
	idx := testIndex("listen", "silent", "tinsel", "cat", "act", "tac", "s")

	var sb strings.Builder
	ctx := Find(idx, search.Query{Input: "cat"}, search.NoLimit)
	require.NoError(t, WriteResults(&sb, ctx, ""))
	assert.Equal(t, "  tac\n  act\n  cat\n", sb.String())

	sb.Reset()
	ctx = Find(idx, search.Query{Input: "cats", Include: "cat"}, search.NoLimit)
	require.NoError(t, WriteResults(&sb, ctx, "cat"))
	assert.Equal(t, "  cat s\n", sb.String())
}

func TestWriteResultsIncludeAlone(t *testing.T) {
	idx := testIndex("cat")

	var sb strings.Builder
	ctx := Find(idx, search.Query{Input: "tca", Include: "Tac"}, search.NoLimit)
	require.NoError(t, WriteResults(&sb, ctx, "Tac"))

	// The include echoes back verbatim, capitalization preserved.
	assert.Equal(t, "  Tac\n", sb.String())
}

func TestWriteResultsShortfall(t *testing.T) {
	idx := testIndex("cat", "act", "tac")

	var sb strings.Builder
	ctx := Find(idx, search.Query{Input: "", Include: "cat"}, search.NoLimit)
	require.NoError(t, WriteResults(&sb, ctx, "cat"))

	out := sb.String()
	assert.Contains(t, out, "Missing 3 letters:\n")
	assert.Contains(t, out, "  1x 'a'\n")
	assert.Contains(t, out, "  1x 'c'\n")
	assert.Contains(t, out, "  1x 't'\n")
	assert.Contains(t, out, "Possible additions:\n")
	assert.Contains(t, out, "  tac\n")
}

func TestWriteResultsEmpty(t *testing.T) {
	idx := testIndex("cat")

	var sb strings.Builder
	ctx := Find(idx, search.Query{Input: "xyz"}, search.NoLimit)
	require.NoError(t, WriteResults(&sb, ctx, ""))
	assert.Equal(t, "", sb.String())
}

func TestLoadIndex(t *testing.T) {
	log := logrus.New()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\nact\n"), 0o644))

	idx, err := LoadIndex(path, dict.BuildOptions{}, log)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Words())

	// Unreadable lists still yield a usable (empty) index.
	idx, err = LoadIndex(filepath.Join(t.TempDir(), "missing.txt"), dict.BuildOptions{}, log)
	var dre DictReadError
	require.ErrorAs(t, err, &dre)
	assert.Equal(t, 0, idx.Words())
}
