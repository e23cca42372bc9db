package anagrind

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/doublescale/anagrind/dict"
)

// LoadIndex reads the word list at path and builds the dictionary index.
// A read failure returns an empty index together with a DictReadError so
// the caller can still run (and find nothing) or bail out, as it prefers.
func LoadIndex(path string, opts dict.BuildOptions, log logrus.FieldLogger) (*dict.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dict.Build(nil, opts), DictReadError{Path: path, Wrapped: err}
	}

	idx := dict.Build(data, opts)
	log.WithFields(logrus.Fields{
		"path":    path,
		"words":   idx.Words(),
		"classes": len(idx.Classes()),
	}).Debug("word list indexed")
	return idx, nil
}
