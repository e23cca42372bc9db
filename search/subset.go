package search

import (
	"sort"

	"github.com/doublescale/anagrind/dict"
)

// subsetEntry is a per-query copy of an equivalence class whose key fits
// the query target, with the exclude set filtered out of the word list.
type subsetEntry struct {
	key   dict.Bag
	sum   int
	words [][]byte
}

// buildSubsets collects every class contained in remaining, drops excluded
// words, and orders the entries by key sum, descending. Entries of equal
// sum keep the index traversal order. Classes whose word list filters down
// to nothing are skipped entirely.
func buildSubsets(idx *dict.Index, remaining dict.Bag, exclude []string) []subsetEntry {
	var entries []subsetEntry
	for _, class := range idx.Classes() {
		if !remaining.Contains(class.Key) {
			continue
		}
		words := filterWords(class.Words, exclude)
		if len(words) == 0 {
			continue
		}
		entries = append(entries, subsetEntry{
			key:   class.Key,
			sum:   class.Key.Sum(),
			words: words,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sum > entries[j].sum
	})
	return entries
}

func filterWords(words [][]byte, exclude []string) [][]byte {
	if len(exclude) == 0 {
		return words
	}
	var kept [][]byte
	for _, w := range words {
		if !excluded(w, exclude) {
			kept = append(kept, w)
		}
	}
	return kept
}

func excluded(word []byte, exclude []string) bool {
	for _, x := range exclude {
		if string(word) == x {
			return true
		}
	}
	return false
}
