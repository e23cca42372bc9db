package dict

import "bytes"

// Class groups every dictionary word sharing one Bag. Words holds the exact
// source spellings, newest insertion first.
type Class struct {
	Key   Bag
	Words [][]byte
}

// Index maps each anagram equivalence class of the dictionary to its words.
// It is built once and read-only afterwards. Beside the lookup map it keeps
// the classes in first-insertion order so that traversal is deterministic
// for a fixed dictionary.
type Index struct {
	byKey   map[Bag]*Class
	classes []*Class
	words   int
}

// BuildOptions configures the index scan.
type BuildOptions struct {
	// AllowUpper accepts words containing uppercase ASCII letters. By
	// default such words are skipped.
	AllowUpper bool
}

// expectedClasses sizes the lookup table for a typical 200k-500k word list.
const expectedClasses = 128 * 1024

// Build scans a word list buffer, one word per line, and indexes it. Lines
// are terminated by any run of LF/CR/VT/FF. Words containing a non-ASCII
// byte are skipped, as are words containing uppercase letters unless
// opts.AllowUpper is set. Words without any letters are dropped.
func Build(data []byte, opts BuildOptions) *Index {
	idx := &Index{byKey: make(map[Bag]*Class, expectedClasses)}

	wordStart := 0
	wordValid := true
	for cursor := 0; cursor <= len(data); cursor++ {
		if cursor == len(data) || isLinebreak(data[cursor]) {
			if wordValid {
				word := data[wordStart:cursor]
				bag := WordBag(word)
				if bag.Sum() > 0 {
					idx.add(word, bag)
				}
			}
			wordValid = true
			wordStart = cursor + 1
		} else if data[cursor] >= 0x80 || (!opts.AllowUpper && isUpper(data[cursor])) {
			wordValid = false
		}
	}

	return idx
}

func isLinebreak(c byte) bool {
	return c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func (idx *Index) add(word []byte, bag Bag) {
	class, ok := idx.byKey[bag]
	if !ok {
		class = &Class{Key: bag, Words: [][]byte{word}}
		idx.byKey[bag] = class
		idx.classes = append(idx.classes, class)
		idx.words++
		return
	}

	// The same word may appear more than once in a word list; keep only
	// the first occurrence.
	for _, w := range class.Words {
		if bytes.Equal(w, word) {
			return
		}
	}

	class.Words = append(class.Words, nil)
	copy(class.Words[1:], class.Words)
	class.Words[0] = word
	idx.words++
}

// Lookup returns the class for key, or nil.
func (idx *Index) Lookup(key Bag) *Class {
	return idx.byKey[key]
}

// Classes returns all classes in first-insertion order. The returned slice
// is shared; callers must not modify it.
func (idx *Index) Classes() []*Class {
	return idx.classes
}

// Words returns the number of indexed words.
func (idx *Index) Words() int {
	return idx.words
}
