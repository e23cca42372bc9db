package search

// odometer walks the Cartesian product of the word lists of the chain
// entries, little-endian: slot 0 advances fastest.
type odometer struct {
	entries []subsetEntry
	chain   []int
	pos     []int
}

func newOdometer(entries []subsetEntry, chain []int) *odometer {
	return &odometer{
		entries: entries,
		chain:   chain,
		pos:     make([]int, len(chain)),
	}
}

// row copies out the current word combination, one slot per chain
// position.
func (o *odometer) row() [][]byte {
	words := make([][]byte, len(o.chain))
	for i, entry := range o.chain {
		words[i] = o.entries[entry].words[o.pos[i]]
	}
	return words
}

// advance moves to the next combination and reports whether one exists.
func (o *odometer) advance() bool {
	for i := range o.pos {
		o.pos[i]++
		if o.pos[i] < len(o.entries[o.chain[i]].words) {
			return true
		}
		o.pos[i] = 0
	}
	return false
}
