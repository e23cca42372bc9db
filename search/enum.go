package search

import "github.com/doublescale/anagrind/dict"

// enumerator finds every ordered sequence of subset entries whose keys sum
// to the target bag. It is an explicit state machine so the caller can run
// it one bounded step at a time; a step is one extend attempt, one
// backtrack, or one emitted expansion row.
//
// The entry list is ordered by key sum, descending, and next always points
// at the last-chosen entry, so chains come out non-increasing by sum and
// every multiset of entries is enumerated exactly once. Because next points
// at (not past) the last choice, the same entry may repeat within a chain.
type enumerator struct {
	entries   []subsetEntry
	remaining dict.Bag
	chainMax  int
	chain     []int
	next      int

	expansion *odometer
	backtrack bool
	finished  bool
}

func newEnumerator(entries []subsetEntry, target dict.Bag, chainMax int) *enumerator {
	e := &enumerator{
		entries:   entries,
		remaining: target,
		chainMax:  chainMax,
	}
	if len(entries) == 0 {
		e.finished = true
		return e
	}
	e.push(0)
	return e
}

func (e *enumerator) done() bool {
	return e.finished
}

func (e *enumerator) push(i int) {
	if len(e.chain) >= e.chainMax {
		panic("search: chain overflow")
	}
	e.chain = append(e.chain, i)
	e.remaining.Subtract(e.entries[i].key)
	e.next = i
	if e.remaining.Empty() {
		e.expansion = newOdometer(e.entries, e.chain)
	}
}

// step performs one unit of work, handing completed rows to emit.
func (e *enumerator) step(emit func(words [][]byte)) {
	switch {
	case e.finished:

	case e.expansion != nil:
		emit(e.expansion.row())
		if !e.expansion.advance() {
			e.expansion = nil
			e.backtrack = true
		}

	case e.backtrack:
		last := e.chain[len(e.chain)-1]
		e.chain = e.chain[:len(e.chain)-1]
		e.remaining.Add(e.entries[last].key)
		e.next = last + 1
		e.backtrack = false

	default:
		// Extend: scan forward for the first entry that still fits.
		for i := e.next; i < len(e.entries); i++ {
			if e.remaining.Contains(e.entries[i].key) {
				e.push(i)
				return
			}
		}
		if len(e.chain) == 0 {
			e.finished = true
		} else {
			e.backtrack = true
		}
	}
}
