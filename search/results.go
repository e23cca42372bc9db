package search

// Result is one found word sequence. The zero-length sequence is valid: it
// means the include alone already exhausts the input.
type Result struct {
	Words [][]byte
}

// Results is the append-only store a driver emits into. The caller may read
// it between Advance calls; NotDone reports whether the search may still
// produce more rows.
type Results struct {
	rows    []Result
	notDone bool
}

// Count returns the number of stored results.
func (r *Results) Count() int {
	return len(r.rows)
}

// NotDone reports whether the producing driver has work left.
func (r *Results) NotDone() bool {
	return r.notDone
}

// At returns result i. Results are appended in strict enumeration order and
// never mutated.
func (r *Results) At(i int) Result {
	return r.rows[i]
}

// All returns the stored results, in enumeration order. The slice is
// shared; callers must not modify it.
func (r *Results) All() []Result {
	return r.rows
}

func (r *Results) append(words [][]byte) {
	r.rows = append(r.rows, Result{Words: words})
}
