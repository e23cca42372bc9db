package search

import (
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	"github.com/doublescale/anagrind/dict"
)

// NoLimit lets a driver enumerate every solution.
const NoLimit = -1

// Context is one incremental anagram search. Begin sets it up, Advance runs
// a bounded number of steps, and the caller reads Results between calls.
// A Context is single-goroutine; the UI drives it from its frame loop.
type Context struct {
	log     logrus.FieldLogger
	enum    *enumerator
	results *Results
	short   *Shortfall
	limit   int
	steps   uint64
	done    bool
}

// Begin sets up a search over idx. If the include cannot be satisfied by
// the input the context is born done, with the shortfall descriptor and its
// suggestions already computed.
//
// limit caps the number of results (NoLimit for all of them).
func Begin(idx *dict.Index, q Query, limit int) *Context {
	id, _ := uuid.NewV4()
	log := logrus.WithFields(logrus.Fields{
		"query": id,
		"input": q.Input,
	})

	c := begin(idx, q, limit, log)
	if c.short != nil {
		log.WithField("missing", c.short.Missing.String()).Debug("include shortfall")
	} else {
		log.Debug("search started")
	}
	return c
}

func begin(idx *dict.Index, q Query, limit int, log logrus.FieldLogger) *Context {
	c := &Context{
		log:     log,
		results: &Results{},
		limit:   limit,
	}

	inputBag := dict.StringBag(q.Input)
	includeBag := dict.StringBag(q.Include)

	remaining := inputBag
	if !remaining.Subtract(includeBag) {
		missing := shortfallOf(inputBag, includeBag)
		suggestions := begin(idx, Query{Input: missing.String()}, suggestionLimit, log)
		suggestions.Run()
		c.short = &Shortfall{Missing: missing, Suggestions: suggestions.Results()}
		c.done = true
		return c
	}

	if !includeBag.Empty() && remaining.Empty() {
		// The include alone is the solution.
		c.results.append(nil)
		c.done = true
		return c
	}

	entries := buildSubsets(idx, remaining, q.ExcludeWords())
	chainMax := inputBag.Sum()
	if chainMax < 1 {
		chainMax = 1
	}
	c.enum = newEnumerator(entries, remaining, chainMax)
	c.done = c.enum.done()
	c.results.notDone = !c.done
	return c
}

// Advance runs up to budget steps. A step is one extend attempt, one
// backtrack, or one emitted result row.
func (c *Context) Advance(budget int) {
	if c.done {
		return
	}
	for i := 0; i < budget; i++ {
		if c.enum.done() || c.limitReached() {
			break
		}
		c.enum.step(c.results.append)
		c.steps++
	}
	if c.enum.done() || c.limitReached() {
		c.done = true
		c.results.notDone = false
		c.log.WithFields(logrus.Fields{
			"results": c.results.Count(),
			"steps":   c.steps,
		}).Debug("search finished")
	}
}

func (c *Context) limitReached() bool {
	return c.limit >= 0 && c.results.Count() >= c.limit
}

// Run advances until the search is done.
func (c *Context) Run() {
	for !c.done {
		c.Advance(1 << 20)
	}
}

// Done reports whether no further results will be produced.
func (c *Context) Done() bool {
	return c.done
}

// Results returns the result store. It is owned by the context; the caller
// reads it only between Advance calls.
func (c *Context) Results() *Results {
	return c.results
}

// Shortfall returns the shortfall descriptor, or nil if the include fits
// the input.
func (c *Context) Shortfall() *Shortfall {
	return c.short
}

// Steps returns the number of state machine steps executed so far.
func (c *Context) Steps() uint64 {
	return c.steps
}

// Close abandons the search. Partial results are discarded with it; the
// context must not be advanced afterwards.
func (c *Context) Close() {
	if !c.done {
		c.log.WithField("results", c.results.Count()).Debug("search abandoned")
	}
	c.enum = nil
	c.results = &Results{}
	c.done = true
}
