// Package anagrind finds multi-word anagrams: every ordered sequence of
// dictionary words whose letters sum exactly to an input letter bag,
// optionally forced to use an include bag and to avoid an exclude list.
//
// The incremental engine lives in the search subpackage; this package
// offers the one-shot surface used by the batch and REPL modes.
package anagrind

import (
	"fmt"
	"io"

	"github.com/doublescale/anagrind/dict"
	"github.com/doublescale/anagrind/search"
)

// Find answers q over idx, running the search to completion. limit caps
// the number of results; pass search.NoLimit for all of them.
func Find(idx *dict.Index, q search.Query, limit int) *search.Context {
	ctx := search.Begin(idx, q, limit)
	ctx.Run()
	return ctx
}

// WriteResults renders a finished search the way the batch modes print it:
// one indented line per result, each prefixed with the verbatim include
// string. A shortfall renders as the missing-letter report followed by up
// to 20 possible additions.
func WriteResults(w io.Writer, ctx *search.Context, include string) error {
	if short := ctx.Shortfall(); short != nil {
		return writeShortfall(w, short)
	}
	return writeRows(w, ctx.Results(), include)
}

func writeRows(w io.Writer, results *search.Results, include string) error {
	for _, r := range results.All() {
		if _, err := fmt.Fprint(w, " "); err != nil {
			return err
		}
		if include != "" {
			if _, err := fmt.Fprintf(w, " %s", include); err != nil {
				return err
			}
		}
		for _, word := range r.Words {
			if _, err := fmt.Fprintf(w, " %s", word); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeShortfall(w io.Writer, short *search.Shortfall) error {
	if _, err := fmt.Fprintf(w, "Missing %d letters:\n", short.MissingCount()); err != nil {
		return err
	}
	for i, count := range short.Missing {
		if count != 0 {
			if _, err := fmt.Fprintf(w, "  %dx '%c'\n", count, 'a'+i); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(w, "\nPossible additions:\n"); err != nil {
		return err
	}
	return writeRows(w, short.Suggestions, "")
}
