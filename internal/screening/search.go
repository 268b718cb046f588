package screening

import (
	"context"
	"io"
)

// Stats summarizes one pass over a document.
type Stats struct {
	Entries     int          // fragments assembled
	Individuals int          // fragments that reached the matcher
	Rules       map[Rule]int // matches by deciding rule
}

// Search streams r once and returns every individual matching q, in document
// order. Any stream or parse failure aborts the search and no results are
// returned.
func Search(ctx context.Context, r io.Reader, q Query) ([]SdnRecord, error) {
	matches, _, err := SearchWithStats(ctx, r, q)
	return matches, err
}

// SearchWithStats is Search, also reporting what the pass saw. A query without
// an id or a name cannot match anything and returns without reading r.
func SearchWithStats(ctx context.Context, r io.Reader, q Query) ([]SdnRecord, Stats, error) {
	stats := Stats{Rules: make(map[Rule]int)}
	q = q.Normalized()
	if q.IsEmpty() {
		return []SdnRecord{}, stats, nil
	}

	matches := []SdnRecord{}
	a := NewAssembler(r)
	for a.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, stats, &StreamError{Line: a.Line(), Err: err}
		}
		stats.Entries++

		rec, ok, err := Normalize(a.Entry())
		if err != nil {
			if pe, isParse := err.(*ParseError); isParse {
				pe.Entry = stats.Entries
			}
			return nil, stats, err
		}
		if !ok {
			continue
		}
		stats.Individuals++

		if rule, matched := Match(rec, q); matched {
			stats.Rules[rule]++
			matches = append(matches, rec)
		}
	}
	if err := a.Err(); err != nil {
		return nil, stats, err
	}
	return matches, stats, nil
}
