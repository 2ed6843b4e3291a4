package prompt

import (
	"context"
	"strings"
)

// Source provides the candidate options for a search prompt. Exactly one
// fetch is outstanding at a time: the engine blocks on Fetch before it
// reads another key, so a slow provider stalls the prompt rather than
// racing a later query.
type Source interface {
	Fetch(ctx context.Context, query string) ([]string, error)
}

// Static is a fixed in-memory option list filtered by case-insensitive
// substring match. Filtering is deterministic: the same query against the
// same list always yields the same ordered results.
type Static struct {
	Options []string

	// MinQuery is the shortest query worth filtering for. Shorter
	// non-empty queries yield no matches rather than an error.
	MinQuery int

	// MaxResults caps the result list. 0 means unlimited.
	MaxResults int
}

// Fetch filters the static list. It never fails.
func (s Static) Fetch(_ context.Context, query string) ([]string, error) {
	if s.MinQuery > 0 && len(query) < s.MinQuery {
		return nil, nil
	}
	q := strings.ToLower(query)
	var matches []string
	for _, opt := range s.Options {
		if strings.Contains(strings.ToLower(opt), q) {
			matches = append(matches, opt)
			if s.MaxResults > 0 && len(matches) == s.MaxResults {
				break
			}
		}
	}
	return matches, nil
}

// Dynamic adapts a query function into a Source. Providers backed by a
// network lookup give no determinism or index-stability guarantees across
// calls; the context lets the provider honor caller deadlines, but the
// engine itself never imposes a timeout.
type Dynamic func(ctx context.Context, query string) ([]string, error)

// Fetch invokes the provider.
func (d Dynamic) Fetch(ctx context.Context, query string) ([]string, error) {
	return d(ctx, query)
}
