// Package mockdata provides a static in-memory search service used by
// the demo applications and as the widget's default data source. It
// simulates the latency of a real backend.
package mockdata

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/llehouerou/typeahead"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	// Simulated backend latency.
	latency = 100 * time.Millisecond
)

// safeID is the allowlist for item identifiers in the lookup path.
// Anything else is treated as "not found", never as an error.
var safeID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// SearchItem is the concrete result shape served by this package.
type SearchItem struct {
	ID          string
	Label       string
	Value       string
	Category    string
	Description string
}

// ItemID implements typeahead.Item.
func (s SearchItem) ItemID() string { return s.ID }

// DisplayText implements typeahead.DisplayItem.
func (s SearchItem) DisplayText() string { return s.Label }

// Detail implements typeahead.DetailItem.
func (s SearchItem) Detail() string { return s.Category }

// SearchItems returns case-insensitive substring matches over label,
// value, category and description. An empty or whitespace query
// returns an empty list. limit defaults to 10 when non-positive and is
// clamped to 100.
func SearchItems(ctx context.Context, query string, limit int) ([]SearchItem, error) {
	if err := sleep(ctx); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}

	matches := match(query)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// GetItemByID returns the item with the given id, or nil if the id is
// malformed or unknown.
func GetItemByID(ctx context.Context, id string) (*SearchItem, error) {
	if err := sleep(ctx); err != nil {
		return nil, err
	}

	if !safeID.MatchString(id) {
		return nil, nil
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// GetCategories returns the distinct category values, sorted.
func GetCategories(ctx context.Context) ([]string, error) {
	if err := sleep(ctx); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Fetch adapts SearchItems to the widget's fetch contract.
func Fetch() typeahead.FetchFunc[SearchItem] {
	return func(ctx context.Context, query string, limit int) ([]SearchItem, error) {
		return SearchItems(ctx, query, limit)
	}
}

// match performs the filtering without latency. Insertion order of the
// dataset is preserved.
func match(query string) []SearchItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []SearchItem
	for _, item := range items {
		if containsFold(item.Label, query) ||
			containsFold(item.Value, query) ||
			containsFold(item.Category, query) ||
			containsFold(item.Description, query) {
			out = append(out, item)
		}
	}
	return out
}

// containsFold reports whether s contains the already-lowercased query.
func containsFold(s, query string) bool {
	return strings.Contains(strings.ToLower(s), query)
}

func sleep(ctx context.Context) error {
	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
