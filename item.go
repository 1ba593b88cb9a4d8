// Package typeahead provides a search-as-you-type input widget for
// Bubble Tea programs. The widget debounces keystrokes, retrieves
// candidate results through a pluggable fetch function and renders
// them through a pluggable per-item renderer, with keyboard and mouse
// selection.
package typeahead

import "context"

// Item is the minimal contract a candidate result must satisfy.
type Item interface {
	// ItemID returns a stable identifier, unique within one result set.
	// It is used as the default text written into the input on selection.
	ItemID() string
}

// DisplayItem is an optional interface for items that carry display
// text distinct from their identifier. The default renderer prefers it.
type DisplayItem interface {
	Item
	// DisplayText returns the primary text to show for the item.
	DisplayText() string
}

// DetailItem is an optional interface for items with secondary text
// (category, description). Rendered dimmed and right-aligned by the
// default renderer.
type DetailItem interface {
	Item
	// Detail returns secondary display text, or "" for none.
	Detail() string
}

// FetchFunc retrieves candidate results for a query. The widget treats
// it as opaque: it may hit memory, disk or the network. It is called
// off the update loop, at most once per quiet period, and results of
// superseded calls are discarded without being applied. limit is the
// widget's clamped maximum result count.
type FetchFunc[T Item] func(ctx context.Context, query string, limit int) ([]T, error)

// ItemRenderer converts one item plus its interaction state into a
// single rendered line. It must be a pure mapping: state changes flow
// through the widget's own key and mouse handling, never through the
// renderer. width is the space available for the line, prefix included.
type ItemRenderer[T Item] func(item T, highlighted bool, width int) string
