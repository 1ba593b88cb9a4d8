package typeahead

import "time"

const (
	defaultMaxResults  = 10
	maxMaxResults      = 100
	defaultDebounce    = 300 * time.Millisecond
	defaultMinQueryLen = 1
	defaultPlaceholder = "Search..."
)

// Immediate disables the debounce quiet period. The fetch still runs
// asynchronously on the next scheduling tick, never synchronously.
const Immediate = time.Duration(-1)

// Config describes a typeahead widget. The zero value is usable; New
// fills in defaults and silently clamps out-of-range values rather than
// rejecting them.
type Config[T Item] struct {
	// Fetch retrieves candidates for a query. With a nil Fetch the
	// widget accepts input but never opens.
	Fetch FetchFunc[T]

	// Renderer draws one result line. Defaults to DefaultRenderer.
	Renderer ItemRenderer[T]

	// OnSelect is invoked with the chosen item when a selection is
	// committed (Enter or mouse click). Optional. Called from the
	// update loop; it must not block.
	OnSelect func(T)

	// OnError receives the causal error when a fetch fails. The widget
	// itself only shows a generic message. Optional.
	OnError func(error)

	// SelectionText produces the text written into the input after a
	// selection. Defaults to the item's ItemID.
	SelectionText func(T) string

	// Placeholder is shown in the empty input. Defaults to "Search...".
	Placeholder string

	// Label is an accessible label rendered above the input and
	// included in StatusLine output.
	Label string

	// Disabled suppresses all interaction without clearing state.
	Disabled bool

	// MaxResults caps the result set. Default 10, clamped to [1,100].
	MaxResults int

	// DebounceDelay is the quiet period between the last keystroke and
	// the fetch. Zero means the default of 300ms; use Immediate for no
	// quiet period. Negative values behave like Immediate.
	DebounceDelay time.Duration

	// MinQueryLength is the minimum trimmed query length that triggers
	// a fetch. Shorter queries clear the results locally without
	// fetching. Zero means the default of 1.
	MinQueryLength int
}

// normalize applies defaults and clamps invalid values in place.
func (c *Config[T]) normalize() {
	if c.Renderer == nil {
		c.Renderer = DefaultRenderer[T]
	}
	if c.SelectionText == nil {
		c.SelectionText = func(item T) string { return item.ItemID() }
	}
	if c.Placeholder == "" {
		c.Placeholder = defaultPlaceholder
	}
	switch {
	case c.MaxResults <= 0:
		c.MaxResults = defaultMaxResults
	case c.MaxResults > maxMaxResults:
		c.MaxResults = maxMaxResults
	}
	if c.DebounceDelay == 0 {
		c.DebounceDelay = defaultDebounce
	}
	if c.DebounceDelay < 0 {
		c.DebounceDelay = 0
	}
	if c.MinQueryLength <= 0 {
		c.MinQueryLength = defaultMinQueryLen
	}
}
