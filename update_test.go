package typeahead

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testItem implements Item, DisplayItem and DetailItem.
type testItem struct {
	id     string
	label  string
	detail string
}

func (t testItem) ItemID() string      { return t.id }
func (t testItem) DisplayText() string { return t.label }
func (t testItem) Detail() string      { return t.detail }

// fetchLog records every fetch invocation.
type fetchLog struct {
	queries []string
	limits  []int
}

// itemFetch returns the given items for every query and logs calls.
func itemFetch(log *fetchLog, items ...testItem) FetchFunc[testItem] {
	return func(_ context.Context, query string, limit int) ([]testItem, error) {
		if log != nil {
			log.queries = append(log.queries, query)
			log.limits = append(log.limits, limit)
		}
		return items, nil
	}
}

// typeString feeds each rune as a keystroke, discarding scheduled ticks.
func typeString(m Model[testItem], s string) Model[testItem] {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// fire delivers the debounce tick for the current keystroke and returns
// the fetch command, if any.
func fire(m Model[testItem]) (Model[testItem], tea.Cmd) {
	return m.Update(debounceMsg{seq: m.seq})
}

// search types the query and resolves the resulting fetch synchronously.
func search(t *testing.T, m Model[testItem], query string) Model[testItem] {
	t.Helper()
	m = typeString(m, query)
	m, cmd := fire(m)
	require.NotNil(t, cmd, "expected a fetch command for query %q", query)
	m, _ = m.Update(cmd())
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func threeItems() []testItem {
	return []testItem{
		{id: "1", label: "React", detail: "Library"},
		{id: "2", label: "Redis", detail: "Database"},
		{id: "3", label: "Rust", detail: "Language"},
	}
}

func TestDebounceCoalescing(t *testing.T) {
	log := &fetchLog{}
	m := New(Config[testItem]{Fetch: itemFetch(log, threeItems()...)})

	m = typeString(m, "react")

	// The first four keystrokes scheduled ticks that are now stale.
	for stale := m.seq - 4; stale < m.seq; stale++ {
		var cmd tea.Cmd
		m, cmd = m.Update(debounceMsg{seq: stale})
		assert.Nil(t, cmd, "stale tick must not fetch")
	}
	assert.Empty(t, log.queries)
	assert.False(t, m.Loading())

	// Only the last keystroke's tick triggers the fetch.
	m, cmd := fire(m)
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())
	m, _ = m.Update(cmd())

	assert.Equal(t, []string{"react"}, log.queries)
	assert.Equal(t, []int{10}, log.limits)
	assert.True(t, m.Expanded())
}

func TestMinQueryLengthGuard(t *testing.T) {
	log := &fetchLog{}
	m := New(Config[testItem]{
		Fetch:          itemFetch(log, threeItems()...),
		MinQueryLength: 3,
	})

	m = typeString(m, "re")
	m, cmd := fire(m)

	assert.Nil(t, cmd, "below-minimum query must not fetch")
	assert.Empty(t, log.queries)
	assert.False(t, m.Expanded())
	assert.False(t, m.Loading())
	assert.Empty(t, m.Results())
}

func TestEmptyQueryNeverFetches(t *testing.T) {
	log := &fetchLog{}
	m := New(Config[testItem]{Fetch: itemFetch(log, threeItems()...)})

	// Whitespace only.
	m = typeString(m, "   ")
	m, cmd := fire(m)

	assert.Nil(t, cmd)
	assert.Empty(t, log.queries)
	assert.False(t, m.Expanded())
}

func TestStalenessDiscard(t *testing.T) {
	fetch := func(_ context.Context, query string, _ int) ([]testItem, error) {
		return []testItem{{id: query, label: query}}, nil
	}
	m := New(Config[testItem]{Fetch: fetch})

	// Fetch A is issued...
	m = typeString(m, "a")
	m, cmdA := fire(m)
	require.NotNil(t, cmdA)

	// ...then fetch B is issued before A resolves.
	m = typeString(m, "b") // query is now "ab"
	m, cmdB := fire(m)
	require.NotNil(t, cmdB)

	// B resolves first, then A arrives late.
	m, _ = m.Update(cmdB())
	m, _ = m.Update(cmdA())

	require.Len(t, m.Results(), 1)
	assert.Equal(t, "ab", m.Results()[0].id, "late result A must not clobber B")

	// Reversed arrival order: A late result is discarded outright.
	m2 := New(Config[testItem]{Fetch: fetch})
	m2 = typeString(m2, "a")
	m2, cmdA2 := fire(m2)
	require.NotNil(t, cmdA2)
	m2 = typeString(m2, "b")
	m2, cmdB2 := fire(m2)
	require.NotNil(t, cmdB2)

	m2, _ = m2.Update(cmdA2())
	assert.Empty(t, m2.Results(), "superseded result must not be applied")
	m2, _ = m2.Update(cmdB2())
	require.Len(t, m2.Results(), 1)
	assert.Equal(t, "ab", m2.Results()[0].id)
}

func TestHighlightBounds(t *testing.T) {
	m := New(Config[testItem]{Fetch: itemFetch(nil, threeItems()...)})
	m = search(t, m, "r")
	require.True(t, m.Expanded())
	require.Equal(t, -1, m.Highlighted())

	// Down from no-highlight enters the list at 0, then saturates.
	for i, want := range []int{0, 1, 2, 2, 2} {
		m, _ = m.Update(key("down"))
		assert.Equal(t, want, m.Highlighted(), "down press %d", i+1)
	}

	// Up walks back to no-highlight and stays there.
	for i, want := range []int{1, 0, -1, -1} {
		m, _ = m.Update(key("up"))
		assert.Equal(t, want, m.Highlighted(), "up press %d", i+1)
	}
}

func TestEnterCommitsSelection(t *testing.T) {
	var selected []testItem
	m := New(Config[testItem]{
		Fetch:    itemFetch(nil, threeItems()...),
		OnSelect: func(item testItem) { selected = append(selected, item) },
	})
	m = search(t, m, "r")

	// Enter with no highlight is a no-op.
	m, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.True(t, m.Expanded())
	assert.Empty(t, selected)

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	m, cmd = m.Update(key("enter"))

	require.Len(t, selected, 1)
	assert.Equal(t, "2", selected[0].id)
	assert.False(t, m.Expanded())
	assert.Empty(t, m.Results())
	assert.Equal(t, -1, m.Highlighted())
	assert.Equal(t, "2", m.Value(), "selection writes the item id into the input")

	// The selection is also emitted as a message.
	require.NotNil(t, cmd)
	msg, ok := cmd().(SelectedMsg[testItem])
	require.True(t, ok)
	assert.Equal(t, "2", msg.Item.id)

	// Enter while closed is a no-op.
	m, cmd = m.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.Len(t, selected, 1)
}

func TestSelectionTextOverride(t *testing.T) {
	m := New(Config[testItem]{
		Fetch:         itemFetch(nil, threeItems()...),
		SelectionText: func(item testItem) string { return item.label },
	})
	m = search(t, m, "r")
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))

	assert.Equal(t, "React", m.Value())
}

func TestLateResultAfterSelection(t *testing.T) {
	m := New(Config[testItem]{Fetch: itemFetch(nil, threeItems()...)})
	m = typeString(m, "r")
	m, cmd := fire(m)
	require.NotNil(t, cmd)
	late := cmd()

	// Resolve once to open, select, then deliver the same result again
	// as if a duplicate in-flight fetch resolved late.
	m, _ = m.Update(late)
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))
	require.False(t, m.Expanded())

	m, _ = m.Update(late)
	assert.False(t, m.Expanded(), "late fetch result must not reopen after selection")
	assert.Empty(t, m.Results())
}

func TestEscapeDismissesAndKeepsQuery(t *testing.T) {
	m := New(Config[testItem]{Fetch: itemFetch(nil, threeItems()...)})
	m = search(t, m, "re")
	m, _ = m.Update(key("down"))

	m, _ = m.Update(key("esc"))

	assert.False(t, m.Expanded())
	assert.Empty(t, m.Results())
	assert.Equal(t, -1, m.Highlighted())
	assert.Equal(t, "re", m.Value(), "escape keeps the query text")
}

func TestClearControl(t *testing.T) {
	m := New(Config[testItem]{Fetch: itemFetch(nil, threeItems()...)})
	m = search(t, m, "re")
	require.True(t, m.Expanded())

	m, _ = m.Update(key("ctrl+u"))

	assert.Equal(t, "", m.Value())
	assert.False(t, m.Expanded())
	assert.Empty(t, m.Results())
	assert.Equal(t, -1, m.Highlighted())
	assert.True(t, m.Focused(), "clear keeps keyboard focus on the input")
}

func TestFetchErrorIsolation(t *testing.T) {
	cause := errors.New("backend exploded")
	var reported []error
	m := New(Config[testItem]{
		Fetch:   func(context.Context, string, int) ([]testItem, error) { return nil, cause },
		OnError: func(err error) { reported = append(reported, err) },
	})

	m = typeString(m, "re")
	m, cmd := fire(m)
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())

	m, _ = m.Update(cmd())

	assert.False(t, m.Loading(), "a failed fetch must not leave loading stuck")
	assert.Empty(t, m.Results())
	assert.False(t, m.Expanded())
	assert.Equal(t, errGeneric, m.ErrorText())
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], cause, "the causal error goes to the callback")
}

func TestErrorClearedByNextSuccess(t *testing.T) {
	fail := true
	m := New(Config[testItem]{
		Fetch: func(_ context.Context, q string, _ int) ([]testItem, error) {
			if fail {
				return nil, errors.New("transient")
			}
			return []testItem{{id: "1", label: q}}, nil
		},
	})

	m = typeString(m, "x")
	m, cmd := fire(m)
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	require.NotEmpty(t, m.ErrorText())

	fail = false
	m = search(t, m, "y")

	assert.Empty(t, m.ErrorText())
	assert.True(t, m.Expanded())
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	m := New(Config[testItem]{
		Fetch: func(context.Context, string, int) ([]testItem, error) { return nil, nil },
	})
	m = search(t, m, "zzz-no-match")

	assert.False(t, m.Expanded())
	assert.Empty(t, m.ErrorText())
	assert.True(t, m.noResults(), "empty result shows the no-results state")
}

func TestResultsResliceToLimit(t *testing.T) {
	items := make([]testItem, 30)
	for i := range items {
		items[i] = testItem{id: string(rune('a' + i))}
	}
	m := New(Config[testItem]{Fetch: itemFetch(nil, items...), MaxResults: 5})
	m = search(t, m, "x")

	assert.Len(t, m.Results(), 5, "engine does not trust the fetch to honor the limit")
}

func TestDisabledIgnoresInput(t *testing.T) {
	m := New(Config[testItem]{Fetch: itemFetch(nil, threeItems()...)})
	m = search(t, m, "re")
	m, _ = m.Update(key("down"))

	m.SetDisabled(true)

	before := m.Value()
	m = typeString(m, "x")
	assert.Equal(t, before, m.Value(), "typing is suppressed while disabled")

	m, _ = m.Update(key("ctrl+u"))
	assert.Equal(t, before, m.Value(), "clear is suppressed while disabled")

	// Existing state is retained, not cleared.
	assert.True(t, m.Expanded())
	assert.Equal(t, 0, m.Highlighted())
}

func TestResetInvalidatesPendingWork(t *testing.T) {
	log := &fetchLog{}
	m := New(Config[testItem]{Fetch: itemFetch(log, threeItems()...)})
	m = typeString(m, "re")
	pending := m.seq

	m.Reset()
	m, cmd := m.Update(debounceMsg{seq: pending})

	assert.Nil(t, cmd, "a tick scheduled before Reset must not fetch")
	assert.Empty(t, log.queries)
	assert.Equal(t, "", m.Value())
}

func TestMouseHoverSharesHighlight(t *testing.T) {
	m := New(Config[testItem]{Fetch: itemFetch(nil, threeItems()...)})
	m = search(t, m, "r")

	// Rows start below the input at y=1 (no label configured).
	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, m.Highlighted())

	// Keyboard picks up where the pointer left off.
	m, _ = m.Update(key("down"))
	assert.Equal(t, 2, m.Highlighted())

	// Motion outside the list leaves the highlight alone.
	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 40, Action: tea.MouseActionMotion})
	assert.Equal(t, 2, m.Highlighted())
}

func TestMouseClickSelects(t *testing.T) {
	var selected []testItem
	m := New(Config[testItem]{
		Fetch:    itemFetch(nil, threeItems()...),
		OnSelect: func(item testItem) { selected = append(selected, item) },
	})
	m = search(t, m, "r")

	m, _ = m.Update(tea.MouseMsg{
		X: 3, Y: 3,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	require.Len(t, selected, 1)
	assert.Equal(t, "3", selected[0].id, "click selects the row under the pointer")
	assert.False(t, m.Expanded())
	assert.Equal(t, "3", m.Value())
}

func TestOutsideClickDismisses(t *testing.T) {
	m := New(Config[testItem]{Fetch: itemFetch(nil, threeItems()...)})
	m = search(t, m, "r")
	require.True(t, m.Expanded())

	// Click on the input row: no transition.
	m, _ = m.Update(tea.MouseMsg{
		X: 3, Y: 0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.True(t, m.Expanded())

	// Click below the widget: dismiss.
	m, _ = m.Update(tea.MouseMsg{
		X: 3, Y: 20,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.False(t, m.Expanded())
	assert.Empty(t, m.Results())
}

func TestOriginOffsetsHitTesting(t *testing.T) {
	m := New(Config[testItem]{Fetch: itemFetch(nil, threeItems()...)})
	m.SetOrigin(10, 5)
	m = search(t, m, "r")

	// Same row-1 click as in the default-origin test, now shifted.
	m, _ = m.Update(tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, m.Highlighted())

	// The unshifted coordinate now misses.
	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, m.Highlighted())
}
