package typeahead

// SelectedMsg is emitted as a command when the user commits a
// selection, for hosts that prefer message routing over the OnSelect
// callback. Both fire.
type SelectedMsg[T Item] struct {
	Item T
}

// debounceMsg fires after the quiet period following a keystroke. Ticks
// whose seq no longer matches the model are ignored.
type debounceMsg struct {
	seq int
}

// fetchResultMsg delivers the outcome of one fetch. Results whose seq
// no longer matches the model are stale and discarded.
type fetchResultMsg[T Item] struct {
	seq   int
	items []T
	err   error
}
