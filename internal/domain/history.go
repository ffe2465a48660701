package domain

// ProgressEvent is one logged episode/chapter update. Immutable once parsed.
type ProgressEvent struct {
	Count      int
	OccurredOn Date
	OccurredAt string // HH:MM, kept for display and audit only
}

// History is the sequence of progress events for one entry, in the order the
// history provider delivered it (newest first). A non-empty history is
// required for inference; an empty history is a valid terminal state
// signaling "cannot infer".
type History []ProgressEvent

// Empty reports whether no progress events were recorded.
func (h History) Empty() bool {
	return len(h) == 0
}
