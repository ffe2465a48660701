package domain

import "fmt"

// ListType selects which of the user's tracked lists is being reconciled.
type ListType string

const (
	ListAnime ListType = "anime"
	ListManga ListType = "manga"
)

// ParseListType validates a user-supplied list type.
func ParseListType(s string) (ListType, error) {
	switch ListType(s) {
	case ListAnime, ListManga:
		return ListType(s), nil
	}
	return "", fmt.Errorf("invalid list type %q: must be %q or %q", s, ListAnime, ListManga)
}

// Unit is the progress unit word for the list type.
func (t ListType) Unit() string {
	if t == ListManga {
		return "chapter"
	}
	return "episode"
}

// Verb is the past-tense consumption verb for the list type.
func (t ListType) Verb() string {
	if t == ListManga {
		return "read"
	}
	return "watched"
}

// EntryStatus is the completion status a list entry carries on the remote
// list. Only StatusCompleted is significant to the reconciliation policy.
type EntryStatus string

const (
	StatusWatching    EntryStatus = "watching"
	StatusReading     EntryStatus = "reading"
	StatusCompleted   EntryStatus = "completed"
	StatusOnHold      EntryStatus = "on_hold"
	StatusDropped     EntryStatus = "dropped"
	StatusPlanToWatch EntryStatus = "plan_to_watch"
	StatusPlanToRead  EntryStatus = "plan_to_read"
)

// Completed reports whether the entry has been fully watched or read.
func (s EntryStatus) Completed() bool {
	return s == StatusCompleted
}

// ListEntry is one item of a user's tracked list. It is owned by the list
// provider; this system only reads it and proposes a date patch.
type ListEntry struct {
	ID         int64
	Title      string
	Status     EntryStatus
	StartDate  Date
	FinishDate Date
}

// HasBothDates reports whether start and finish are already populated.
func (e ListEntry) HasBothDates() bool {
	return e.StartDate.Present() && e.FinishDate.Present()
}

// DatesInverted reports pre-existing corruption: a start date that sorts
// after the finish date.
func (e ListEntry) DatesInverted() bool {
	return e.StartDate.After(e.FinishDate)
}
