package ports

import (
	"context"

	"ListMender/internal/domain"
)

// ListProvider fetches the user's tracked list from the remote list owner.
// The provider must honor at least 1000 entries per call; pagination beyond
// the limit is out of scope.
type ListProvider interface {
	Fetch(ctx context.Context, listType domain.ListType, owner string, limit int) ([]domain.ListEntry, error)
}

// HistoryProvider fetches the raw progress-event records for one entry:
// loosely formatted text lines, one per event, newest first. Any error means
// the history is unavailable for that entry.
type HistoryProvider interface {
	Fetch(ctx context.Context, entryID int64, listType domain.ListType) ([]string, error)
}

// UpdateSubmitter sends a partial date update for one entry and reports the
// provider's status code. Only fields present in the patch are transmitted.
type UpdateSubmitter interface {
	Submit(ctx context.Context, entryID int64, listType domain.ListType, patch domain.DatePatch) (int, error)
}

// DecisionSource supplies the external decisions the review session blocks
// on: one action per surfaced proposal and one acknowledgment per flagged
// entry. Implementations decide how long that takes; the session waits.
type DecisionSource interface {
	NextAction(ctx context.Context) (domain.ReviewAction, error)
	Acknowledge(ctx context.Context) error
}

// ReviewPresenter renders the review session for whoever is deciding. It is
// pure presentation: it never blocks the session and never decides anything.
type ReviewPresenter interface {
	ShowEntry(index, total int, entry domain.ListEntry)
	ShowHistory(listType domain.ListType, history domain.History)
	ShowProposal(listType domain.ListType, proposal domain.Proposal)
	ShowFlag(flag domain.Flag)
	ShowSkipped(reason domain.SkipReason)
	ShowApplied(patch domain.DatePatch, statusCode int)
	ShowSummary(summary domain.SessionSummary)
}
