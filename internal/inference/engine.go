package inference

import (
	"errors"
	"fmt"
	"log/slog"

	"ListMender/internal/domain"
)

// ErrEmptyHistory is returned when inference is asked to work without any
// progress events. Callers normally gate on the reconciliation policy first.
var ErrEmptyHistory = errors.New("history is empty")

// IndeterminateFinishError reports that no event with the final progress
// count occurs at or after the inferred start event. This happens when an
// entry is being re-experienced, so the maximum count appears only before
// the earliest count's first occurrence. It carries the start evidence so
// callers can surface it; it is never resolved by guessing.
type IndeterminateFinishError struct {
	Start domain.ProgressEvent
}

func (e *IndeterminateFinishError) Error() string {
	return fmt.Sprintf("no final-count event occurs at or after the start event (%s %s)",
		e.Start.OccurredOn, e.Start.OccurredAt)
}

// Result carries the two events chosen as evidence for the inferred dates.
type Result struct {
	Start  domain.ProgressEvent
	Finish domain.ProgressEvent
}

// Proposal converts the evidence into the date pair to be proposed.
func (r Result) Proposal() domain.DateProposal {
	return domain.DateProposal{
		Start:  r.Start.OccurredOn,
		Finish: r.Finish.OccurredOn,
	}
}

// Engine infers start and finish dates from a normalized progress history.
// It is a pure function of its input: the history is never mutated and the
// same history always yields the same result.
type Engine struct {
	logger *slog.Logger
}

// New wires the audit logger used for evidence lines.
func New(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Infer determines the start and finish events for a non-empty history.
//
// The history arrives newest-first and is re-ordered chronologically by
// reversal, not by sorting: same-day ordering stays exactly as the provider
// recorded it. The start is the first chronological event carrying the
// minimum progress count; the finish is the first event carrying the maximum
// count at or after the start position. When several events share a count,
// the chronologically earliest instance wins ("first time this progress
// point was recorded"), which keeps re-watches and re-reads recorded later
// in the same history from shifting either date.
//
// Known limitation, kept deliberately: a truly completed entry is assumed to
// have its final progress count as the chronologically last record. An entry
// currently being re-experienced can yield a wrong or indeterminate finish;
// the indeterminate case is reported, never defaulted.
func (e *Engine) Infer(history domain.History) (Result, error) {
	if history.Empty() {
		return Result{}, ErrEmptyHistory
	}

	chrono := reversed(history)
	earliest, latest := countBounds(chrono)

	var result Result
	startIndex := 0
	for i, event := range chrono {
		if event.Count == earliest {
			result.Start = event
			startIndex = i
			break
		}
	}
	e.debug("start evidence selected",
		"count", result.Start.Count,
		"occurred_on", result.Start.OccurredOn.String(),
		"occurred_at", result.Start.OccurredAt)

	for _, event := range chrono[startIndex:] {
		if event.Count == latest {
			result.Finish = event
			e.debug("finish evidence selected",
				"count", result.Finish.Count,
				"occurred_on", result.Finish.OccurredOn.String(),
				"occurred_at", result.Finish.OccurredAt)
			return result, nil
		}
	}

	e.debug("finish indeterminate",
		"earliest_count", earliest,
		"latest_count", latest,
		"start_on", result.Start.OccurredOn.String())
	return Result{}, &IndeterminateFinishError{Start: result.Start}
}

func reversed(history domain.History) domain.History {
	chrono := make(domain.History, len(history))
	for i, event := range history {
		chrono[len(history)-1-i] = event
	}
	return chrono
}

func countBounds(history domain.History) (earliest, latest int) {
	earliest, latest = history[0].Count, history[0].Count
	for _, event := range history[1:] {
		if event.Count < earliest {
			earliest = event.Count
		}
		if event.Count > latest {
			latest = event.Count
		}
	}
	return earliest, latest
}

func (e *Engine) debug(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
