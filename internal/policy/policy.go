package policy

import "ListMender/internal/domain"

// Decision identifies what the review loop should do with one entry.
type Decision string

const (
	Infer            Decision = "infer"
	SkipNotCompleted Decision = "skip_not_completed"
	SkipAlreadyDated Decision = "skip_already_dated"
	FlagNoHistory    Decision = "flag_no_history"
	FlagDateOrder    Decision = "flag_date_order_error"
)

// Outcome pairs a decision with how it is applied. Auto outcomes are applied
// without surfacing for confirmation; only the skip decisions can be Auto,
// and only under auto-skip mode. Flags always require acknowledgment.
type Outcome struct {
	Decision Decision
	Auto     bool
}

// Policy gates inference per entry. With AutoSkip enabled, entries whose
// status or existing dates make inference pointless are skipped without
// asking; otherwise the same skips are surfaced as proposals to confirm.
type Policy struct {
	autoSkip bool
}

// New builds the policy for one review session.
func New(autoSkip bool) Policy {
	return Policy{autoSkip: autoSkip}
}

// Precheck evaluates the rules that need no history: date-order corruption
// and, under auto-skip mode, the status and already-dated gates. The second
// return value reports whether the entry is disposed of before any history
// fetch.
func (p Policy) Precheck(entry domain.ListEntry) (Outcome, bool) {
	if entry.DatesInverted() {
		return Outcome{Decision: FlagDateOrder}, true
	}
	if p.autoSkip {
		if !entry.Status.Completed() {
			return Outcome{Decision: SkipNotCompleted, Auto: true}, true
		}
		if entry.HasBothDates() {
			return Outcome{Decision: SkipAlreadyDated, Auto: true}, true
		}
	}
	return Outcome{}, false
}

// Decide evaluates the full rule chain, strictly in order:
//
//  1. inverted existing dates are always flagged, never skipped over;
//  2. with auto-skip, a non-completed entry is skipped silently;
//  3. with auto-skip, an already-dated entry is skipped silently;
//  4. without auto-skip, a non-completed entry yields a skip proposal;
//  5. without auto-skip, an already-dated entry yields a skip proposal;
//  6. an unavailable or empty history is flagged for manual resolution;
//  7. everything else is handed to the inference engine.
func (p Policy) Decide(entry domain.ListEntry, historyAvailable bool, history domain.History) Outcome {
	if outcome, done := p.Precheck(entry); done {
		return outcome
	}
	if !entry.Status.Completed() {
		return Outcome{Decision: SkipNotCompleted}
	}
	if entry.HasBothDates() {
		return Outcome{Decision: SkipAlreadyDated}
	}
	if !historyAvailable || history.Empty() {
		return Outcome{Decision: FlagNoHistory}
	}
	return Outcome{Decision: Infer}
}
