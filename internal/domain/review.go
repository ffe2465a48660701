package domain

// DateProposal is the engine's inferred date pair for one entry. Ephemeral:
// it exists only within one review iteration.
type DateProposal struct {
	Start  Date
	Finish Date
}

// DatePatch is the partial update handed to the submitter. Only present
// fields are ever transmitted; fields the core did not compute are never
// overwritten.
type DatePatch struct {
	StartDate  Date
	FinishDate Date
}

// Empty reports whether the patch carries no fields at all.
func (p DatePatch) Empty() bool {
	return !p.StartDate.Present() && !p.FinishDate.Present()
}

// ReviewAction is the externally supplied decision consumed by the
// controller to finalize or discard a surfaced proposal.
type ReviewAction string

const (
	ActionProceed    ReviewAction = "proceed"
	ActionSkipEntry  ReviewAction = "skip"
	ActionFinishOnly ReviewAction = "finish_only"
	ActionAbort      ReviewAction = "abort"
)

// ReviewState names the per-entry states of the review session; it is the
// vocabulary carried in audit logs.
type ReviewState string

const (
	StateAnnounced        ReviewState = "announced"
	StateHistoryFetched   ReviewState = "history_fetched"
	StateProposalReady    ReviewState = "proposal_ready"
	StateAwaitingDecision ReviewState = "awaiting_decision"
	StateApplied          ReviewState = "applied"
	StateSkipped          ReviewState = "skipped"
	StateFlagged          ReviewState = "flagged"
)

// SkipReason explains why an entry is (or is proposed to be) skipped.
type SkipReason string

const (
	SkipStatusNotCompleted SkipReason = "status_not_completed"
	SkipAlreadyDated       SkipReason = "already_dated"
	SkipByRequest          SkipReason = "user_request"
)

// Proposal is what the controller surfaces for confirmation: either an
// inferred date pair with its evidence events, or a skip with its rationale.
type Proposal struct {
	Dates  DateProposal
	Start  ProgressEvent // evidence backing Dates.Start
	Finish ProgressEvent // evidence backing Dates.Finish
	Skip   SkipReason    // non-empty marks a skip proposal
}

// IsSkip reports whether the proposal's rationale is itself "skip".
func (p Proposal) IsSkip() bool {
	return p.Skip != ""
}

// FlagReason names a condition that requires manual acknowledgment before
// the session may advance. Flags are never resolved automatically.
type FlagReason string

const (
	FlagDateOrder           FlagReason = "date_order_corruption"
	FlagNoHistory           FlagReason = "no_history"
	FlagIndeterminateFinish FlagReason = "indeterminate_finish"
)

// Flag pairs the reason with the evidence available when it was raised.
type Flag struct {
	Reason FlagReason
	Start  ProgressEvent // inferred start, set for FlagIndeterminateFinish
}

// SessionSummary aggregates terminal states over one review session.
type SessionSummary struct {
	Applied     int
	Skipped     int
	Flagged     int
	ResumeSkips int // entries passed over before the resume point
	Aborted     bool
}
