package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ListMender/internal/domain"
	"ListMender/internal/history"
	"ListMender/internal/inference"
	"ListMender/internal/policy"
)

// ReviewOptions control one review pass over a list.
type ReviewOptions struct {
	ListType   domain.ListType
	ResumeFrom string // skip entries until this exact title; empty reviews all
}

// entryOutcome is the terminal result of reviewing one entry.
type entryOutcome struct {
	state          domain.ReviewState
	fetchedHistory bool
	abort          bool
}

// Review drives the per-entry loop: sequence the entries, gate each one
// through the policy, run inference where it applies, surface proposals and
// flags, and emit confirmed updates to the submitter. Entries are processed
// strictly one at a time; an abort decision ends the whole session between
// entries.
func (s *Session) Review(ctx context.Context, opts ReviewOptions) (domain.SessionSummary, error) {
	entries, err := s.List(ctx, opts.ListType, false)
	if err != nil {
		return domain.SessionSummary{}, err
	}

	log := s.logger.With("list_type", opts.ListType)
	log.Info("review session started", "entries", len(entries), "resume_from", opts.ResumeFrom)

	var summary domain.SessionSummary
	skipping := opts.ResumeFrom != ""
	for i, entry := range entries {
		if skipping {
			if entry.Title != opts.ResumeFrom {
				summary.ResumeSkips++
				log.Info("entry passed over before resume point", "position", i+1, "title", entry.Title)
				continue
			}
			skipping = false
		}

		outcome, err := s.reviewEntry(ctx, log, opts.ListType, i+1, len(entries), entry)
		if err != nil {
			return summary, err
		}
		if outcome.abort {
			summary.Aborted = true
			log.Info("session aborted on request", "position", i+1)
			break
		}

		switch outcome.state {
		case domain.StateApplied:
			summary.Applied++
		case domain.StateSkipped:
			summary.Skipped++
		case domain.StateFlagged:
			summary.Flagged++
		}

		// Pace the history endpoint: pause only after entries that hit it.
		if outcome.fetchedHistory && i < len(entries)-1 {
			if err := s.pause(ctx); err != nil {
				return summary, err
			}
		}
	}

	if skipping {
		log.Warn("resume point never matched", "resume_from", opts.ResumeFrom)
	}

	s.presenter.ShowSummary(summary)
	log.Info("review session finished",
		"applied", summary.Applied,
		"skipped", summary.Skipped,
		"flagged", summary.Flagged,
		"resume_skips", summary.ResumeSkips,
		"aborted", summary.Aborted)
	return summary, nil
}

func (s *Session) reviewEntry(ctx context.Context, log *slog.Logger, listType domain.ListType, index, total int, entry domain.ListEntry) (entryOutcome, error) {
	entryLog := log.With("entry_id", entry.ID, "title", entry.Title)
	entryLog.Debug("entry announced", "state", domain.StateAnnounced, "position", index, "status", entry.Status)
	s.presenter.ShowEntry(index, total, entry)

	// Rules that need no history: date-order corruption and the auto-skips.
	if outcome, done := s.policy.Precheck(entry); done {
		if outcome.Decision == policy.FlagDateOrder {
			return s.flagEntry(ctx, entryLog, domain.Flag{Reason: domain.FlagDateOrder}, false)
		}
		reason := skipReason(outcome.Decision)
		entryLog.Info("entry auto-skipped", "state", domain.StateSkipped, "reason", reason)
		s.presenter.ShowSkipped(reason)
		return entryOutcome{state: domain.StateSkipped}, nil
	}

	records, fetchErr := s.histories.Fetch(ctx, entry.ID, listType)
	available := fetchErr == nil
	var hist domain.History
	if available {
		var err error
		hist, err = history.Normalize(records)
		if err != nil {
			// A malformed record poisons the whole fetch; the entry is
			// treated as having no usable history, never partially parsed.
			entryLog.Warn("history unusable", "error", err)
			available = false
			hist = nil
		}
	} else {
		entryLog.Warn("history unavailable", "error", fetchErr)
	}
	entryLog.Debug("history fetched", "state", domain.StateHistoryFetched, "available", available, "events", len(hist))
	if !hist.Empty() {
		s.presenter.ShowHistory(listType, hist)
	}

	outcome := s.policy.Decide(entry, available, hist)
	switch outcome.Decision {
	case policy.SkipNotCompleted, policy.SkipAlreadyDated:
		proposal := domain.Proposal{Skip: skipReason(outcome.Decision)}
		return s.confirmProposal(ctx, entryLog, listType, entry, proposal)
	case policy.FlagNoHistory:
		return s.flagEntry(ctx, entryLog, domain.Flag{Reason: domain.FlagNoHistory}, true)
	case policy.FlagDateOrder:
		return s.flagEntry(ctx, entryLog, domain.Flag{Reason: domain.FlagDateOrder}, true)
	}

	result, err := s.engine.Infer(hist)
	if err != nil {
		var indeterminate *inference.IndeterminateFinishError
		if errors.As(err, &indeterminate) {
			flag := domain.Flag{Reason: domain.FlagIndeterminateFinish, Start: indeterminate.Start}
			return s.flagEntry(ctx, entryLog, flag, true)
		}
		return entryOutcome{}, fmt.Errorf("infer dates for entry %d: %w", entry.ID, err)
	}

	proposal := domain.Proposal{
		Dates:  result.Proposal(),
		Start:  result.Start,
		Finish: result.Finish,
	}
	return s.confirmProposal(ctx, entryLog, listType, entry, proposal)
}

// confirmProposal surfaces the proposal, blocks on the decision source, and
// finalizes the entry according to the chosen action.
func (s *Session) confirmProposal(ctx context.Context, log *slog.Logger, listType domain.ListType, entry domain.ListEntry, proposal domain.Proposal) (entryOutcome, error) {
	s.presenter.ShowProposal(listType, proposal)
	log.Info("proposal ready",
		"state", domain.StateProposalReady,
		"skip", string(proposal.Skip),
		"start", proposal.Dates.Start.String(),
		"finish", proposal.Dates.Finish.String())

	log.Debug("awaiting decision", "state", domain.StateAwaitingDecision)
	action, err := s.decisions.NextAction(ctx)
	if err != nil {
		return entryOutcome{}, fmt.Errorf("await decision for entry %d: %w", entry.ID, err)
	}
	log.Debug("decision received", "action", action)

	switch action {
	case domain.ActionAbort:
		return entryOutcome{abort: true, fetchedHistory: true}, nil

	case domain.ActionSkipEntry:
		s.presenter.ShowSkipped(domain.SkipByRequest)
		log.Info("entry skipped", "state", domain.StateSkipped, "reason", domain.SkipByRequest)
		return entryOutcome{state: domain.StateSkipped, fetchedHistory: true}, nil

	case domain.ActionProceed:
		if proposal.IsSkip() {
			s.presenter.ShowSkipped(proposal.Skip)
			log.Info("entry skipped", "state", domain.StateSkipped, "reason", proposal.Skip)
			return entryOutcome{state: domain.StateSkipped, fetchedHistory: true}, nil
		}
		patch := domain.DatePatch{StartDate: proposal.Dates.Start, FinishDate: proposal.Dates.Finish}
		return s.apply(ctx, log, listType, entry, patch)

	case domain.ActionFinishOnly:
		if proposal.IsSkip() {
			// Nothing was inferred, so there is no finish date to submit.
			log.Warn("finish-only requested on a skip proposal, skipping instead")
			s.presenter.ShowSkipped(proposal.Skip)
			return entryOutcome{state: domain.StateSkipped, fetchedHistory: true}, nil
		}
		patch := domain.DatePatch{FinishDate: proposal.Dates.Finish}
		return s.apply(ctx, log, listType, entry, patch)
	}

	return entryOutcome{}, fmt.Errorf("unrecognized review action %q for entry %d", action, entry.ID)
}

// apply submits the confirmed patch. A transport failure ends the session;
// a non-2xx status is surfaced and the session moves on, matching the
// provider's contract that the status code is the submission's verdict.
func (s *Session) apply(ctx context.Context, log *slog.Logger, listType domain.ListType, entry domain.ListEntry, patch domain.DatePatch) (entryOutcome, error) {
	statusCode, err := s.updates.Submit(ctx, entry.ID, listType, patch)
	if err != nil {
		return entryOutcome{}, fmt.Errorf("submit update for entry %d: %w", entry.ID, err)
	}

	s.presenter.ShowApplied(patch, statusCode)
	log.Info("update submitted",
		"state", domain.StateApplied,
		"status_code", statusCode,
		"start", patch.StartDate.String(),
		"finish", patch.FinishDate.String())
	return entryOutcome{state: domain.StateApplied, fetchedHistory: true}, nil
}

// flagEntry surfaces a data-quality problem and blocks until it is
// acknowledged. Flags are never resolved automatically.
func (s *Session) flagEntry(ctx context.Context, log *slog.Logger, flag domain.Flag, fetchedHistory bool) (entryOutcome, error) {
	s.presenter.ShowFlag(flag)
	log.Warn("entry flagged", "state", domain.StateFlagged, "reason", flag.Reason)
	if err := s.decisions.Acknowledge(ctx); err != nil {
		return entryOutcome{}, fmt.Errorf("await acknowledgment: %w", err)
	}
	return entryOutcome{state: domain.StateFlagged, fetchedHistory: fetchedHistory}, nil
}

// pause blocks between entries to respect the history endpoint's implicit
// rate limits. Context cancellation interrupts it; nothing else does.
func (s *Session) pause(ctx context.Context) error {
	if s.wait <= 0 {
		return nil
	}
	timer := time.NewTimer(s.wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func skipReason(decision policy.Decision) domain.SkipReason {
	if decision == policy.SkipAlreadyDated {
		return domain.SkipAlreadyDated
	}
	return domain.SkipStatusNotCompleted
}
