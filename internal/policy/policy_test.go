package policy

import (
	"testing"

	"ListMender/internal/domain"
)

func completedEntry() domain.ListEntry {
	return domain.ListEntry{ID: 7, Title: "Akira", Status: domain.StatusCompleted}
}

func someHistory() domain.History {
	return domain.History{{Count: 1, OccurredOn: domain.MustDate("2021-01-03"), OccurredAt: "08:00"}}
}

func TestDateOrderViolationAlwaysFlags(t *testing.T) {
	t.Parallel()

	entry := completedEntry()
	entry.StartDate = domain.MustDate("2020-05-01")
	entry.FinishDate = domain.MustDate("2020-01-01")

	for _, autoSkip := range []bool{false, true} {
		for _, status := range []domain.EntryStatus{domain.StatusCompleted, domain.StatusWatching, domain.StatusDropped} {
			entry.Status = status
			p := New(autoSkip)

			outcome, done := p.Precheck(entry)
			if !done {
				t.Fatalf("auto=%v status=%s: corruption must be caught before any history fetch", autoSkip, status)
			}
			if outcome.Decision != FlagDateOrder || outcome.Auto {
				t.Fatalf("auto=%v status=%s: unexpected outcome %+v", autoSkip, status, outcome)
			}

			if got := p.Decide(entry, true, someHistory()); got.Decision != FlagDateOrder {
				t.Fatalf("auto=%v status=%s: Decide must agree, got %+v", autoSkip, status, got)
			}
		}
	}
}

func TestAutoSkipDisposesWithoutHistory(t *testing.T) {
	t.Parallel()

	p := New(true)

	watching := completedEntry()
	watching.Status = domain.StatusWatching
	outcome, done := p.Precheck(watching)
	if !done || outcome.Decision != SkipNotCompleted || !outcome.Auto {
		t.Fatalf("unexpected outcome for not-completed entry: %+v done=%v", outcome, done)
	}

	dated := completedEntry()
	dated.StartDate = domain.MustDate("2021-01-03")
	dated.FinishDate = domain.MustDate("2021-01-05")
	outcome, done = p.Precheck(dated)
	if !done || outcome.Decision != SkipAlreadyDated || !outcome.Auto {
		t.Fatalf("unexpected outcome for already-dated entry: %+v done=%v", outcome, done)
	}
}

func TestWithoutAutoSkipTheSameSkipsAreSurfaced(t *testing.T) {
	t.Parallel()

	p := New(false)

	watching := completedEntry()
	watching.Status = domain.StatusWatching
	if _, done := p.Precheck(watching); done {
		t.Fatal("without auto-skip the entry must not be disposed of before the history fetch")
	}
	outcome := p.Decide(watching, true, someHistory())
	if outcome.Decision != SkipNotCompleted || outcome.Auto {
		t.Fatalf("expected surfaced skip proposal, got %+v", outcome)
	}

	dated := completedEntry()
	dated.StartDate = domain.MustDate("2021-01-03")
	dated.FinishDate = domain.MustDate("2021-01-05")
	outcome = p.Decide(dated, true, someHistory())
	if outcome.Decision != SkipAlreadyDated || outcome.Auto {
		t.Fatalf("expected surfaced skip proposal, got %+v", outcome)
	}
}

func TestMissingHistoryIsFlagged(t *testing.T) {
	t.Parallel()

	entry := completedEntry()
	for _, autoSkip := range []bool{false, true} {
		p := New(autoSkip)
		if outcome := p.Decide(entry, true, nil); outcome.Decision != FlagNoHistory || outcome.Auto {
			t.Fatalf("auto=%v: empty history must flag, got %+v", autoSkip, outcome)
		}
		if outcome := p.Decide(entry, false, nil); outcome.Decision != FlagNoHistory || outcome.Auto {
			t.Fatalf("auto=%v: unavailable history must flag, got %+v", autoSkip, outcome)
		}
	}
}

func TestCompletedUndatedEntryInfers(t *testing.T) {
	t.Parallel()

	entry := completedEntry()
	p := New(true)

	if _, done := p.Precheck(entry); done {
		t.Fatal("an inferable entry must reach the history fetch")
	}
	if outcome := p.Decide(entry, true, someHistory()); outcome.Decision != Infer {
		t.Fatalf("expected inference, got %+v", outcome)
	}

	// One known date is not "already dated": inference still runs.
	entry.StartDate = domain.MustDate("2021-01-03")
	if outcome := p.Decide(entry, true, someHistory()); outcome.Decision != Infer {
		t.Fatalf("partially dated entry must still infer, got %+v", outcome)
	}
}
