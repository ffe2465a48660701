package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ListMender/internal/domain"
)

func TestDecisionSourceMapsInputs(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("y\nS\nf\nX\n")
	var out bytes.Buffer
	source := NewDecisionSource(in, &out)

	ctx := context.Background()
	want := []domain.ReviewAction{
		domain.ActionProceed,
		domain.ActionSkipEntry,
		domain.ActionFinishOnly,
		domain.ActionAbort,
	}
	for _, expected := range want {
		action, err := source.NextAction(ctx)
		if err != nil {
			t.Fatalf("NextAction error: %v", err)
		}
		if action != expected {
			t.Fatalf("expected %s, got %s", expected, action)
		}
	}
}

func TestDecisionSourceRepromptsOnGarbage(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("maybe\n\nY\n")
	var out bytes.Buffer
	source := NewDecisionSource(in, &out)

	action, err := source.NextAction(context.Background())
	if err != nil {
		t.Fatalf("NextAction error: %v", err)
	}
	if action != domain.ActionProceed {
		t.Fatalf("expected proceed, got %s", action)
	}
	if !strings.Contains(out.String(), `Did not understand input "maybe"`) {
		t.Fatalf("missing re-prompt in output:\n%s", out.String())
	}
}

func TestDecisionSourceErrorsWhenInputCloses(t *testing.T) {
	t.Parallel()

	source := NewDecisionSource(strings.NewReader(""), &bytes.Buffer{})

	if _, err := source.NextAction(context.Background()); err == nil {
		t.Fatal("expected error on closed input")
	}
	if err := source.Acknowledge(context.Background()); err == nil {
		t.Fatal("expected error on closed input")
	}
}

func TestDecisionSourceAcknowledgeTakesAnything(t *testing.T) {
	t.Parallel()

	source := NewDecisionSource(strings.NewReader("whatever\n"), &bytes.Buffer{})

	if err := source.Acknowledge(context.Background()); err != nil {
		t.Fatalf("Acknowledge error: %v", err)
	}
}

func TestPresenterShowEntryAndHistory(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPresenter(&out)

	entry := domain.ListEntry{
		ID:        30,
		Title:     "Neon Genesis Evangelion",
		Status:    domain.StatusCompleted,
		StartDate: domain.MustDate("2020-01-03"),
	}
	p.ShowEntry(1, 5, entry)

	got := out.String()
	if !strings.Contains(got, "1/5 [COMPLETED] Neon Genesis Evangelion (30)") {
		t.Fatalf("unexpected entry line:\n%s", got)
	}
	if !strings.Contains(got, "Current start date: 2020-01-03. Current finish date: unset.") {
		t.Fatalf("absent date not rendered:\n%s", got)
	}

	out.Reset()
	history := domain.History{
		{Count: 2, OccurredOn: domain.MustDate("2021-01-04"), OccurredAt: "09:00"},
		{Count: 1, OccurredOn: domain.MustDate("2021-01-03"), OccurredAt: "08:00"},
	}
	p.ShowHistory(domain.ListAnime, history)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 history lines, got %v", lines)
	}
	if lines[0] != "[2021-01-03 08:00] Watched episode 1" {
		t.Fatalf("history must render chronologically, got %q", lines[0])
	}
	if lines[1] != "[2021-01-04 09:00] Watched episode 2" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestPresenterShowProposalVariants(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPresenter(&out)

	p.ShowProposal(domain.ListAnime, domain.Proposal{Skip: domain.SkipStatusNotCompleted})
	if !strings.Contains(out.String(), "skip entry as the status is not completed") {
		t.Fatalf("unexpected skip proposal:\n%s", out.String())
	}

	out.Reset()
	proposal := domain.Proposal{
		Dates: domain.DateProposal{
			Start:  domain.MustDate("2021-01-03"),
			Finish: domain.MustDate("2021-01-05"),
		},
		Start:  domain.ProgressEvent{Count: 1, OccurredOn: domain.MustDate("2021-01-03"), OccurredAt: "08:00"},
		Finish: domain.ProgressEvent{Count: 3, OccurredOn: domain.MustDate("2021-01-05"), OccurredAt: "10:00"},
	}
	p.ShowProposal(domain.ListAnime, proposal)

	got := out.String()
	if !strings.Contains(got, "Earliest episode 1 was first watched at 2021-01-03 08:00") {
		t.Fatalf("missing start evidence:\n%s", got)
	}
	if !strings.Contains(got, "set start date to 2021-01-03, set finish date to 2021-01-05") {
		t.Fatalf("missing proposal line:\n%s", got)
	}
}

func TestPresenterShowFlagBanners(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPresenter(&out)

	p.ShowFlag(domain.Flag{Reason: domain.FlagDateOrder})
	if !strings.Contains(out.String(), "start date is after finish date") {
		t.Fatalf("unexpected banner:\n%s", out.String())
	}

	out.Reset()
	p.ShowFlag(domain.Flag{
		Reason: domain.FlagIndeterminateFinish,
		Start:  domain.ProgressEvent{Count: 1, OccurredOn: domain.MustDate("2021-01-03"), OccurredAt: "08:00"},
	})
	if !strings.Contains(out.String(), "cannot determine a finish date (inferred start: 2021-01-03 08:00)") {
		t.Fatalf("unexpected banner:\n%s", out.String())
	}
}

func TestPresenterShowSummaryTable(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPresenter(&out)

	p.ShowSummary(domain.SessionSummary{Applied: 2, Skipped: 1, Flagged: 1, ResumeSkips: 3})

	got := out.String()
	for _, want := range []string{"Applied", "Skipped", "Flagged", "Before resume point", "Aborted"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}
