// Package console renders the review session on a terminal and reads the
// reviewer's decisions from an input stream. It is the only place aware of
// prompts, banners and tables; nothing here decides anything.
package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"ListMender/internal/domain"
	"ListMender/internal/ports"
)

// Presenter writes the review narration to a single output stream.
type Presenter struct {
	out    io.Writer
	styled bool
}

var _ ports.ReviewPresenter = (*Presenter)(nil)

// NewPresenter wires the output stream. Tables get the rounded style only
// when the stream is a terminal.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out, styled: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ShowEntry announces the entry under review with its current dates.
func (p *Presenter) ShowEntry(index, total int, entry domain.ListEntry) {
	fmt.Fprintf(p.out, "%d/%d [%s] %s (%d). Current start date: %s. Current finish date: %s.\n",
		index, total, strings.ToUpper(string(entry.Status)), entry.Title, entry.ID,
		displayDate(entry.StartDate), displayDate(entry.FinishDate))
}

// ShowHistory echoes the progress events in chronological order so the
// reviewer sees the evidence the proposal will be built from.
func (p *Presenter) ShowHistory(listType domain.ListType, history domain.History) {
	for i := len(history) - 1; i >= 0; i-- {
		event := history[i]
		fmt.Fprintf(p.out, "[%s %s] %s %s %d\n",
			event.OccurredOn, event.OccurredAt, verb(listType), listType.Unit(), event.Count)
	}
}

// ShowProposal renders either the inferred date pair with its evidence or
// the skip rationale awaiting confirmation.
func (p *Presenter) ShowProposal(listType domain.ListType, proposal domain.Proposal) {
	switch proposal.Skip {
	case domain.SkipStatusNotCompleted:
		fmt.Fprintln(p.out, "<<< Proposed change: skip entry as the status is not completed")
		return
	case domain.SkipAlreadyDated:
		fmt.Fprintln(p.out, "<<< Proposed change: skip entry as the start and finish date are already populated")
		return
	}

	fmt.Fprintf(p.out, "<<< Earliest %s %d was first %s at %s %s\n",
		listType.Unit(), proposal.Start.Count, listType.Verb(),
		proposal.Start.OccurredOn, proposal.Start.OccurredAt)
	fmt.Fprintf(p.out, "<<< Last %s %d was first %s at %s %s\n",
		listType.Unit(), proposal.Finish.Count, listType.Verb(),
		proposal.Finish.OccurredOn, proposal.Finish.OccurredAt)
	fmt.Fprintf(p.out, "<<< Proposed change: set start date to %s, set finish date to %s\n",
		proposal.Dates.Start, proposal.Dates.Finish)
}

// ShowFlag renders the data-quality banner that blocks the session.
func (p *Presenter) ShowFlag(flag domain.Flag) {
	switch flag.Reason {
	case domain.FlagDateOrder:
		fmt.Fprintln(p.out, "<<< Found an issue: start date is after finish date")
	case domain.FlagNoHistory:
		fmt.Fprintln(p.out, "<<< Found an issue: no history available")
	case domain.FlagIndeterminateFinish:
		fmt.Fprintf(p.out, "<<< Found an issue: cannot determine a finish date (inferred start: %s %s)\n",
			flag.Start.OccurredOn, flag.Start.OccurredAt)
	default:
		fmt.Fprintf(p.out, "<<< Found an issue: %s\n", flag.Reason)
	}
	fmt.Fprintln(p.out, "<<< This will require a manual fix")
}

// ShowSkipped reports why the entry was left untouched.
func (p *Presenter) ShowSkipped(reason domain.SkipReason) {
	switch reason {
	case domain.SkipStatusNotCompleted:
		fmt.Fprintln(p.out, "<<< Skipping entry as the status is not completed")
	case domain.SkipAlreadyDated:
		fmt.Fprintln(p.out, "<<< Skipping entry as the start and finish date are already populated")
	default:
		fmt.Fprintln(p.out, "<<< Skipping entry on user request")
	}
	p.divider()
}

// ShowApplied confirms the submitted patch and the provider's verdict.
func (p *Presenter) ShowApplied(patch domain.DatePatch, statusCode int) {
	if patch.StartDate.Present() {
		fmt.Fprintf(p.out, "<<< Sent start date %s and finish date %s, response code %d\n",
			patch.StartDate, patch.FinishDate, statusCode)
	} else {
		fmt.Fprintf(p.out, "<<< Sent finish date %s, response code %d\n",
			patch.FinishDate, statusCode)
	}
	p.divider()
}

// ShowSummary renders the session totals as a table.
func (p *Presenter) ShowSummary(summary domain.SessionSummary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(p.out)
	if p.styled {
		tw.SetStyle(table.StyleRounded)
	}
	tw.AppendHeader(table.Row{"Result", "Entries"})
	tw.AppendRow(table.Row{"Applied", summary.Applied})
	tw.AppendRow(table.Row{"Skipped", summary.Skipped})
	tw.AppendRow(table.Row{"Flagged", summary.Flagged})
	if summary.ResumeSkips > 0 {
		tw.AppendRow(table.Row{"Before resume point", summary.ResumeSkips})
	}
	tw.AppendFooter(table.Row{"Aborted", strconv.FormatBool(summary.Aborted)})
	tw.Render()
}

func (p *Presenter) divider() {
	fmt.Fprintln(p.out, "==========================================================")
}

func displayDate(d domain.Date) string {
	if !d.Present() {
		return "unset"
	}
	return d.String()
}

func verb(listType domain.ListType) string {
	if listType == domain.ListManga {
		return "Read"
	}
	return "Watched"
}
