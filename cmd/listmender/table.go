package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"ListMender/internal/domain"
)

func renderEntryTable(out io.Writer, entries []domain.ListEntry) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	if isTerminal(out) {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(table.Row{"ID", "Title", "Status", "Start", "Finish"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.ID,
			entry.Title,
			entry.Status,
			dateCell(entry.StartDate),
			dateCell(entry.FinishDate),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	tw.AppendFooter(table.Row{"", "", "", "", len(entries)})

	tw.Render()
}

func dateCell(d domain.Date) string {
	if !d.Present() {
		return "-"
	}
	return d.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
