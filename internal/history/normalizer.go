package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ListMender/internal/domain"
)

// Raw history records arrive one per progress event, shaped like
//
//	Ep 12, watched on 03/01/21 at 19:04
//	Chapter 45, read on 28/12/20 at 08:30
//
// with the interesting tokens at fixed positions: the progress count at
// index 1 (trailing comma), the day/month/two-digit-year date at index 4,
// and the time of day at index 6.
const (
	countIndex = 1
	dateIndex  = 4
	timeIndex  = 6
	minTokens  = 7

	recordDateLayout = "02/01/06"
	recordTimeLayout = "15:04"
)

// Normalize parses raw progress-event records into a typed history, keeping
// the provider's newest-first ordering. Dates are re-expressed in ISO
// YYYY-MM-DD form so that lexicographic comparison is chronological
// comparison. Any record that does not match the expected layout fails the
// whole batch: the caller must treat the entry's history as unavailable
// rather than continue with silently dropped events.
func Normalize(records []string) (domain.History, error) {
	events := make(domain.History, 0, len(records))
	for i, record := range records {
		event, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("history record %d %q: %w", i+1, record, err)
		}
		events = append(events, event)
	}
	return events, nil
}

func parseRecord(record string) (domain.ProgressEvent, error) {
	tokens := strings.Fields(record)
	if len(tokens) < minTokens {
		return domain.ProgressEvent{}, fmt.Errorf("expected at least %d tokens, got %d", minTokens, len(tokens))
	}

	count, err := strconv.Atoi(strings.TrimSuffix(tokens[countIndex], ","))
	if err != nil {
		return domain.ProgressEvent{}, fmt.Errorf("progress count %q: %w", tokens[countIndex], err)
	}

	day, err := time.Parse(recordDateLayout, tokens[dateIndex])
	if err != nil {
		return domain.ProgressEvent{}, fmt.Errorf("date %q: %w", tokens[dateIndex], err)
	}

	if _, err := time.Parse(recordTimeLayout, tokens[timeIndex]); err != nil {
		return domain.ProgressEvent{}, fmt.Errorf("time %q: %w", tokens[timeIndex], err)
	}

	return domain.ProgressEvent{
		Count:      count,
		OccurredOn: domain.DateOf(day),
		OccurredAt: tokens[timeIndex],
	}, nil
}
