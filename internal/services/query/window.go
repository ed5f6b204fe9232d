package query

import (
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/marketpulse/internal/models"
)

// ErrInvalidDateRange is returned when the query window collapses to
// start > end after provider clamping. Reported to the caller, never retried.
var ErrInvalidDateRange = errors.New("news query date range invalid after provider constraints")

// ConstrainWindow computes the provider query window and the user-intent
// context window for one request.
//
// The query window never reaches into the future (end clamped to system
// today) and never earlier than the provider retention horizon (start clamped
// to today minus earliestOffsetDays). The context window is always the
// user's unclamped intent and is used only for display and prompt framing.
//
// Malformed end-date input is the caller's problem: the web boundary
// substitutes system today before invoking this function.
func ConstrainWindow(lookbackDays int, uiEndDate, systemToday time.Time, earliestOffsetDays int) (queryWindow, contextWindow models.DateWindow, warnings []string, err error) {
	uiEndDate = truncateToDay(uiEndDate)
	systemToday = truncateToDay(systemToday)

	queryEnd := uiEndDate
	if queryEnd.After(systemToday) {
		queryEnd = systemToday
		warnings = append(warnings, fmt.Sprintf("End date %s is in the future; query clamped to %s.",
			uiEndDate.Format("2006-01-02"), systemToday.Format("2006-01-02")))
	}

	queryStart := queryEnd.AddDate(0, 0, -(lookbackDays - 1))
	earliestAllowed := systemToday.AddDate(0, 0, -earliestOffsetDays)
	if queryStart.Before(earliestAllowed) {
		queryStart = earliestAllowed
		warnings = append(warnings, fmt.Sprintf("Lookback reaches before the provider horizon; query start clamped to %s.",
			earliestAllowed.Format("2006-01-02")))
	}

	if queryStart.After(queryEnd) {
		return models.DateWindow{}, models.DateWindow{}, warnings, ErrInvalidDateRange
	}

	queryWindow, err = models.NewDateWindow(queryStart, queryEnd)
	if err != nil {
		return models.DateWindow{}, models.DateWindow{}, warnings, err
	}

	// Context window is the user's intent, unclamped, never sent to the provider.
	contextWindow, err = models.NewDateWindow(uiEndDate.AddDate(0, 0, -(lookbackDays-1)), uiEndDate)
	if err != nil {
		return models.DateWindow{}, models.DateWindow{}, warnings, err
	}

	return queryWindow, contextWindow, warnings, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
