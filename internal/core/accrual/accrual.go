// Package accrual converts the calendar time between two sessions into newly
// due occurrences, limited by each task's repetition budget.
package accrual

import (
	"errors"
	"fmt"
	"time"

	"github.com/colonyops/cadence/internal/core/calendar"
	"github.com/colonyops/cadence/internal/core/recurrence"
)

// ErrUnsupportedRule is returned for a rule type this package does not know.
var ErrUnsupportedRule = errors.New("unsupported rule")

// Transition is a change of session date from From to To.
type Transition struct {
	From      calendar.Date
	To        calendar.Date
	Delta     calendar.Delta
	WeekStart time.Weekday // first day of a week, for Weekly rules
}

// NewTransition computes the elapsed time between from and to.
func NewTransition(from, to calendar.Date, weekStart time.Weekday) Transition {
	return Transition{
		From:      from,
		To:        to,
		Delta:     calendar.Elapsed(from, to),
		WeekStart: weekStart,
	}
}

// Occurrences returns how many times rule came due during t, before any
// budget is applied.
func Occurrences(rule recurrence.Rule, t Transition) (uint, error) {
	switch r := rule.(type) {
	case recurrence.Daily:
		return t.Delta.Days, nil
	case recurrence.Weekly:
		return calendar.WeeksCrossed(t.From, t.To, t.WeekStart), nil
	case recurrence.Monthly:
		return t.Delta.Months, nil
	case recurrence.Yearly:
		return t.Delta.Years, nil
	case recurrence.SpecificWeekday:
		return calendar.WeekdaysBetween(t.From, t.To, r.Day), nil
	case recurrence.SpecificDate:
		if calendar.Crossed(t.From, t.To, r.Date) {
			return 1, nil
		}
		return 0, nil
	case recurrence.SpecificDateEveryYear:
		return calendar.AnniversariesBetween(t.From, t.To, r.Month, r.Day), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedRule, rule)
	}
}

// Accrue adds the occurrences of rule during t to outstanding, granting no
// more than budget allows. It returns the new outstanding count and the
// budget left over. An exhausted budget leaves outstanding unchanged.
func Accrue(rule recurrence.Rule, t Transition, outstanding uint, budget recurrence.Budget) (uint, recurrence.Budget, error) {
	due, err := Occurrences(rule, t)
	if err != nil {
		return outstanding, budget, err
	}

	granted, rest := budget.Take(due)
	return outstanding + granted, rest, nil
}
