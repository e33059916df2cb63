// Package agenda groups due tasks by how soon they must be done and renders
// the daily overview.
package agenda

import (
	"errors"
	"fmt"

	"github.com/colonyops/cadence/internal/core/organiser"
	"github.com/colonyops/cadence/internal/core/recurrence"
)

// ErrUnknownRule is returned when a task's rule has no horizon.
var ErrUnknownRule = errors.New("no horizon for rule")

// Horizon is the window a due task must be done within.
type Horizon int

const (
	Today Horizon = iota
	ThisWeek
	ThisMonth
	ThisYear
)

// Horizons lists every horizon in display order.
var Horizons = []Horizon{Today, ThisWeek, ThisMonth, ThisYear}

func (h Horizon) String() string {
	switch h {
	case Today:
		return "today"
	case ThisWeek:
		return "this week"
	case ThisMonth:
		return "this month"
	case ThisYear:
		return "this year"
	default:
		return fmt.Sprintf("Horizon(%d)", int(h))
	}
}

// HorizonOf returns the horizon a rule's occurrences fall into. Rules tied
// to a particular day are due on the day they come up.
func HorizonOf(rule recurrence.Rule) (Horizon, error) {
	switch rule.(type) {
	case recurrence.Daily, recurrence.SpecificWeekday, recurrence.SpecificDate, recurrence.SpecificDateEveryYear:
		return Today, nil
	case recurrence.Weekly:
		return ThisWeek, nil
	case recurrence.Monthly:
		return ThisMonth, nil
	case recurrence.Yearly:
		return ThisYear, nil
	default:
		return Today, fmt.Errorf("%w: %T", ErrUnknownRule, rule)
	}
}

// Item is one due task.
type Item struct {
	Name        string
	Outstanding uint
	Budget      recurrence.Budget
}

// Section holds the due tasks of one horizon in task order.
type Section struct {
	Horizon Horizon
	Items   []Item
}

// Group sorts the tasks with something outstanding into sections. Empty
// sections are omitted and the rest follow Horizons order.
func Group(tasks []organiser.Task) ([]Section, error) {
	buckets := make(map[Horizon][]Item, len(Horizons))

	for _, t := range tasks {
		if t.Outstanding == 0 {
			continue
		}

		h, err := HorizonOf(t.Rule)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", t.Name, err)
		}
		buckets[h] = append(buckets[h], Item{Name: t.Name, Outstanding: t.Outstanding, Budget: t.Budget})
	}

	sections := make([]Section, 0, len(buckets))
	for _, h := range Horizons {
		if items := buckets[h]; len(items) > 0 {
			sections = append(sections, Section{Horizon: h, Items: items})
		}
	}
	return sections, nil
}
