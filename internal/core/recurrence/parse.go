package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/cadence/internal/core/calendar"
)

// ErrInvalidCadence is returned when cadence text matches no rule.
var ErrInvalidCadence = errors.New("invalid cadence")

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var (
	dayMonthYearLayouts = []string{"2/Jan/2006", "2/January/2006"}
	dayMonthLayouts     = []string{"2/Jan", "2/January"}
)

// Parse reads a cadence. Matching is case-insensitive:
//
//	daily | weekly | monthly | yearly
//	sunday ... saturday
//	DD/Mon/YYYY   one-off date
//	DD/Mon        the same date every year
func Parse(text string) (Rule, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	switch s {
	case "daily":
		return Daily{}, nil
	case "weekly":
		return Weekly{}, nil
	case "monthly":
		return Monthly{}, nil
	case "yearly":
		return Yearly{}, nil
	}

	if day, ok := weekdays[s]; ok {
		return SpecificWeekday{Day: day}, nil
	}

	for _, layout := range dayMonthYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return SpecificDate{Date: calendar.DateOf(t)}, nil
		}
	}

	for _, layout := range dayMonthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return SpecificDateEveryYear{Month: t.Month(), Day: t.Day()}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidCadence, text)
}

func parseWeekday(name string) (time.Weekday, bool) {
	day, ok := weekdays[strings.ToLower(name)]
	return day, ok
}
