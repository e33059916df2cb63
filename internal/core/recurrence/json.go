package recurrence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/colonyops/cadence/internal/core/calendar"
)

type yearlessDate struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// MarshalRule encodes r with its kind as the tag. Rules without a payload are
// a bare string ("Daily"); the others are a single-key object
// ({"SpecificWeekday":"Monday"}).
func MarshalRule(r Rule) ([]byte, error) {
	switch r := r.(type) {
	case Daily, Weekly, Monthly, Yearly:
		return json.Marshal(string(r.Kind()))
	case SpecificWeekday:
		return json.Marshal(map[Kind]string{r.Kind(): r.Day.String()})
	case SpecificDate:
		return json.Marshal(map[Kind]calendar.Date{r.Kind(): r.Date})
	case SpecificDateEveryYear:
		return json.Marshal(map[Kind]yearlessDate{r.Kind(): {Month: int(r.Month), Day: r.Day}})
	default:
		return nil, fmt.Errorf("%w: unknown rule %T", ErrInvalidCadence, r)
	}
}

// UnmarshalRule decodes the form written by MarshalRule.
func UnmarshalRule(data []byte) (Rule, error) {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch Kind(tag) {
		case KindDaily:
			return Daily{}, nil
		case KindWeekly:
			return Weekly{}, nil
		case KindMonthly:
			return Monthly{}, nil
		case KindYearly:
			return Yearly{}, nil
		default:
			return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidCadence, tag)
		}
	}

	var tagged map[Kind]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCadence, err)
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("%w: expected one tag, got %d", ErrInvalidCadence, len(tagged))
	}

	for kind, payload := range tagged {
		return unmarshalPayload(kind, payload)
	}
	panic("unreachable")
}

func unmarshalPayload(kind Kind, payload json.RawMessage) (Rule, error) {
	switch kind {
	case KindSpecificWeekday:
		var name string
		if err := json.Unmarshal(payload, &name); err != nil {
			return nil, fmt.Errorf("%w: weekday: %v", ErrInvalidCadence, err)
		}
		day, ok := parseWeekday(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidCadence, name)
		}
		return SpecificWeekday{Day: day}, nil

	case KindSpecificDate:
		var date calendar.Date
		if err := json.Unmarshal(payload, &date); err != nil {
			return nil, fmt.Errorf("%w: date: %v", ErrInvalidCadence, err)
		}
		return SpecificDate{Date: date}, nil

	case KindSpecificDateEveryYear:
		var yd yearlessDate
		if err := json.Unmarshal(payload, &yd); err != nil {
			return nil, fmt.Errorf("%w: yearless date: %v", ErrInvalidCadence, err)
		}
		// 2000 is a leap year, so Feb 29 is accepted.
		if !calendar.IsValid(2000, time.Month(yd.Month), yd.Day) {
			return nil, fmt.Errorf("%w: no such date %02d/%02d", ErrInvalidCadence, yd.Day, yd.Month)
		}
		return SpecificDateEveryYear{Month: time.Month(yd.Month), Day: yd.Day}, nil

	default:
		return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidCadence, kind)
	}
}
