package calendar

import "time"

// daysInMonth is the fixed month-length table used by the day count. February
// is always 28; leap days are accounted for by leapCorrection.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Delta is the elapsed time between two session dates, measured separately
// in each unit. Months and Years count field changes, not full periods:
// Dec 31 to Jan 1 is one month and one year.
type Delta struct {
	Days   uint `json:"days"`
	Months uint `json:"months"`
	Years  uint `json:"years"`
}

// IsZero reports whether no time elapsed in any unit.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Elapsed returns the time between previous and current. A current date
// before previous yields a zero Delta.
func Elapsed(previous, current Date) Delta {
	if current.Before(previous) {
		return Delta{}
	}

	return Delta{
		Days:   nonNegative(dayNumber(current) - dayNumber(previous)),
		Months: nonNegative(monthNumber(current) - monthNumber(previous)),
		Years:  nonNegative(current.Year - previous.Year),
	}
}

// dayNumber assigns d an ordinal from a 365-day year, the months preceding
// d's month and the leap correction.
func dayNumber(d Date) int {
	n := d.Year*365 + d.Day
	for i := 0; i < int(d.Month)-1; i++ {
		n += daysInMonth[i]
	}
	return n + leapCorrection(d.Year, d.Month)
}

// leapCorrection counts the leap years up to d's year, excluding the current
// year when d falls on or before February.
func leapCorrection(year int, month time.Month) int {
	if month <= time.February {
		year--
	}
	return year/4 - year/100 + year/400
}

func monthNumber(d Date) int {
	return d.Year*12 + int(d.Month)
}

func nonNegative(n int) uint {
	if n < 0 {
		return 0
	}
	return uint(n)
}
