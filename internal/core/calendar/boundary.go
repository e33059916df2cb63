package calendar

import "time"

// WeekdaysBetween counts the dates in (previous, current] that fall on day.
func WeekdaysBetween(previous, current Date, day time.Weekday) uint {
	if !previous.Before(current) {
		return 0
	}

	// 1970-01-01 was a Thursday.
	offset := int64(day) - int64(time.Thursday)
	n := floorDiv(current.epochDay()-offset, 7) - floorDiv(previous.epochDay()-offset, 7)
	return uint(n)
}

// WeeksCrossed counts week boundaries in (previous, current], where a week
// begins on weekStart.
func WeeksCrossed(previous, current Date, weekStart time.Weekday) uint {
	return WeekdaysBetween(previous, current, weekStart)
}

// Crossed reports whether date lies in (previous, current].
func Crossed(previous, current, date Date) bool {
	return previous.Before(date) && !current.Before(date)
}

// AnniversariesBetween counts the yearly recurrences of month/day in
// (previous, current]. Years in which the date does not exist (Feb 29 outside
// leap years) are skipped.
func AnniversariesBetween(previous, current Date, month time.Month, day int) uint {
	var n uint
	for y := previous.Year; y <= current.Year; y++ {
		if !IsValid(y, month, day) {
			continue
		}
		if Crossed(previous, current, NewDate(y, month, day)) {
			n++
		}
	}
	return n
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
