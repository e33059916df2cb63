// Package recurrence defines the cadences a task can recur on and the
// repetition budget that limits how many times it may recur.
package recurrence

import (
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/cadence/internal/core/calendar"
)

// Kind names a Rule variant. The values double as the JSON tags.
type Kind string

const (
	KindDaily                 Kind = "Daily"
	KindWeekly                Kind = "Weekly"
	KindMonthly               Kind = "Monthly"
	KindYearly                Kind = "Yearly"
	KindSpecificWeekday       Kind = "SpecificWeekday"
	KindSpecificDate          Kind = "SpecificDate"
	KindSpecificDateEveryYear Kind = "SpecificDateEveryYear"
)

// Rule is a task cadence. The set of implementations is closed; consumers
// switch over the concrete types.
type Rule interface {
	Kind() Kind
	// String returns the rule in the text form accepted by Parse.
	String() string
	rule()
}

type Daily struct{}

type Weekly struct{}

type Monthly struct{}

type Yearly struct{}

// SpecificWeekday recurs once a week on Day.
type SpecificWeekday struct {
	Day time.Weekday
}

// SpecificDate happens once, on Date.
type SpecificDate struct {
	Date calendar.Date
}

// SpecificDateEveryYear recurs every year on Month/Day.
type SpecificDateEveryYear struct {
	Month time.Month
	Day   int
}

func (Daily) Kind() Kind                 { return KindDaily }
func (Weekly) Kind() Kind                { return KindWeekly }
func (Monthly) Kind() Kind               { return KindMonthly }
func (Yearly) Kind() Kind                { return KindYearly }
func (SpecificWeekday) Kind() Kind       { return KindSpecificWeekday }
func (SpecificDate) Kind() Kind          { return KindSpecificDate }
func (SpecificDateEveryYear) Kind() Kind { return KindSpecificDateEveryYear }

func (Daily) String() string   { return "daily" }
func (Weekly) String() string  { return "weekly" }
func (Monthly) String() string { return "monthly" }
func (Yearly) String() string  { return "yearly" }

func (r SpecificWeekday) String() string {
	return strings.ToLower(r.Day.String())
}

func (r SpecificDate) String() string {
	return strings.ToLower(r.Date.Time().Format("02/Jan/2006"))
}

func (r SpecificDateEveryYear) String() string {
	return strings.ToLower(fmt.Sprintf("%02d/%s", r.Day, r.Month.String()[:3]))
}

func (Daily) rule()                 {}
func (Weekly) rule()                {}
func (Monthly) rule()               {}
func (Yearly) rule()                {}
func (SpecificWeekday) rule()       {}
func (SpecificDate) rule()          {}
func (SpecificDateEveryYear) rule() {}
