package contact

import (
	"fmt"
	"time"
)

// DefaultWindow is the look-ahead, in days, for UpcomingBirthdays.
const DefaultWindow = 7

// LeapDayPolicy decides where a 29 February birthday lands in a non-leap year.
type LeapDayPolicy string

const (
	LeapDayMarch1 LeapDayPolicy = "mar1"
	LeapDayFeb28  LeapDayPolicy = "feb28"
)

// ParseLeapDayPolicy accepts "mar1" or "feb28"; empty means mar1.
func ParseLeapDayPolicy(s string) (LeapDayPolicy, error) {
	switch LeapDayPolicy(s) {
	case "", LeapDayMarch1:
		return LeapDayMarch1, nil
	case LeapDayFeb28:
		return LeapDayFeb28, nil
	}
	return "", fmt.Errorf("unknown leap day policy %q (must be mar1 or feb28)", s)
}

// Greeting is one entry of the upcoming birthdays report: the contact and the
// working day on which to congratulate them.
type Greeting struct {
	Name string
	Date time.Time
}

// DateString formats the congratulation date as DD.MM.YYYY.
func (g Greeting) DateString() string { return g.Date.Format(DateLayout) }

// BirthdayQuery holds the tunables of the upcoming birthdays report.
type BirthdayQuery struct {
	Window  int
	LeapDay LeapDayPolicy
}

// UpcomingBirthdays runs the default query (7 days, leap birthdays on 1 March).
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Greeting {
	return BirthdayQuery{Window: DefaultWindow, LeapDay: LeapDayMarch1}.Run(b, today)
}

// Run lists contacts whose next birthday falls within q.Window days of today,
// in book order. Birthdays on a weekend are moved to the following Monday.
func (q BirthdayQuery) Run(b *AddressBook, today time.Time) []Greeting {
	window := q.Window
	if window < 0 {
		window = DefaultWindow
	}
	day := truncate(today)

	var out []Greeting
	for _, r := range b.Records() {
		bd, ok := r.ShowBirthday()
		if !ok {
			continue
		}
		candidate := q.onYear(bd, day.Year())
		if candidate.Before(day) {
			candidate = q.onYear(bd, day.Year()+1)
		}
		if daysBetween(day, candidate) > window {
			continue
		}
		out = append(out, Greeting{Name: r.Name(), Date: congratulationDate(candidate)})
	}
	return out
}

func (q BirthdayQuery) onYear(bd Birthday, year int) time.Time {
	if bd.Month() == time.February && bd.Day() == 29 && !isLeap(year) {
		if q.LeapDay == LeapDayFeb28 {
			return time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC)
		}
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
}

func congratulationDate(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

// truncate drops the clock part of t, keeping its local calendar date.
func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
