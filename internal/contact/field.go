package contact

import (
	"regexp"
	"time"
)

// DateLayout is the only accepted birthday format (DD.MM.YYYY).
const DateLayout = "02.01.2006"

var (
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	dateRe  = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)
)

// Name identifies a contact. It is immutable once constructed.
type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	if s == "" {
		return Name{}, &ValidationError{Field: "name", Value: s, Reason: "name is required"}
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Phone is a string of exactly ten ASCII digits.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	if !phoneRe.MatchString(s) {
		return Phone{}, &ValidationError{Field: "phone", Value: s, Reason: "phone must be exactly 10 digits"}
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date with no time component, kept at midnight UTC.
type Birthday struct {
	date time.Time
}

// NewBirthday parses s as DD.MM.YYYY. Impossible dates such as 31.02.2024 are
// rejected rather than normalised.
func NewBirthday(s string) (Birthday, error) {
	invalid := &ValidationError{Field: "birthday", Value: s, Reason: "Invalid date format. Use DD.MM.YYYY"}
	if !dateRe.MatchString(s) {
		return Birthday{}, invalid
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return Birthday{}, invalid
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday as a time.Time at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) Day() int          { return b.date.Day() }
func (b Birthday) Month() time.Month { return b.date.Month() }

func (b Birthday) String() string { return b.date.Format(DateLayout) }
