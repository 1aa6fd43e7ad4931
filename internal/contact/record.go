package contact

import (
	"fmt"
	"strings"
)

// Record is a single contact: an immutable name, an ordered set of phones
// and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// RestoreRecord rebuilds a record from persisted state. Phones are taken as
// stored because EditPhone does not validate its replacement value; repeated
// values in a hand-edited file collapse to one.
func RestoreRecord(name string, phones []string, birthday *Birthday) (*Record, error) {
	r, err := NewRecord(name)
	if err != nil {
		return nil, err
	}
	for _, p := range phones {
		if r.indexOf(p) >= 0 {
			continue
		}
		r.phones = append(r.phones, Phone{value: p})
	}
	if birthday != nil {
		b := *birthday
		r.birthday = &b
	}
	return r, nil
}

func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the phone values in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.value
	}
	return out
}

func (r *Record) indexOf(phone string) int {
	for i, p := range r.phones {
		if p.value == phone {
			return i
		}
	}
	return -1
}

// AddPhone validates phone and appends it. Adding a phone that is already
// present is a no-op.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	if r.indexOf(phone) >= 0 {
		return nil
	}
	r.phones = append(r.phones, p)
	return nil
}

func (r *Record) RemovePhone(phone string) error {
	i := r.indexOf(phone)
	if i < 0 {
		return &NotFoundError{Kind: "phone", Key: phone}
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces oldPhone with newPhone in place. The new value is not
// format-checked, but it may not duplicate another phone of the record.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	i := r.indexOf(oldPhone)
	if i < 0 {
		return &NotFoundError{Kind: "phone", Key: oldPhone}
	}
	if j := r.indexOf(newPhone); j >= 0 && j != i {
		return &ValidationError{Field: "phone", Value: newPhone, Reason: "phone already exists"}
	}
	r.phones[i].value = newPhone
	return nil
}

func (r *Record) FindPhone(phone string) (string, error) {
	i := r.indexOf(phone)
	if i < 0 {
		return "", &NotFoundError{Kind: "phone", Key: phone}
	}
	return r.phones[i].value, nil
}

// AddBirthday parses s and replaces any existing birthday.
func (r *Record) AddBirthday(s string) error {
	b, err := NewBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// ShowBirthday returns the birthday and whether one is set.
func (r *Record) ShowBirthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(r.Phones(), "; "))
}
