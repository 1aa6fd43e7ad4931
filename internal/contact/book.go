package contact

import "fmt"

// NoPick tells ChangePhone that the caller has not chosen a phone yet.
const NoPick = -1

// AddressBook maps contact names to records. Iteration follows insertion
// order; overwriting a name keeps its first position.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts r, replacing any record with the same name.
func (b *AddressBook) AddRecord(r *Record) {
	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record for name. A missing name is not an error.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record for name, or returns *NotFoundError.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return &NotFoundError{Kind: "contact", Key: name}
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

func (b *AddressBook) Len() int { return len(b.order) }

// Names returns the contact names in insertion order.
func (b *AddressBook) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Records returns the records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, n := range b.order {
		out = append(out, b.records[n])
	}
	return out
}

// ChangePhone replaces one of name's phones with newPhone and returns the
// value that was replaced.
//
// With a single phone, pick is ignored. With several phones and pick == NoPick
// it returns *AmbiguousPhoneError listing the candidates; the caller chooses an
// index and calls again.
func (b *AddressBook) ChangePhone(name, newPhone string, pick int) (string, error) {
	r, ok := b.Find(name)
	if !ok {
		return "", &NotFoundError{Kind: "contact", Key: name}
	}
	phones := r.Phones()
	var old string
	switch {
	case len(phones) == 0:
		return "", ErrNoPhones
	case len(phones) == 1:
		old = phones[0]
	case pick == NoPick:
		return "", &AmbiguousPhoneError{Name: name, Candidates: phones}
	case pick < 0 || pick >= len(phones):
		return "", &ValidationError{Field: "index", Value: fmt.Sprint(pick), Reason: "phone index out of range"}
	default:
		old = phones[pick]
	}
	if err := r.EditPhone(old, newPhone); err != nil {
		return "", err
	}
	return old, nil
}
