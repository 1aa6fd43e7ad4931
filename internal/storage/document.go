package storage

import (
	"fmt"

	"github.com/jeanpaul/contacts/internal/contact"
	"github.com/jeanpaul/contacts/internal/schema"
)

const formatVersion = 1

// document is the on-disk shape of an address book, shared by every codec.
type document struct {
	Version  int     `json:"version" yaml:"version"`
	Contacts []entry `json:"contacts" yaml:"contacts"`
}

type entry struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones,omitempty" yaml:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["version", "contacts"],
	"properties": {
		"version": {"type": "integer", "enum": [1]},
		"contacts": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"phones": {"type": "array", "items": {"type": "string"}},
					"birthday": {"type": "string", "pattern": "^[0-9]{2}\\.[0-9]{2}\\.[0-9]{4}$"}
				}
			}
		}
	}
}`

var validator = schema.NewValidator()

// validate checks a decoded document against documentSchema before any
// record is built from it.
func validate(doc *document) error {
	return validator.Validate(documentSchema, doc)
}

func toDocument(book *contact.AddressBook) *document {
	doc := &document{Version: formatVersion, Contacts: make([]entry, 0, book.Len())}
	for _, r := range book.Records() {
		e := entry{Name: r.Name(), Phones: r.Phones()}
		if b, ok := r.ShowBirthday(); ok {
			e.Birthday = b.String()
		}
		doc.Contacts = append(doc.Contacts, e)
	}
	return doc
}

func fromDocument(doc *document) (*contact.AddressBook, error) {
	book := contact.NewAddressBook()
	for i, e := range doc.Contacts {
		var bd *contact.Birthday
		if e.Birthday != "" {
			b, err := contact.NewBirthday(e.Birthday)
			if err != nil {
				return nil, fmt.Errorf("contact %d (%s): %w", i, e.Name, err)
			}
			bd = &b
		}
		r, err := contact.RestoreRecord(e.Name, e.Phones, bd)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i, err)
		}
		book.AddRecord(r)
	}
	return book, nil
}
