package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jeanpaul/contacts/internal/contact"
)

// Store persists an address book to a single file. The format follows the
// file extension (.yaml/.yml for YAML, JSON otherwise).
type Store struct {
	path  string
	codec codec
	log   *zap.Logger
}

func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, codec: codecFor(path), log: log.Named("storage")}
}

func (s *Store) Path() string { return s.path }

// Load reads the address book. A missing or empty file yields an empty book.
func (s *Store) Load() (*contact.AddressBook, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("no data file, starting empty", zap.String("path", s.path))
			return contact.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	var doc document
	if err := s.codec.Decode(f, &doc); err != nil {
		if errors.Is(err, io.EOF) {
			return contact.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	book, err := fromDocument(&doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	s.log.Info("address book loaded",
		zap.String("path", s.path),
		zap.String("format", s.codec.Name()),
		zap.Int("contacts", book.Len()))
	return book, nil
}

// Save writes the book to a temporary file next to the target and renames it
// into place, so a failed write never truncates the previous data.
func (s *Store) Save(book *contact.AddressBook) (err error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".addressbook-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	err = s.codec.Encode(tmp, toDocument(book))
	err = multierr.Append(err, tmp.Close())
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	s.log.Info("address book saved",
		zap.String("path", s.path),
		zap.String("format", s.codec.Name()),
		zap.Int("contacts", book.Len()))
	return nil
}
