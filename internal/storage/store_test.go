package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/contacts/internal/contact"
)

func sampleBook(t *testing.T) *contact.AddressBook {
	t.Helper()
	book := contact.NewAddressBook()

	ann, err := contact.NewRecord("Ann")
	require.NoError(t, err)
	require.NoError(t, ann.AddPhone("1111111111"))
	require.NoError(t, ann.AddPhone("2222222222"))
	require.NoError(t, ann.AddBirthday("12.01.1990"))
	book.AddRecord(ann)

	bob, err := contact.NewRecord("Bob")
	require.NoError(t, err)
	require.NoError(t, bob.AddPhone("3333333333"))
	// edited phones are stored as-is
	require.NoError(t, bob.EditPhone("3333333333", "333-333"))
	book.AddRecord(bob)

	cara, err := contact.NewRecord("Cara")
	require.NoError(t, err)
	require.NoError(t, cara.AddBirthday("29.02.1992"))
	book.AddRecord(cara)

	return book
}

func assertSameBook(t *testing.T, want, got *contact.AddressBook) {
	t.Helper()
	require.Equal(t, want.Names(), got.Names())
	for _, w := range want.Records() {
		g, ok := got.Find(w.Name())
		require.True(t, ok, w.Name())
		assert.Equal(t, w.Phones(), g.Phones(), w.Name())

		wb, wok := w.ShowBirthday()
		gb, gok := g.ShowBirthday()
		assert.Equal(t, wok, gok, w.Name())
		assert.True(t, wb.Date().Equal(gb.Date()), w.Name())
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"book.json", "book.yaml", "book.yml", "book.dat"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sampleBook(t)

			require.NoError(t, New(path, nil).Save(want))
			got, err := New(path, nil).Load()
			require.NoError(t, err)
			assertSameBook(t, want, got)
		})
	}
}

func TestStore_RoundTripAfterChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.json")
	want := sampleBook(t)

	_, err := want.ChangePhone("Ann", "2222222222", 0)
	require.True(t, contact.IsValidation(err))
	_, err = want.ChangePhone("Ann", "4444444444", 0)
	require.NoError(t, err)

	require.NoError(t, New(path, nil).Save(want))
	got, err := New(path, nil).Load()
	require.NoError(t, err)
	assertSameBook(t, want, got)

	ann, ok := got.Find("Ann")
	require.True(t, ok)
	assert.Equal(t, []string{"4444444444", "2222222222"}, ann.Phones())
}

func TestStore_LoadMissingFile(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "absent.json"), nil).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	book, err := New(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
}

func TestStore_LoadRejectsInvalidDocument(t *testing.T) {
	cases := map[string]string{
		"empty name":   `{"version": 1, "contacts": [{"name": ""}]}`,
		"bad birthday": `{"version": 1, "contacts": [{"name": "Ann", "birthday": "1990-01-12"}]}`,
		"bad version":  `{"version": 7, "contacts": []}`,
		"bad date":     `{"version": 1, "contacts": [{"name": "Ann", "birthday": "31.02.1990"}]}`,
		"not json":     `this is not json`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "book.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := New(path, nil).Load()
			assert.Error(t, err)
		})
	}
}

func TestStore_SaveCreatesDirectoryAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "book.json")
	s := New(path, nil)

	require.NoError(t, s.Save(sampleBook(t)))
	require.NoError(t, s.Save(contact.NewAddressBook()))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	require.NoError(t, ExportXLSX(sampleBook(t), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Name", "Phones", "Birthday"}, rows[0])
	assert.Equal(t, []string{"Ann", "1111111111; 2222222222", "12.01.1990"}, rows[1])
	require.GreaterOrEqual(t, len(rows[2]), 2)
	assert.Equal(t, "Bob", rows[2][0])
	assert.Equal(t, "333-333", rows[2][1])
	require.Len(t, rows[3], 3)
	assert.Equal(t, "Cara", rows[3][0])
	assert.Equal(t, "29.02.1992", rows[3][2])
}
