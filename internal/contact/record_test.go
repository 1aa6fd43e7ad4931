package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestNewRecord_EmptyName(t *testing.T) {
	_, err := NewRecord("")
	assert.True(t, IsValidation(err))
}

func TestRecord_AddPhoneIdempotent(t *testing.T) {
	r := newTestRecord(t, "Ann", "1111111111", "2222222222")
	require.NoError(t, r.AddPhone("1111111111"))
	assert.Equal(t, []string{"1111111111", "2222222222"}, r.Phones())
}

func TestRecord_AddPhoneInvalid(t *testing.T) {
	r := newTestRecord(t, "Ann")
	err := r.AddPhone("12345")
	assert.True(t, IsValidation(err))
	assert.Empty(t, r.Phones())
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newTestRecord(t, "Ann", "1111111111", "2222222222", "3333333333")
	require.NoError(t, r.RemovePhone("2222222222"))
	assert.Equal(t, []string{"1111111111", "3333333333"}, r.Phones())

	_, err := r.FindPhone("2222222222")
	assert.True(t, IsNotFound(err))

	err = r.RemovePhone("2222222222")
	assert.True(t, IsNotFound(err))
}

func TestRecord_EditPhone(t *testing.T) {
	r := newTestRecord(t, "Ann", "1111111111", "2222222222")
	require.NoError(t, r.EditPhone("1111111111", "9999999999"))

	got, err := r.FindPhone("9999999999")
	require.NoError(t, err)
	assert.Equal(t, "9999999999", got)

	_, err = r.FindPhone("1111111111")
	assert.True(t, IsNotFound(err))

	// position is kept
	assert.Equal(t, []string{"9999999999", "2222222222"}, r.Phones())

	err = r.EditPhone("0000000000", "1234567890")
	assert.True(t, IsNotFound(err))
}

func TestRecord_EditPhoneRejectsDuplicate(t *testing.T) {
	r := newTestRecord(t, "Ann", "1111111111", "2222222222")
	err := r.EditPhone("1111111111", "2222222222")
	assert.True(t, IsValidation(err))
	assert.Equal(t, []string{"1111111111", "2222222222"}, r.Phones())

	// replacing a phone with itself is allowed
	require.NoError(t, r.EditPhone("2222222222", "2222222222"))
}

func TestRecord_EditPhoneDoesNotValidate(t *testing.T) {
	r := newTestRecord(t, "Ann", "1111111111")
	require.NoError(t, r.EditPhone("1111111111", "abc"))
	assert.Equal(t, []string{"abc"}, r.Phones())
}

func TestRecord_Birthday(t *testing.T) {
	r := newTestRecord(t, "Ann")
	_, ok := r.ShowBirthday()
	assert.False(t, ok)

	require.NoError(t, r.AddBirthday("12.01.1990"))
	require.NoError(t, r.AddBirthday("13.02.1991"))
	b, ok := r.ShowBirthday()
	require.True(t, ok)
	assert.Equal(t, "13.02.1991", b.String())

	err := r.AddBirthday("31.02.1991")
	assert.True(t, IsValidation(err))
	b, _ = r.ShowBirthday()
	assert.Equal(t, "13.02.1991", b.String(), "failed update must keep the old birthday")
}

func TestRecord_String(t *testing.T) {
	r := newTestRecord(t, "Ann", "1111111111", "2222222222")
	assert.Equal(t, "Contact name: Ann, phones: 1111111111; 2222222222", r.String())

	empty := newTestRecord(t, "Bob")
	assert.Equal(t, "Contact name: Bob, phones: ", empty.String())
}

func TestRestoreRecord_KeepsStoredPhones(t *testing.T) {
	b, err := NewBirthday("01.03.1992")
	require.NoError(t, err)

	r, err := RestoreRecord("Cara", []string{"1111111111", "abc", "1111111111"}, &b)
	require.NoError(t, err)
	assert.Equal(t, []string{"1111111111", "abc"}, r.Phones())
	got, ok := r.ShowBirthday()
	require.True(t, ok)
	assert.Equal(t, "01.03.1992", got.String())

	_, err = RestoreRecord("", nil, nil)
	assert.True(t, IsValidation(err))
}
