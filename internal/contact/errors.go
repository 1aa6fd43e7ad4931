package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoPhones is returned by ChangePhone when the contact has nothing to edit.
var ErrNoPhones = errors.New("contact has no phones")

// ValidationError reports malformed input for a single field.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// NotFoundError reports a contact or phone that does not exist.
type NotFoundError struct {
	Kind string // "contact" or "phone"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

// AmbiguousPhoneError is returned by ChangePhone when the contact has several
// phones and the caller did not say which one to replace. The caller is
// expected to pick an index into Candidates and call again.
type AmbiguousPhoneError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousPhoneError) Error() string {
	return fmt.Sprintf("contact %q has %d phones: %s", e.Name, len(e.Candidates), strings.Join(e.Candidates, ", "))
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is (or wraps) a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
