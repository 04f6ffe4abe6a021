// Package typeid issues the prefixed, sortable ids used for canvas elements
// and editing sessions.
package typeid

import (
	"errors"
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixElement = "el"
	PrefixSession = "sess"
)

var (
	ErrMalformed   = errors.New("malformed id")
	ErrWrongPrefix = errors.New("wrong id prefix")
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewElementID() string { return New(PrefixElement) }
func NewSessionID() string { return New(PrefixSession) }

// Validate checks that id parses and carries expectedPrefix.
func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrMalformed, id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("%w: want %q, got %q in %q", ErrWrongPrefix, expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
