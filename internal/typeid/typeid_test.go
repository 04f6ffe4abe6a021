package typeid

import (
	"errors"
	"strings"
	"testing"
)

func TestNewElementIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewElementID()
		if !strings.HasPrefix(id, PrefixElement+"_") {
			t.Fatalf("NewElementID() = %q, want prefix %q", id, PrefixElement+"_")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		prefix  string
		wantErr error
	}{
		{"element ok", NewElementID(), PrefixElement, nil},
		{"session ok", NewSessionID(), PrefixSession, nil},
		{"wrong prefix", NewSessionID(), PrefixElement, ErrWrongPrefix},
		{"garbage", "not an id", PrefixElement, ErrMalformed},
		{"short suffix", "sess_missing", PrefixSession, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id, tt.prefix)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q, %q) error = %v, want %v", tt.id, tt.prefix, err, tt.wantErr)
			}
		})
	}
}
