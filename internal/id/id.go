// Package id generates opaque identifiers for line items and debts.
// Generation is a capability so tests can inject a deterministic sequence.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator produces unique string IDs. IDs are opaque and URL-safe;
// uniqueness is probabilistic within a running session, which is enough
// for this domain.
type Generator interface {
	NewID() string
}

// Random generates IDs from UUID randomness, compacted to the hex form
// without dashes.
type Random struct{}

// NewID returns a fresh random identifier.
func (Random) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Sequence generates "id-1", "id-2", ... for deterministic tests.
type Sequence struct {
	n int
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}
