// Package ops is the operation layer between the surfaces (CLI, web, MCP)
// and the core. Surfaces own no domain logic; everything they can do is one
// of the operations here.
package ops

import (
	"crypto/rand"

	"github.com/jonboulle/clockwork"
	"github.com/oklog/ulid/v2"
)

// List limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// record timestamps.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// newULID generates a new ULID from the current clock time.
func newULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(clock.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
