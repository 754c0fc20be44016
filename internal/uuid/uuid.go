// uuid generates identifiers for card sessions and allows mocking them in tests
package uuid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// CompactGenerator produces dash-free UUIDs. Session IDs travel inside
// component custom IDs, which Discord caps at 100 characters.
type CompactGenerator struct{}

// New generates a new 32 character hex ID
func (g *CompactGenerator) New() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// NewCompactGenerator creates a new CompactGenerator
func NewCompactGenerator() *CompactGenerator {
	return &CompactGenerator{}
}

// SequenceGenerator returns predictable IDs, for tests
type SequenceGenerator struct {
	Prefix string
	next   int
}

// New returns Prefix followed by a zero-padded counter
func (g *SequenceGenerator) New() string {
	g.next++
	return fmt.Sprintf("%s%03d", g.Prefix, g.next)
}
