package core

import (
	"fmt"
	"strings"
)

const (
	customIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for component custom IDs
	MaxCustomIDLength = 100
)

// CustomID addresses a component: domain:action[:target[:args...]].
// For cards the target is the session ID, so a click can be routed back to
// its session without any server-side lookup table.
type CustomID struct {
	Domain string
	Action string
	Target string
	Args   []string
}

// Arg returns the argument at i, or "" when absent
func (c CustomID) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// Encode joins the parts. Parts must not contain the separator.
func (c CustomID) Encode() (string, error) {
	parts := []string{c.Domain, c.Action}
	if c.Target != "" || len(c.Args) > 0 {
		parts = append(parts, c.Target)
	}
	parts = append(parts, c.Args...)

	for _, part := range parts {
		if strings.Contains(part, customIDSeparator) {
			return "", fmt.Errorf("custom ID part %q contains %q", part, customIDSeparator)
		}
	}

	encoded := strings.Join(parts, customIDSeparator)
	if len(encoded) > MaxCustomIDLength {
		return "", fmt.Errorf("custom ID %q is longer than %d characters", encoded, MaxCustomIDLength)
	}
	return encoded, nil
}

// ParseCustomID splits a custom ID. Domain and action are required.
func ParseCustomID(s string) (CustomID, error) {
	parts := strings.Split(s, customIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return CustomID{}, fmt.Errorf("invalid custom ID %q: expected domain:action", s)
	}

	id := CustomID{Domain: parts[0], Action: parts[1]}
	if len(parts) > 2 {
		id.Target = parts[2]
		id.Args = parts[3:]
	}
	return id, nil
}

// CustomIDBuilder encodes custom IDs for one domain
type CustomIDBuilder struct {
	domain string
}

func NewCustomIDBuilder(domain string) *CustomIDBuilder {
	return &CustomIDBuilder{domain: domain}
}

// ID encodes an action on target. It panics on IDs Discord would reject,
// which can only come from a programming error.
func (b *CustomIDBuilder) ID(action, target string, args ...string) string {
	encoded, err := CustomID{Domain: b.domain, Action: action, Target: target, Args: args}.Encode()
	if err != nil {
		panic(err)
	}
	return encoded
}
