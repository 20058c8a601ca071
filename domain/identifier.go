package domain

import (
	"regexp"
	"strings"
)

// IdentifierKind classifies a login identifier.
type IdentifierKind int

const (
	IdentifierUsername IdentifierKind = iota
	IdentifierEmail
	IdentifierPhone
)

// Identifier is a login identifier classified exactly once at the boundary.
// Downstream code switches on Kind and never re-inspects the raw string.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// ClassifyIdentifier decides whether raw is a phone number, an email address
// or a username. Digits with an optional leading plus classify as phone,
// anything containing '@' as email, everything else as username.
func ClassifyIdentifier(raw string) Identifier {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case phonePattern.MatchString(v):
		return Identifier{Kind: IdentifierPhone, Value: v}
	case strings.Contains(v, "@"):
		return Identifier{Kind: IdentifierEmail, Value: v}
	default:
		return Identifier{Kind: IdentifierUsername, Value: v}
	}
}
