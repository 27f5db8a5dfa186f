package auth

import (
	"fmt"
	"slices"
	"strings"
)

// Credential is one allow-listed identifier/secret pair.
// Secrets are compared in plain text.
type Credential struct {
	Identifier string
	Secret     string
}

// AllowList is the fixed set of credentials known at startup. It is never
// mutated after NewAllowList returns.
type AllowList struct {
	entries []Credential
}

func NewAllowList(creds []Credential) (AllowList, error) {
	entries := make([]Credential, 0, len(creds))
	for i, c := range creds {
		if strings.TrimSpace(c.Identifier) == "" {
			return AllowList{}, fmt.Errorf("allow-list entry %d: %w", i, ErrEmptyIdentifier)
		}
		entries = append(entries, c)
	}
	return AllowList{entries: entries}, nil
}

// DefaultCredentials are the accounts compiled into the prototype.
func DefaultCredentials() []Credential {
	return []Credential{
		{Identifier: "admin@123.com", Secret: "admin123"},
		{Identifier: "guest@123.com", Secret: "guestpass"},
		{Identifier: "dev@123.com", Secret: "devmode"},
	}
}

// Match finds the first entry whose identifier equals identifier ignoring
// case and whose secret equals secret exactly.
func (l AllowList) Match(identifier, secret string) (Credential, bool) {
	for _, c := range l.entries {
		if strings.EqualFold(c.Identifier, identifier) && c.Secret == secret {
			return c, true
		}
	}
	return Credential{}, false
}

func (l AllowList) Len() int { return len(l.entries) }

func (l AllowList) Credentials() []Credential { return slices.Clone(l.entries) }

// HasDomainSuffix reports whether identifier ends with suffix, ignoring case.
// This is an input rule of the login form; Store.Login does not apply it.
func HasDomainSuffix(identifier, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(identifier)), strings.ToLower(suffix))
}
