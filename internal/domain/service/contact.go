package service

import (
	"strings"

	"returnex/internal/domain/entity"
)

const (
	ContactKindEmail   = "email"
	ContactKindPhone   = "phone"
	ContactKindUnknown = "unknown"
)

type NormalizedContact struct {
	Kind      string
	Canonical string
}

// NormalizeContact classifies a free-text contact string and reduces it to a
// canonical comparable form. Presence of "@" is the email discriminator; a
// digit-count heuristic would misread strings like "test@123" as phones.
// Emails canonicalize to lowercase trimmed, phones to digits only.
func NormalizeContact(raw string) NormalizedContact {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NormalizedContact{Kind: ContactKindUnknown}
	}

	if strings.Contains(trimmed, "@") {
		return NormalizedContact{
			Kind:      ContactKindEmail,
			Canonical: strings.ToLower(trimmed),
		}
	}

	digits := stripNonDigits(trimmed)
	if digits == "" {
		return NormalizedContact{Kind: ContactKindUnknown, Canonical: trimmed}
	}

	return NormalizedContact{Kind: ContactKindPhone, Canonical: digits}
}

// ContactMatches reports whether a stored candidate and a customer-supplied
// input refer to the same contact: canonical equality of the same kind, or an
// exact raw match as a fallback for malformed numbers that still compare
// verbatim.
func ContactMatches(candidate, input string) bool {
	if strings.TrimSpace(candidate) == "" {
		return false
	}

	c := NormalizeContact(candidate)
	in := NormalizeContact(input)

	if c.Kind != ContactKindUnknown && c.Kind == in.Kind && c.Canonical == in.Canonical {
		return true
	}

	return candidate == input
}

// MatchAnyContact tries the input against every collected candidate.
func MatchAnyContact(candidates entity.ContactCandidates, input string) bool {
	for _, email := range candidates.Emails {
		if ContactMatches(email, input) {
			return true
		}
	}
	for _, phone := range candidates.Phones {
		if ContactMatches(phone, input) {
			return true
		}
	}
	return false
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
