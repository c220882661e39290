package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"returnex/internal/domain/entity"
)

func TestNormalizeContact(t *testing.T) {
	email := NormalizeContact("  John.Doe@Example.COM ")
	assert.Equal(t, ContactKindEmail, email.Kind)
	assert.Equal(t, "john.doe@example.com", email.Canonical)

	// "@" wins over digits
	weird := NormalizeContact("test@123")
	assert.Equal(t, ContactKindEmail, weird.Kind)

	phone := NormalizeContact("+1 (555) 010-2030")
	assert.Equal(t, ContactKindPhone, phone.Kind)
	assert.Equal(t, "15550102030", phone.Canonical)

	assert.Equal(t, ContactKindUnknown, NormalizeContact("   ").Kind)
	assert.Equal(t, ContactKindUnknown, NormalizeContact("no-digits-here").Kind)
}

func TestContactMatches(t *testing.T) {
	assert.True(t, ContactMatches("John@Example.com", "john@example.com"))
	assert.True(t, ContactMatches("+1 555-010-2030", "15550102030"))
	assert.True(t, ContactMatches("(555) 010 2030", "555.010.2030"))

	assert.False(t, ContactMatches("john@example.com", "jane@example.com"))
	assert.False(t, ContactMatches("5550102030", "5550102031"))
	assert.False(t, ContactMatches("", "anything"))

	// different kinds never canonical-match
	assert.False(t, ContactMatches("5550102030", "john@example.com"))

	// raw equality fallback for strings neither side can normalize
	assert.True(t, ContactMatches("no-digits-here", "no-digits-here"))
}

func TestMatchAnyContact(t *testing.T) {
	candidates := entity.ContactCandidates{
		Emails: []string{"buyer@example.com", "billing@example.com"},
		Phones: []string{"+62 812-0000-1111"},
	}

	assert.True(t, MatchAnyContact(candidates, "BUYER@example.com"))
	assert.True(t, MatchAnyContact(candidates, "6281200001111"))
	assert.False(t, MatchAnyContact(candidates, "stranger@example.com"))
	assert.False(t, MatchAnyContact(entity.ContactCandidates{}, "buyer@example.com"))
}
