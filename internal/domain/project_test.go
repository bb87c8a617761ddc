package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID_Valid(t *testing.T) {
	cases := []string{"p1", "intro-ds", "Course_2025", "A", strings.Repeat("x", 64)}
	for _, id := range cases {
		p := &Project{ID: id}
		assert.NoError(t, p.ValidateID(), "should accept %q", id)
	}
}

func TestValidateID_Empty(t *testing.T) {
	p := &Project{}
	err := p.ValidateID()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestValidateID_Invalid(t *testing.T) {
	cases := []string{"-leading", "_leading", "has space", "slash/id", "../up", strings.Repeat("x", 65)}
	for _, id := range cases {
		p := &Project{ID: id}
		assert.Error(t, p.ValidateID(), "should reject %q", id)
	}
}
