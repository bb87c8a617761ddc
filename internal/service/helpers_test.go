package service

import (
	"errors"
	"testing"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGuard(t *testing.T) {
	g := newRunGuard()

	done, err := g.begin("p1", domain.ToolBlooms)
	require.NoError(t, err)

	_, err = g.begin("p1", domain.ToolBlooms)
	require.ErrorIs(t, err, ErrRunInProgress)
	assert.Equal(t, "blooms on project p1: run already in progress", err.Error())

	other, err := g.begin("p2", domain.ToolBlooms)
	require.NoError(t, err)
	other()

	done()
	again, err := g.begin("p1", domain.ToolBlooms)
	require.NoError(t, err)
	again()
}

func TestPreconditionReason(t *testing.T) {
	assert.Equal(t, "project has no course outline", preconditionReason(domain.ToolZPD))
	assert.Equal(t, "project has no design documents", preconditionReason(domain.ToolStyleGuide))
	assert.Equal(t, "project has no materials", preconditionReason(domain.ToolSourceMaterial))
}

func TestFormatValidationErrors(t *testing.T) {
	err := formatValidationErrors([]error{errors.New("a"), errors.New("b")})
	assert.Equal(t, "import validation failed (2 errors):\n  - a\n  - b", err.Error())
}
