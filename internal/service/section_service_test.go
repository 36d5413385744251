package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Modular-CV/backend/internal/errors"
	"github.com/Modular-CV/backend/internal/model"
)

func TestSectionService_CreateRejectsUnknownEntryType(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	section, err := f.sections.Create(ctx, f.account.ID, "Poems", model.EntryType("POEM"))

	assert.Nil(t, section)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "entryType", verr.Issues[0].Path)
	assert.Contains(t, verr.Issues[0].Message, string(model.EntryTypeProfessionalExperience))

	sections, err := f.sections.List(ctx, f.account.ID)
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestSectionService_CreateAcceptsEveryEntryType(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	for _, entryType := range model.EntryTypes {
		section, err := f.sections.Create(ctx, f.account.ID, string(entryType), entryType)
		require.NoError(t, err, entryType)
		assert.Equal(t, entryType, section.EntryType)
	}

	sections, err := f.sections.List(ctx, f.account.ID)
	require.NoError(t, err)
	assert.Len(t, sections, len(model.EntryTypes))
}
