package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Modular-CV/backend/internal/model"
)

func TestSectionRepository_OwnershipScoping(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewSectionRepository(gormDB)
	ctx := context.Background()
	alice := seedAccount(t, gormDB, "alice@test.com")
	bob := seedAccount(t, gormDB, "bob@test.com")

	section := &model.Section{Title: "Work", EntryType: model.EntryTypeProject, AccountID: alice.ID}
	require.NoError(t, repo.Create(ctx, section))

	found, err := repo.FindOwned(ctx, alice.ID, section.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EntryTypeProject, found.EntryType)

	_, err = repo.FindOwned(ctx, bob.ID, section.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := repo.ListByAccount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLinkRepository(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewLinkRepository(gormDB)
	ctx := context.Background()
	alice := seedAccount(t, gormDB, "alice@test.com")

	link := &model.Link{URL: "https://github.com/alice", AccountID: alice.ID}
	require.NoError(t, repo.Create(ctx, link))

	_, err := repo.FindOwned(ctx, alice.ID, link.ID)
	assert.NoError(t, err)
	_, err = repo.FindOwned(ctx, uuid.New(), link.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	links, err := repo.ListByAccount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestResumeAndProfileRepositories(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	alice := seedAccount(t, gormDB, "alice@test.com")

	resumes := NewResumeRepository(gormDB)
	resume := &model.Resume{Title: "Backend", AccountID: alice.ID}
	require.NoError(t, resumes.Create(ctx, resume))
	got, err := resumes.FindOwned(ctx, alice.ID, resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend", got.Title)
	list, err := resumes.ListByAccount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	profiles := NewProfileRepository(gormDB)
	require.NoError(t, profiles.Create(ctx, &model.Profile{FullName: "Alice Doe", AccountID: alice.ID}))
	plist, err := profiles.ListByAccount(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, plist, 1)
	assert.Equal(t, "Alice Doe", plist[0].FullName)
}
