package store

import (
	"context"
	"testing"

	"devconnect/internal/models"
	"devconnect/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_SignUpSetsDefaults(t *testing.T) {
	identity := newIdentity(t, storage.NewMemory())

	user := signUp(t, identity, "a@x.com", "A", "a")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Developer", user.Title)
	assert.Empty(t, user.Skills)
	assert.True(t, identity.IsAuthenticated())
}

func TestIdentity_SignInIsCaseInsensitive(t *testing.T) {
	identity := newIdentity(t, storage.NewMemory())
	created := signUp(t, identity, "a@x.com", "A", "a")
	require.NoError(t, identity.SignOut(context.Background()))

	user, err := identity.SignIn(context.Background(), "A@X.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestIdentity_SignInUnknownEmail(t *testing.T) {
	identity := newIdentity(t, storage.NewMemory())

	_, err := identity.SignIn(context.Background(), "nobody@x.com", "pw")
	assert.True(t, models.IsNotFound(err))
	assert.False(t, identity.IsAuthenticated())
}

func TestIdentity_SignUpOverwritesDirectoryEntry(t *testing.T) {
	identity := newIdentity(t, storage.NewMemory())
	first := signUp(t, identity, "a@x.com", "First", "first")
	second := signUp(t, identity, "a@x.com", "Second", "second")
	require.NotEqual(t, first.ID, second.ID)
	require.NoError(t, identity.SignOut(context.Background()))

	// The later sign-up wins the directory slot.
	user, err := identity.SignIn(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, second.ID, user.ID)
	assert.Equal(t, "Second", user.Name)
}

func TestIdentity_SignOutKeepsDirectory(t *testing.T) {
	blobStore := storage.NewMemory()
	identity := newIdentity(t, blobStore)
	signUp(t, identity, "a@x.com", "A", "a")

	require.NoError(t, identity.SignOut(context.Background()))
	assert.Nil(t, identity.CurrentUser())

	_, err := blobStore.Get(context.Background(), KeyCurrentUser)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	_, err = identity.SignIn(context.Background(), "a@x.com", "pw")
	assert.NoError(t, err)
}

func TestIdentity_SessionRestoredAcrossRestarts(t *testing.T) {
	blobStore := storage.NewMemory()
	identity := newIdentity(t, blobStore)
	created := signUp(t, identity, "a@x.com", "A", "a")

	restarted := newIdentity(t, blobStore)
	require.True(t, restarted.IsAuthenticated())
	assert.Equal(t, created.ID, restarted.CurrentUser().ID)
}

func TestIdentity_UpdateProfile(t *testing.T) {
	blobStore := storage.NewMemory()
	identity := newIdentity(t, blobStore)
	signUp(t, identity, "a@x.com", "A", "a")

	bio := "Building things in Go"
	skills := []string{"Go", "TypeScript"}
	updated, err := identity.UpdateProfile(context.Background(), models.ProfileUpdate{
		Bio:    &bio,
		Skills: &skills,
	})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, skills, updated.Skills)
	// Untouched fields survive the merge.
	assert.Equal(t, "Developer", updated.Title)

	// The directory entry is updated too: a fresh sign-in sees the new bio.
	require.NoError(t, identity.SignOut(context.Background()))
	user, err := identity.SignIn(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, bio, user.Bio)
}

func TestIdentity_UpdateProfileUnauthenticated(t *testing.T) {
	identity := newIdentity(t, storage.NewMemory())

	name := "Nope"
	_, err := identity.UpdateProfile(context.Background(), models.ProfileUpdate{Name: &name})
	assert.True(t, models.IsUnauthenticated(err))
}

func TestIdentity_UpdateAvatar(t *testing.T) {
	identity := newIdentity(t, storage.NewMemory())
	signUp(t, identity, "a@x.com", "A", "a")

	updated, err := identity.UpdateAvatar(context.Background(), "data:image/webp;base64,abc")
	require.NoError(t, err)
	assert.Equal(t, "data:image/webp;base64,abc", updated.AvatarURL)
}

func TestIdentity_UpdateAvatarUnauthenticated(t *testing.T) {
	identity := newIdentity(t, storage.NewMemory())

	_, err := identity.UpdateAvatar(context.Background(), "ref")
	assert.True(t, models.IsUnauthenticated(err))
}

func TestIdentity_CurrentUserReturnsCopy(t *testing.T) {
	identity := newIdentity(t, storage.NewMemory())
	signUp(t, identity, "a@x.com", "A", "a")

	user := identity.CurrentUser()
	user.Name = "Mutated"
	assert.Equal(t, "A", identity.CurrentUser().Name)
}
