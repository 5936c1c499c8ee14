package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barkr_server/models"
)

func TestCreateProfile_StampsIdentityAndCreation(t *testing.T) {
	store := NewMemoryStore()
	ps := NewDogProfileService(store)

	created, err := ps.CreateProfile(context.Background(), "userA", models.DogProfile{
		Name:           "Rex",
		FavoriteArtist: "Drake",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.DogID)
	assert.Equal(t, "userA", created.OwnerID)
	assert.NotEmpty(t, created.CreatedAt)

	byOwner, err := ps.GetOwnProfile(context.Background(), "userA")
	require.NoError(t, err)
	require.NotNil(t, byOwner)
	assert.Equal(t, created.DogID, byOwner.DogID)
}

func TestCreateProfile_OneDogPerUser(t *testing.T) {
	store := NewMemoryStore()
	ps := NewDogProfileService(store)

	_, err := ps.CreateProfile(context.Background(), "userA", models.DogProfile{Name: "Rex"})
	require.NoError(t, err)

	_, err = ps.CreateProfile(context.Background(), "userA", models.DogProfile{Name: "Fido"})
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestUpdateProfile_KeepsIdentityFields(t *testing.T) {
	store := NewMemoryStore()
	ps := NewDogProfileService(store)

	created, err := ps.CreateProfile(context.Background(), "userA", models.DogProfile{Name: "Rex"})
	require.NoError(t, err)

	updated, err := ps.UpdateProfile(context.Background(), "userA", map[string]interface{}{
		"name":           "Rexy",
		"age":            float64(4),
		"favoriteArtist": "Drake",
		"dogId":          "evil-overwrite",
	})
	require.NoError(t, err)
	assert.Equal(t, created.DogID, updated.DogID, "identity never changes on update")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Rexy", updated.Name)
	assert.Equal(t, 4, updated.Age)
	assert.Equal(t, "Drake", updated.FavoriteArtist)
}

func TestUpdateProfile_WithoutProfile(t *testing.T) {
	store := NewMemoryStore()
	ps := NewDogProfileService(store)

	_, err := ps.UpdateProfile(context.Background(), "userA", map[string]interface{}{"name": "Rexy"})
	assert.ErrorIs(t, err, ErrNoOwnProfile)
}

func TestDeleteProfile(t *testing.T) {
	store := NewMemoryStore()
	ps := NewDogProfileService(store)

	created, err := ps.CreateProfile(context.Background(), "userA", models.DogProfile{Name: "Rex"})
	require.NoError(t, err)

	require.NoError(t, ps.DeleteProfile(context.Background(), "userA"))

	gone, err := ps.GetProfile(context.Background(), created.DogID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
