package services

import (
	"context"
	"log"
	"time"

	"barkr_server/models"

	"github.com/google/uuid"
)

// DogProfileService manages dog profile records. Each user owns at most one.
type DogProfileService struct {
	Store Store
}

func NewDogProfileService(store Store) *DogProfileService {
	return &DogProfileService{Store: store}
}

// CreateProfile creates the acting user's dog profile, stamping id, owner and
// creation time. Rejects a second profile for the same owner.
func (ps *DogProfileService) CreateProfile(ctx context.Context, ownerID string, profile models.DogProfile) (*models.DogProfile, error) {
	existing, err := ps.Store.GetProfileByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	profile.DogID = uuid.NewString()
	profile.OwnerID = ownerID
	profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ps.Store.PutProfile(ctx, profile); err != nil {
		return nil, err
	}
	log.Printf("Dog profile created: %s (owner %s)", profile.DogID, ownerID)
	return &profile, nil
}

// GetProfile fetches a dog profile by id.
func (ps *DogProfileService) GetProfile(ctx context.Context, dogID string) (*models.DogProfile, error) {
	return ps.Store.GetProfile(ctx, dogID)
}

// GetOwnProfile fetches the acting user's dog profile.
func (ps *DogProfileService) GetOwnProfile(ctx context.Context, ownerID string) (*models.DogProfile, error) {
	return ps.Store.GetProfileByOwner(ctx, ownerID)
}

// UpdateProfile applies field updates to the acting user's profile. Identity,
// ownership and creation time are never touched.
func (ps *DogProfileService) UpdateProfile(ctx context.Context, ownerID string, updates map[string]interface{}) (*models.DogProfile, error) {
	profile, err := ps.Store.GetProfileByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoOwnProfile
	}

	for field, value := range updates {
		switch field {
		case "name":
			if v, ok := value.(string); ok {
				profile.Name = v
			}
		case "age":
			if v, ok := value.(float64); ok { // JSON numbers decode as float64
				profile.Age = int(v)
			}
		case "gender":
			if v, ok := value.(string); ok {
				profile.Gender = v
			}
		case "breed":
			if v, ok := value.(string); ok {
				profile.Breed = v
			}
		case "personality":
			if v, ok := value.(string); ok {
				profile.Personality = v
			}
		case "bio":
			if v, ok := value.(string); ok {
				profile.Bio = v
			}
		case "photo":
			if v, ok := value.(string); ok {
				profile.Photo = v
			}
		case "favoriteArtist":
			if v, ok := value.(string); ok {
				profile.FavoriteArtist = v
			}
		}
	}

	if err := ps.Store.PutProfile(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfile removes the acting user's dog profile.
func (ps *DogProfileService) DeleteProfile(ctx context.Context, ownerID string) error {
	profile, err := ps.Store.GetProfileByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNoOwnProfile
	}
	return ps.Store.DeleteProfile(ctx, profile.DogID)
}
