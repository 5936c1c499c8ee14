package services

import (
	"context"

	"barkr_server/models"
)

// Store is the persistence surface the matchmaking core runs on. Lookups
// return (nil, nil) for missing records; only transport/storage failures are
// errors. UpsertPreference must be a single atomic write keyed by the
// (actor, target) pair so duplicate submissions collapse into one row.
type Store interface {
	PutProfile(ctx context.Context, profile models.DogProfile) error
	GetProfile(ctx context.Context, dogID string) (*models.DogProfile, error)
	GetProfileByOwner(ctx context.Context, ownerID string) (*models.DogProfile, error)
	DeleteProfile(ctx context.Context, dogID string) error

	UpsertPreference(ctx context.Context, actorID, targetDogID string, value int) error
	FindPreference(ctx context.Context, actorID, targetDogID string) (*models.Preference, error)

	// ListIncomingLikes returns every live +1 preference targeting the dog.
	ListIncomingLikes(ctx context.Context, targetDogID string) ([]models.Preference, error)

	// FeedCandidate returns the newest dog the viewer has not swiped on and
	// does not own, or nil when the feed is exhausted.
	FeedCandidate(ctx context.Context, viewerID string) (*models.DogProfile, error)
}
