package services

import "errors"

// Error taxonomy for the matchmaking core. Controllers map these onto HTTP
// statuses; none of them is fatal to the process.
var (
	// ErrInvalidDirection rejects a swipe whose direction is neither
	// "like" nor "dislike". No state change.
	ErrInvalidDirection = errors.New("invalid swipe direction")

	// ErrNoOwnProfile means the acting user tried to like (or list matches)
	// without having created a dog profile first.
	ErrNoOwnProfile = errors.New("acting user has no dog profile")

	// ErrProfileGone means the target dog profile no longer exists.
	ErrProfileGone = errors.New("target dog profile not found")

	// ErrUnknownChallenge means the submitted challenge key is not in the
	// target artist's challenge set (stale or tampered gate link).
	ErrUnknownChallenge = errors.New("unknown challenge for target artist")

	// ErrProfileExists guards the one-dog-per-user invariant.
	ErrProfileExists = errors.New("user already has a dog profile")
)
