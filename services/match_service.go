package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"barkr_server/models"
)

// SwipeOutcome is the typed result of recording a swipe.
type SwipeOutcome int

const (
	// OutcomeRecorded: the preference row was written, nothing else happens.
	OutcomeRecorded SwipeOutcome = iota

	// OutcomeRouteToGate: the like completed a mutual pair, so the write is
	// held back until the actor passes the song gate for the target.
	OutcomeRouteToGate
)

// MatchService owns the swipe state machine and the pending/confirmed match
// views. A confirmed match is two independent directed +1 rows; neither row's
// existence is ever assumed from the other's.
type MatchService struct {
	Store Store
}

func NewMatchService(store Store) *MatchService {
	return &MatchService{Store: store}
}

// RecordSwipe records a like or dislike from actorID toward targetDogID.
//
// Dislikes always upsert immediately. A like upserts immediately unless the
// target's owner already likes the actor's dog back; in that case nothing is
// written and the caller must route the actor through the song gate, whose
// pass is the only path to FinalizeLike. The first user to like a pair never
// sees a gate; the second always does.
func (ms *MatchService) RecordSwipe(ctx context.Context, actorID, targetDogID, direction string) (SwipeOutcome, error) {
	if targetDogID == "" {
		return 0, ErrProfileGone
	}

	switch direction {
	case models.DirectionDislike:
		if err := ms.Store.UpsertPreference(ctx, actorID, targetDogID, models.ValueDislike); err != nil {
			return 0, fmt.Errorf("failed to record dislike: %w", err)
		}
		return OutcomeRecorded, nil
	case models.DirectionLike:
		// handled below
	default:
		return 0, ErrInvalidDirection
	}

	own, err := ms.Store.GetProfileByOwner(ctx, actorID)
	if err != nil {
		return 0, err
	}
	if own == nil {
		return 0, ErrNoOwnProfile
	}

	target, err := ms.Store.GetProfile(ctx, targetDogID)
	if err != nil {
		return 0, err
	}
	if target == nil {
		return 0, ErrProfileGone
	}

	theirs, err := ms.Store.FindPreference(ctx, target.OwnerID, own.DogID)
	if err != nil {
		return 0, err
	}
	if theirs != nil && theirs.Value == models.ValueLike {
		log.Printf("Mutual like detected: %s -> %s, routing to gate", actorID, targetDogID)
		return OutcomeRouteToGate, nil
	}

	if err := ms.Store.UpsertPreference(ctx, actorID, targetDogID, models.ValueLike); err != nil {
		return 0, fmt.Errorf("failed to record like: %w", err)
	}
	return OutcomeRecorded, nil
}

// FinalizeLike lands the held-back like and reports whether the pair is now
// mutual. Mutuality is re-read from the store rather than remembered from the
// swipe, so two users gating against each other concurrently both converge.
func (ms *MatchService) FinalizeLike(ctx context.Context, actorID, targetDogID string) (bool, error) {
	own, err := ms.Store.GetProfileByOwner(ctx, actorID)
	if err != nil {
		return false, err
	}
	if own == nil {
		return false, ErrNoOwnProfile
	}

	target, err := ms.Store.GetProfile(ctx, targetDogID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, ErrProfileGone
	}

	if err := ms.Store.UpsertPreference(ctx, actorID, targetDogID, models.ValueLike); err != nil {
		return false, fmt.Errorf("failed to finalize like: %w", err)
	}

	theirs, err := ms.Store.FindPreference(ctx, target.OwnerID, own.DogID)
	if err != nil {
		return false, err
	}
	return theirs != nil && theirs.Value == models.ValueLike, nil
}

// MatchesFor partitions the user's incoming likes into pending and confirmed.
// Confirmed requires the reciprocal +1 row to exist; pending requires the
// user's own +1 to be absent, so the two lists are disjoint by construction.
// Confirmed is ordered by the matched dog's creation time, pending by the
// incoming like's timestamp, both newest first.
func (ms *MatchService) MatchesFor(ctx context.Context, userID string) (pending, confirmed []models.DogProfile, err error) {
	own, err := ms.Store.GetProfileByOwner(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if own == nil {
		return nil, nil, ErrNoOwnProfile
	}

	incoming, err := ms.Store.ListIncomingLikes(ctx, own.DogID)
	if err != nil {
		return nil, nil, err
	}

	pendingAt := make(map[string]string) // dogId -> incoming like timestamp
	for _, like := range incoming {
		if like.ActorID == userID {
			continue
		}
		theirDog, err := ms.Store.GetProfileByOwner(ctx, like.ActorID)
		if err != nil {
			return nil, nil, err
		}
		if theirDog == nil {
			continue // liker's profile vanished
		}

		mine, err := ms.Store.FindPreference(ctx, userID, theirDog.DogID)
		if err != nil {
			return nil, nil, err
		}
		if mine != nil && mine.Value == models.ValueLike {
			confirmed = append(confirmed, *theirDog)
		} else {
			pending = append(pending, *theirDog)
			pendingAt[theirDog.DogID] = like.UpdatedAt
		}
	}

	sort.Slice(confirmed, func(i, j int) bool {
		return confirmed[i].CreatedAt > confirmed[j].CreatedAt
	})
	sort.Slice(pending, func(i, j int) bool {
		return pendingAt[pending[i].DogID] > pendingAt[pending[j].DogID]
	})

	return pending, confirmed, nil
}
