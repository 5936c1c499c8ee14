package services

import (
	"context"
	"math/rand"

	"barkr_server/models"
)

// GateStatus is the song gate's externally visible state.
type GateStatus int

const (
	// GateChallenge: a challenge was selected, the snippet should be played.
	GateChallenge GateStatus = iota

	// GatePassed: the gate is done and the like has been finalized.
	GatePassed

	// GateRetry: wrong answer; the same challenge is presented again.
	GateRetry
)

// GateResult carries the state the caller renders. Challenge is set for
// GateChallenge and GateRetry; Matched is meaningful only for GatePassed.
type GateResult struct {
	Status    GateStatus
	Challenge *models.Challenge
	Matched   bool
}

// SongGateService runs the challenge step between a mutual like and its
// finalization. There is no server-side gate session: the challenge key rides
// the request and is re-validated against the catalog on every submit.
type SongGateService struct {
	Store   Store
	Catalog *ChallengeCatalog
	Match   *MatchService
	Rand    *rand.Rand
}

func NewSongGateService(store Store, catalog *ChallengeCatalog, match *MatchService) *SongGateService {
	return &SongGateService{Store: store, Catalog: catalog, Match: match}
}

// EnterGate starts a gate round for the target dog. The challenge is always
// derived server-side from the target's favoriteArtist; any caller-supplied
// key is ignored on entry. When the artist has no challenges the gate is a
// no-op and the like finalizes immediately: missing content never blocks a
// match.
func (gs *SongGateService) EnterGate(ctx context.Context, actorID, targetDogID string) (*GateResult, error) {
	target, err := gs.Store.GetProfile(ctx, targetDogID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrProfileGone
	}

	challenges := gs.Catalog.ChallengesFor(target.FavoriteArtist)
	if len(challenges) == 0 {
		matched, err := gs.Match.FinalizeLike(ctx, actorID, targetDogID)
		if err != nil {
			return nil, err
		}
		return &GateResult{Status: GatePassed, Matched: matched}, nil
	}

	ch := challenges[gs.pick(len(challenges))]
	return &GateResult{Status: GateChallenge, Challenge: &ch}, nil
}

// SubmitAnswer checks an answer for the challenge key the caller is holding.
// The key must belong to the target's current artist set, otherwise the gate
// aborts with ErrUnknownChallenge and nothing is finalized. Wrong answers
// re-present the same challenge without limit; only a normalized exact match
// finalizes the like.
func (gs *SongGateService) SubmitAnswer(ctx context.Context, actorID, targetDogID, challengeKey, answer string) (*GateResult, error) {
	target, err := gs.Store.GetProfile(ctx, targetDogID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrProfileGone
	}

	ch, ok := gs.Catalog.Lookup(target.FavoriteArtist, challengeKey)
	if !ok {
		return nil, ErrUnknownChallenge
	}

	if !AnswerMatches(ch, answer) {
		return &GateResult{Status: GateRetry, Challenge: ch}, nil
	}

	matched, err := gs.Match.FinalizeLike(ctx, actorID, targetDogID)
	if err != nil {
		return nil, err
	}
	return &GateResult{Status: GatePassed, Matched: matched}, nil
}

func (gs *SongGateService) pick(n int) int {
	if gs.Rand != nil {
		return gs.Rand.Intn(n)
	}
	return rand.Intn(n)
}
