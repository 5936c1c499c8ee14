package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barkr_server/models"
)

// Test helper: a gate wired to a fresh memory store and a small catalog.
func newGateWorld(t *testing.T) (*MemoryStore, *MatchService, *SongGateService) {
	t.Helper()
	store := NewMemoryStore()
	catalog := NewChallengeCatalog(map[string][]models.Challenge{
		"Drake": {
			{Key: "drake_godsplan", Snippet: "/static/snippets/drake_godsplan.mp3", Answers: []string{"Gods Plan", "God's Plan"}},
		},
		"Taylor Swift": {
			{Key: "taylor_style", Snippet: "/static/snippets/taylor_style.mp3", Answers: []string{"Style"}},
			{Key: "taylor_blankspace", Snippet: "/static/snippets/taylor_blankspace.mp3", Answers: []string{"Blank Space"}},
		},
	})
	match := NewMatchService(store)
	gate := NewSongGateService(store, catalog, match)
	gate.Rand = rand.New(rand.NewSource(1))
	return store, match, gate
}

func TestEnterGate_ProfileGone(t *testing.T) {
	_, _, gate := newGateWorld(t)

	_, err := gate.EnterGate(context.Background(), "userB", "no-such-dog")
	assert.ErrorIs(t, err, ErrProfileGone)
}

func TestEnterGate_NoChallengesFinalizesImmediately(t *testing.T) {
	store, ms, gate := newGateWorld(t)
	seedDog(t, store, "userA", "dogA", "", baseTime) // artist unset: no challenges
	seedDog(t, store, "userB", "dogB", "Drake", baseTime)

	// B liked A first, then A's like completes the pair and routes to the gate.
	_, err := ms.RecordSwipe(context.Background(), "userB", "dogA", models.DirectionLike)
	require.NoError(t, err)
	outcome, err := ms.RecordSwipe(context.Background(), "userA", "dogB", models.DirectionLike)
	require.NoError(t, err)
	require.Equal(t, OutcomeRouteToGate, outcome)

	result, err := gate.EnterGate(context.Background(), "userA", "dogB")
	require.NoError(t, err)
	assert.Equal(t, GatePassed, result.Status, "missing content must never block a match")
	assert.True(t, result.Matched)

	_, confirmed, err := ms.MatchesFor(context.Background(), "userA")
	require.NoError(t, err)
	assert.Equal(t, []string{"dogB"}, dogIDs(confirmed))
}

func TestEnterGate_PresentsChallengeWithoutFinalizing(t *testing.T) {
	store, _, gate := newGateWorld(t)
	seedDog(t, store, "userA", "dogA", "Drake", baseTime)
	seedDog(t, store, "userB", "dogB", "", baseTime)

	result, err := gate.EnterGate(context.Background(), "userB", "dogA")
	require.NoError(t, err)
	assert.Equal(t, GateChallenge, result.Status)
	require.NotNil(t, result.Challenge)
	assert.Equal(t, "drake_godsplan", result.Challenge.Key)
	assert.Equal(t, "Drake", result.Challenge.Artist)

	pref, err := store.FindPreference(context.Background(), "userB", "dogA")
	require.NoError(t, err)
	assert.Nil(t, pref, "entering the gate must not write a preference")
}

func TestEnterGate_PicksFromTargetArtistSet(t *testing.T) {
	store, _, gate := newGateWorld(t)
	seedDog(t, store, "userA", "dogA", "Taylor Swift", baseTime)
	seedDog(t, store, "userB", "dogB", "", baseTime)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		result, err := gate.EnterGate(context.Background(), "userB", "dogA")
		require.NoError(t, err)
		require.Equal(t, GateChallenge, result.Status)
		seen[result.Challenge.Key] = true
	}
	assert.True(t, seen["taylor_style"] && seen["taylor_blankspace"], "selection is random across the artist's set")
}

func TestSubmitAnswer_WrongAnswerRetriesSameChallenge(t *testing.T) {
	store, _, gate := newGateWorld(t)
	seedDog(t, store, "userA", "dogA", "Drake", baseTime)
	seedDog(t, store, "userB", "dogB", "", baseTime)

	for i := 0; i < 10; i++ {
		result, err := gate.SubmitAnswer(context.Background(), "userB", "dogA", "drake_godsplan", "Hotline Bling")
		require.NoError(t, err)
		assert.Equal(t, GateRetry, result.Status)
		assert.Equal(t, "drake_godsplan", result.Challenge.Key, "retry must keep the same challenge")

		pref, err := store.FindPreference(context.Background(), "userB", "dogA")
		require.NoError(t, err)
		assert.Nil(t, pref, "wrong answers must never finalize the like")
	}
}

func TestSubmitAnswer_UnknownChallengeAborts(t *testing.T) {
	store, _, gate := newGateWorld(t)
	seedDog(t, store, "userA", "dogA", "Drake", baseTime)
	seedDog(t, store, "userB", "dogB", "", baseTime)

	// A key from another artist's gate does not pass validation.
	_, err := gate.SubmitAnswer(context.Background(), "userB", "dogA", "taylor_style", "Style")
	assert.ErrorIs(t, err, ErrUnknownChallenge)

	pref, err := store.FindPreference(context.Background(), "userB", "dogA")
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestSubmitAnswer_ProfileGoneAborts(t *testing.T) {
	_, _, gate := newGateWorld(t)

	_, err := gate.SubmitAnswer(context.Background(), "userB", "no-such-dog", "drake_godsplan", "Gods Plan")
	assert.ErrorIs(t, err, ErrProfileGone)
}

func TestSubmitAnswer_CorrectAnswerAnyCasePasses(t *testing.T) {
	store, ms, gate := newGateWorld(t)
	seedDog(t, store, "userA", "dogA", "Drake", baseTime)
	seedDog(t, store, "userB", "dogB", "", baseTime)

	// A likes B first; B's like back is the gated one.
	_, err := ms.RecordSwipe(context.Background(), "userA", "dogB", models.DirectionLike)
	require.NoError(t, err)
	outcome, err := ms.RecordSwipe(context.Background(), "userB", "dogA", models.DirectionLike)
	require.NoError(t, err)
	require.Equal(t, OutcomeRouteToGate, outcome)

	result, err := gate.SubmitAnswer(context.Background(), "userB", "dogA", "drake_godsplan", "  gODS pLAN ")
	require.NoError(t, err)
	assert.Equal(t, GatePassed, result.Status)
	assert.True(t, result.Matched)

	pendingA, confirmedA, err := ms.MatchesFor(context.Background(), "userA")
	require.NoError(t, err)
	pendingB, confirmedB, err := ms.MatchesFor(context.Background(), "userB")
	require.NoError(t, err)

	assert.Equal(t, []string{"dogB"}, dogIDs(confirmedA))
	assert.Equal(t, []string{"dogA"}, dogIDs(confirmedB))
	assert.Empty(t, pendingA)
	assert.Empty(t, pendingB)
}

func TestSongGate_FullSecondLikerFlow(t *testing.T) {
	store, ms, gate := newGateWorld(t)
	seedDog(t, store, "userA", "dogA", "Drake", baseTime)
	seedDog(t, store, "userB", "dogB", "", baseTime)

	// First liker never gates.
	outcome, err := ms.RecordSwipe(context.Background(), "userA", "dogB", models.DirectionLike)
	require.NoError(t, err)
	require.Equal(t, OutcomeRecorded, outcome)

	// Second liker always gates when the target's artist has challenges.
	outcome, err = ms.RecordSwipe(context.Background(), "userB", "dogA", models.DirectionLike)
	require.NoError(t, err)
	require.Equal(t, OutcomeRouteToGate, outcome)

	entered, err := gate.EnterGate(context.Background(), "userB", "dogA")
	require.NoError(t, err)
	require.Equal(t, GateChallenge, entered.Status)

	retry, err := gate.SubmitAnswer(context.Background(), "userB", "dogA", entered.Challenge.Key, "wrong")
	require.NoError(t, err)
	require.Equal(t, GateRetry, retry.Status)

	passed, err := gate.SubmitAnswer(context.Background(), "userB", "dogA", entered.Challenge.Key, "Gods Plan")
	require.NoError(t, err)
	assert.Equal(t, GatePassed, passed.Status)
	assert.True(t, passed.Matched)
}
