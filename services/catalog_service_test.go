package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barkr_server/models"
)

const testCatalogYAML = `
Drake:
  - key: drake_godsplan
    snippet: /static/snippets/drake_godsplan.mp3
    answers: ["Gods Plan", "God's Plan"]
Taylor Swift:
  - key: taylor_style
    snippet: /static/snippets/taylor_style.mp3
    answers: ["Style"]
`

func TestLoadChallengeCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o644))

	catalog, err := LoadChallengeCatalog(path)
	require.NoError(t, err)

	challenges := catalog.ChallengesFor("Drake")
	require.Len(t, challenges, 1)
	assert.Equal(t, "drake_godsplan", challenges[0].Key)
	assert.Equal(t, "Drake", challenges[0].Artist, "artist tag is stamped onto each challenge")
	assert.Equal(t, "/static/snippets/drake_godsplan.mp3", challenges[0].Snippet)
}

func TestLoadChallengeCatalog_MissingFile(t *testing.T) {
	_, err := LoadChallengeCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestChallengesFor_ArtistLookupIsCaseSensitive(t *testing.T) {
	catalog := NewChallengeCatalog(map[string][]models.Challenge{
		"Drake": {{Key: "drake_godsplan", Answers: []string{"Gods Plan"}}},
	})

	assert.Len(t, catalog.ChallengesFor("Drake"), 1)
	assert.Empty(t, catalog.ChallengesFor("drake"))
	assert.Empty(t, catalog.ChallengesFor(""))
}

func TestLookup_KeyMustBelongToArtist(t *testing.T) {
	catalog := NewChallengeCatalog(map[string][]models.Challenge{
		"Drake":        {{Key: "drake_godsplan", Answers: []string{"Gods Plan"}}},
		"Taylor Swift": {{Key: "taylor_style", Answers: []string{"Style"}}},
	})

	ch, ok := catalog.Lookup("Drake", "drake_godsplan")
	require.True(t, ok)
	assert.Equal(t, "Drake", ch.Artist)

	_, ok = catalog.Lookup("Drake", "taylor_style")
	assert.False(t, ok)

	_, ok = catalog.Lookup("", "drake_godsplan")
	assert.False(t, ok)
}

func TestAnswerMatches_NormalizesBothSides(t *testing.T) {
	ch := &models.Challenge{Key: "drake_godsplan", Answers: []string{"Gods Plan", "God's Plan"}}

	assert.True(t, AnswerMatches(ch, "Gods Plan"))
	assert.True(t, AnswerMatches(ch, "gods plan"))
	assert.True(t, AnswerMatches(ch, "  GODS PLAN  "))
	assert.True(t, AnswerMatches(ch, "god's plan"))
	assert.False(t, AnswerMatches(ch, "Gods  Plan"), "inner whitespace is significant")
	assert.False(t, AnswerMatches(ch, "One Dance"))
	assert.False(t, AnswerMatches(ch, ""))
}
