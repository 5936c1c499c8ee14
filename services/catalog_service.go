package services

import (
	"fmt"
	"os"
	"strings"

	"barkr_server/models"

	"gopkg.in/yaml.v3"
)

// ChallengeCatalog maps an artist tag to its song-gate challenges. Loaded
// once at startup and never mutated; artist lookup is case-sensitive.
type ChallengeCatalog struct {
	byArtist map[string][]models.Challenge
}

// NewChallengeCatalog builds a catalog from an artist -> challenges mapping,
// stamping the artist back onto each challenge.
func NewChallengeCatalog(byArtist map[string][]models.Challenge) *ChallengeCatalog {
	catalog := &ChallengeCatalog{byArtist: make(map[string][]models.Challenge, len(byArtist))}
	for artist, challenges := range byArtist {
		entries := make([]models.Challenge, len(challenges))
		for i, ch := range challenges {
			ch.Artist = artist
			entries[i] = ch
		}
		catalog.byArtist[artist] = entries
	}
	return catalog
}

// LoadChallengeCatalog reads the YAML catalog file:
//
//	Drake:
//	  - key: drake_godsplan
//	    snippet: /static/snippets/drake_godsplan.mp3
//	    answers: ["Gods Plan", "God's Plan"]
func LoadChallengeCatalog(path string) (*ChallengeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read challenge catalog '%s': %w", path, err)
	}

	var byArtist map[string][]models.Challenge
	if err := yaml.Unmarshal(data, &byArtist); err != nil {
		return nil, fmt.Errorf("failed to parse challenge catalog '%s': %w", path, err)
	}

	return NewChallengeCatalog(byArtist), nil
}

// ChallengesFor returns the challenges for an artist tag. Empty or unknown
// tags have none.
func (c *ChallengeCatalog) ChallengesFor(artist string) []models.Challenge {
	return c.byArtist[artist]
}

// Lookup resolves a challenge by (artist, key). The key alone is never
// trusted; a key outside the artist's set is a stale or tampered gate link.
func (c *ChallengeCatalog) Lookup(artist, key string) (*models.Challenge, bool) {
	for _, ch := range c.byArtist[artist] {
		if ch.Key == key {
			out := ch
			return &out, true
		}
	}
	return nil, false
}

// NormalizeAnswer trims and lowercases a submitted answer.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// AnswerMatches checks a submitted answer against the challenge's accepted
// set, both sides normalized.
func AnswerMatches(ch *models.Challenge, answer string) bool {
	normalized := NormalizeAnswer(answer)
	for _, accepted := range ch.Answers {
		if NormalizeAnswer(accepted) == normalized {
			return true
		}
	}
	return false
}
