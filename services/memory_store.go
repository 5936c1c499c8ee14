package services

import (
	"context"
	"sync"
	"time"

	"barkr_server/models"
)

// MemoryStore is an in-process Store used for local development
// (STORAGE=memory) and as the test double. Writes hold the mutex for the
// whole operation, which gives UpsertPreference the same single-row
// atomicity the DynamoDB implementation gets from UpdateItem.
type MemoryStore struct {
	mu       sync.Mutex
	profiles map[string]models.DogProfile            // dogId -> profile
	byOwner  map[string]string                       // ownerId -> dogId
	prefs    map[string]map[string]models.Preference // actorId -> targetDogId -> row
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]models.DogProfile),
		byOwner:  make(map[string]string),
		prefs:    make(map[string]map[string]models.Preference),
		now:      time.Now,
	}
}

// SetClock overrides the timestamp source. Tests use it to pin updatedAt.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStore) PutProfile(_ context.Context, profile models.DogProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.profiles[profile.DogID]; ok && old.OwnerID != profile.OwnerID {
		delete(s.byOwner, old.OwnerID)
	}
	s.profiles[profile.DogID] = profile
	s.byOwner[profile.OwnerID] = profile.DogID
	return nil
}

func (s *MemoryStore) GetProfile(_ context.Context, dogID string) (*models.DogProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[dogID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (s *MemoryStore) GetProfileByOwner(_ context.Context, ownerID string) (*models.DogProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dogID, ok := s.byOwner[ownerID]
	if !ok {
		return nil, nil
	}
	profile := s.profiles[dogID]
	return &profile, nil
}

func (s *MemoryStore) DeleteProfile(_ context.Context, dogID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile, ok := s.profiles[dogID]; ok {
		delete(s.byOwner, profile.OwnerID)
		delete(s.profiles, dogID)
	}
	return nil
}

func (s *MemoryStore) UpsertPreference(_ context.Context, actorID, targetDogID string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.prefs[actorID]
	if !ok {
		rows = make(map[string]models.Preference)
		s.prefs[actorID] = rows
	}
	rows[targetDogID] = models.Preference{
		ActorID:     actorID,
		TargetDogID: targetDogID,
		Value:       value,
		UpdatedAt:   s.now().UTC().Format(time.RFC3339),
	}
	return nil
}

func (s *MemoryStore) FindPreference(_ context.Context, actorID, targetDogID string) (*models.Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.prefs[actorID][targetDogID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (s *MemoryStore) ListIncomingLikes(_ context.Context, targetDogID string) ([]models.Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var likes []models.Preference
	for _, rows := range s.prefs {
		if row, ok := rows[targetDogID]; ok && row.Value == models.ValueLike {
			likes = append(likes, row)
		}
	}
	return likes, nil
}

func (s *MemoryStore) FeedCandidate(_ context.Context, viewerID string) (*models.DogProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profiles := make([]models.DogProfile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		profiles = append(profiles, profile)
	}
	swiped := make(map[string]struct{}, len(s.prefs[viewerID]))
	for targetDogID := range s.prefs[viewerID] {
		swiped[targetDogID] = struct{}{}
	}
	return SelectNextCard(viewerID, profiles, swiped), nil
}

// PreferenceCount reports how many rows an actor holds. Test helper.
func (s *MemoryStore) PreferenceCount(actorID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prefs[actorID])
}
