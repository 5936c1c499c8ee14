package services

import "barkr_server/models"

// SelectNextCard picks the feed card for a viewer: the most recently created
// dog whose owner is not the viewer and whose id is not in the swiped set.
// A dislike is in the swiped set like any other preference, so a disliked
// card never resurfaces. Returns nil when nothing qualifies.
//
// Shared by both store implementations so the feed policy lives in one place.
func SelectNextCard(viewerID string, profiles []models.DogProfile, swiped map[string]struct{}) *models.DogProfile {
	var best *models.DogProfile
	for i := range profiles {
		p := &profiles[i]
		if p.OwnerID == viewerID {
			continue
		}
		if _, seen := swiped[p.DogID]; seen {
			continue
		}
		if best == nil || p.CreatedAt > best.CreatedAt {
			best = p
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}
