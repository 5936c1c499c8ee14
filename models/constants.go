package models

// ✅ Swipe directions
const (
	DirectionLike    = "like"
	DirectionDislike = "dislike"
)

// ✅ Preference values stored per direction
const (
	ValueLike    = 1
	ValueDislike = -1
)
