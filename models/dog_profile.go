package models

// DogProfile defines the structure for dog profiles. Each user owns at most one.
type DogProfile struct {
	DogID          string `dynamodbav:"dogId" json:"dogId"`
	OwnerID        string `dynamodbav:"ownerId" json:"ownerId"` // ✅ Used in GSI
	Name           string `dynamodbav:"name" json:"name"`
	Age            int    `dynamodbav:"age,omitempty" json:"age,omitempty"`
	Gender         string `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Breed          string `dynamodbav:"breed,omitempty" json:"breed,omitempty"`
	Personality    string `dynamodbav:"personality,omitempty" json:"personality,omitempty"`
	Bio            string `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Photo          string `dynamodbav:"photo,omitempty" json:"photo,omitempty"`
	FavoriteArtist string `dynamodbav:"favoriteArtist,omitempty" json:"favoriteArtist,omitempty"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"` // RFC3339, feed ordering key
}

// DogProfilesTable is the DynamoDB table name for dog profiles
const DogProfilesTable = "DogProfiles"

// OwnerIDIndex is the GSI used to resolve a user's own dog
const OwnerIDIndex = "ownerId-index"
