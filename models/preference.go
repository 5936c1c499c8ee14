package models

// Preference is a directed swipe edge from an acting user to a target dog.
// Keyed uniquely by (actorId, targetDogId); re-swiping the same pair
// overwrites value and updatedAt, it never appends a second row.
type Preference struct {
	ActorID     string `dynamodbav:"actorId" json:"actorId"`         // ✅ Partition Key
	TargetDogID string `dynamodbav:"targetDogId" json:"targetDogId"` // ✅ Sort Key, used in GSI
	Value       int    `dynamodbav:"value" json:"value"`             // +1 like, -1 dislike
	UpdatedAt   string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// PreferencesTable is the DynamoDB table name for preferences
const PreferencesTable = "Preferences"

// TargetDogIndex is the GSI used to fetch incoming swipes for a dog
const TargetDogIndex = "targetDogId-index"
