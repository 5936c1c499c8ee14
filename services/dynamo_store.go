package services

import (
	"context"
	"fmt"
	"time"

	"barkr_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore is the production Store backed by DynamoDB.
type DynamoStore struct {
	Dynamo *DynamoService
}

func NewDynamoStore(dynamo *DynamoService) *DynamoStore {
	return &DynamoStore{Dynamo: dynamo}
}

func (s *DynamoStore) PutProfile(ctx context.Context, profile models.DogProfile) error {
	if err := s.Dynamo.PutItem(ctx, models.DogProfilesTable, profile); err != nil {
		return fmt.Errorf("failed to store dog profile: %w", err)
	}
	return nil
}

func (s *DynamoStore) GetProfile(ctx context.Context, dogID string) (*models.DogProfile, error) {
	key := map[string]types.AttributeValue{
		"dogId": &types.AttributeValueMemberS{Value: dogID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.DogProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var profile models.DogProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dog profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoStore) GetProfileByOwner(ctx context.Context, ownerID string) (*models.DogProfile, error) {
	keyCondition := "ownerId = :owner"
	expressionValues := map[string]types.AttributeValue{
		":owner": &types.AttributeValueMemberS{Value: ownerID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.DogProfilesTable, models.OwnerIDIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile by owner: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var profile models.DogProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dog profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoStore) DeleteProfile(ctx context.Context, dogID string) error {
	key := map[string]types.AttributeValue{
		"dogId": &types.AttributeValueMemberS{Value: dogID},
	}
	return s.Dynamo.DeleteItem(ctx, models.DogProfilesTable, key)
}

// UpsertPreference writes the (actor, target) row in a single UpdateItem, so
// re-swiping the same pair overwrites value and updatedAt instead of
// appending. "value" is a DynamoDB reserved word, hence the name placeholder.
func (s *DynamoStore) UpsertPreference(ctx context.Context, actorID, targetDogID string, value int) error {
	key := map[string]types.AttributeValue{
		"actorId":     &types.AttributeValueMemberS{Value: actorID},
		"targetDogId": &types.AttributeValueMemberS{Value: targetDogID},
	}
	updateExpression := "SET #v = :v, updatedAt = :t"
	expressionValues := map[string]types.AttributeValue{
		":v": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", value)},
		":t": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
	}
	expressionNames := map[string]string{"#v": "value"}

	_, err := s.Dynamo.UpdateItem(ctx, models.PreferencesTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}

func (s *DynamoStore) FindPreference(ctx context.Context, actorID, targetDogID string) (*models.Preference, error) {
	key := map[string]types.AttributeValue{
		"actorId":     &types.AttributeValueMemberS{Value: actorID},
		"targetDogId": &types.AttributeValueMemberS{Value: targetDogID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.PreferencesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var pref models.Preference
	if err := attributevalue.UnmarshalMap(item, &pref); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preference: %w", err)
	}
	return &pref, nil
}

// ListIncomingLikes queries the targetDogId GSI and keeps only +1 rows.
func (s *DynamoStore) ListIncomingLikes(ctx context.Context, targetDogID string) ([]models.Preference, error) {
	keyCondition := "targetDogId = :target"
	expressionValues := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberS{Value: targetDogID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.PreferencesTable, models.TargetDogIndex, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incoming likes: %w", err)
	}

	var likes []models.Preference
	for _, item := range items {
		var pref models.Preference
		if err := attributevalue.UnmarshalMap(item, &pref); err != nil {
			continue
		}
		if pref.Value == models.ValueLike {
			likes = append(likes, pref)
		}
	}
	return likes, nil
}

// FeedCandidate scans profiles excluding the viewer's own, collects the
// viewer's swiped set, and picks the newest unswiped card.
func (s *DynamoStore) FeedCandidate(ctx context.Context, viewerID string) (*models.DogProfile, error) {
	var profiles []models.DogProfile
	err := s.Dynamo.ScanWithFilter(ctx, models.DogProfilesTable, nil, map[string]string{
		"ownerId": viewerID,
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to scan dog profiles: %w", err)
	}

	swiped, err := s.swipedSet(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	return SelectNextCard(viewerID, profiles, swiped), nil
}

func (s *DynamoStore) swipedSet(ctx context.Context, actorID string) (map[string]struct{}, error) {
	keyCondition := "actorId = :actor"
	expressionValues := map[string]types.AttributeValue{
		":actor": &types.AttributeValueMemberS{Value: actorID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.PreferencesTable, keyCondition, expressionValues, nil, 500)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swiped set: %w", err)
	}

	swiped := make(map[string]struct{}, len(items))
	for _, item := range items {
		var pref models.Preference
		if err := attributevalue.UnmarshalMap(item, &pref); err != nil {
			continue
		}
		swiped[pref.TargetDogID] = struct{}{}
	}
	return swiped, nil
}
