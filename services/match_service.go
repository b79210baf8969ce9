package services

import (
	"cinder_server/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchService turns mutual likes into match records. Detection is a
// point-in-time check: it runs right after a like is recorded, and a
// match, once written, is not retracted by later unlikes.
type MatchService struct {
	Dynamo   *DynamoService
	Swipes   *SwipeService
	Profiles *UserProfileService
}

// CheckForMatch looks up whether candidateID has already liked
// deciderID back. On a mutual like it writes the two cross-referencing
// match records in a single transaction and returns the decider's half.
// The common non-mutual case returns (nil, nil).
func (ms *MatchService) CheckForMatch(ctx context.Context, deciderID, candidateID string) (*models.Match, error) {
	candidateSwipes, err := ms.Swipes.GetSwipes(ctx, candidateID)
	if err != nil {
		return nil, &LookupError{Err: fmt.Errorf("failed to read candidate swipes: %w", err)}
	}

	if !candidateSwipes.Liked(deciderID) {
		// No like back yet. Not an error.
		return nil, nil
	}

	deciderProfile, err := ms.Profiles.GetProfile(ctx, deciderID)
	if err != nil {
		return nil, &LookupError{Err: fmt.Errorf("failed to fetch decider profile: %w", err)}
	}
	candidateProfile, err := ms.Profiles.GetProfile(ctx, candidateID)
	if err != nil {
		return nil, &LookupError{Err: fmt.Errorf("failed to fetch candidate profile: %w", err)}
	}

	timestamp := time.Now().UTC().Format(models.TimestampLayout)

	// One record per participant, each naming the other party.
	deciderMatch := models.Match{
		OwnerID:         deciderID,
		UID:             candidateID,
		Name:            candidateProfile.FullName,
		ProfileImageURL: candidateProfile.PrimaryImageURL(),
		Timestamp:       timestamp,
	}
	candidateMatch := models.Match{
		OwnerID:         candidateID,
		UID:             deciderID,
		Name:            deciderProfile.FullName,
		ProfileImageURL: deciderProfile.PrimaryImageURL(),
		Timestamp:       timestamp,
	}

	// Both halves land atomically, so a store failure can never leave a
	// match visible to only one party.
	err = ms.Dynamo.TransactPutItems(ctx, []TransactPut{
		{TableName: models.MatchesTable, Item: deciderMatch},
		{TableName: models.MatchesTable, Item: candidateMatch},
	})
	if err != nil {
		return nil, &LookupError{Err: fmt.Errorf("failed to write match records: %w", err)}
	}

	log.Printf("It's a match: %s <-> %s", deciderID, candidateID)
	return &deciderMatch, nil
}

// GetMatches lists the viewer's match records.
func (ms *MatchService) GetMatches(ctx context.Context, uid string) ([]models.Match, error) {
	if uid == "" {
		return nil, &LookupError{Err: errors.New("uid is required")}
	}

	keyCondition := "ownerId = :uid"
	expressionValues := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: uid},
	}

	items, err := ms.Dynamo.QueryItems(ctx, models.MatchesTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, &LookupError{Err: fmt.Errorf("failed to fetch matches for %s: %w", uid, err)}
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, &LookupError{Err: fmt.Errorf("failed to unmarshal matches: %w", err)}
	}

	return matches, nil
}
