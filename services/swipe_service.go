package services

import (
	"cinder_server/models"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SwipeService persists like/pass decisions. Each user owns a single
// swipe record holding a map of candidateUid -> decision; a later swipe
// on the same candidate overwrites the earlier one.
type SwipeService struct {
	Dynamo *DynamoService
}

// GetSwipes fetches a user's swipe record. A user who has never swiped
// gets an empty record, not an error.
func (ss *SwipeService) GetSwipes(ctx context.Context, uid string) (*models.SwipeRecord, error) {
	key := map[string]types.AttributeValue{
		"uid": &types.AttributeValueMemberS{Value: uid},
	}

	item, err := ss.Dynamo.GetItem(ctx, models.SwipesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return &models.SwipeRecord{UID: uid, Swipes: map[string]int{}}, nil
		}
		return nil, &RecordError{Err: fmt.Errorf("failed to fetch swipe record for %s: %w", uid, err)}
	}

	var record models.SwipeRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, &RecordError{Err: fmt.Errorf("failed to unmarshal swipe record: %w", err)}
	}
	if record.Swipes == nil {
		record.Swipes = map[string]int{}
	}

	return &record, nil
}

// RecordSwipe upserts the decider's decision about candidateUID. The
// whole record is written back, so concurrent swipes from two devices
// resolve last-write-wins.
func (ss *SwipeService) RecordSwipe(ctx context.Context, deciderID, candidateID string, liked bool) error {
	if deciderID == "" || candidateID == "" {
		return &RecordError{Err: errors.New("decider and candidate ids are required")}
	}
	if deciderID == candidateID {
		return &RecordError{Err: errors.New("cannot swipe on yourself")}
	}

	record, err := ss.GetSwipes(ctx, deciderID)
	if err != nil {
		return err
	}

	decision := models.SwipePassed
	if liked {
		decision = models.SwipeLiked
	}
	record.Swipes[candidateID] = decision

	if err := ss.Dynamo.PutItem(ctx, models.SwipesTable, record); err != nil {
		return &RecordError{Err: fmt.Errorf("failed to store swipe %s -> %s: %w", deciderID, candidateID, err)}
	}

	log.Printf("Recorded swipe %s -> %s (liked=%v)", deciderID, candidateID, liked)
	return nil
}
