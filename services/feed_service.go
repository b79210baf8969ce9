package services

import (
	"cinder_server/models"
	"cinder_server/utils"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DefaultFeedLimit bounds a batch of swipeable candidates.
const DefaultFeedLimit = 10

// FeedService supplies the next batch of swipeable profiles.
type FeedService struct {
	Dynamo *DynamoService
	Swipes *SwipeService
}

// NextBatch returns up to limit candidate profiles for the viewer:
// age within [minAge, maxAge] inclusive, never the viewer themselves,
// and never a candidate the viewer has already swiped on. Results come
// back in uid order.
func (fs *FeedService) NextBatch(ctx context.Context, viewerID string, minAge, maxAge, limit int) ([]models.UserProfile, error) {
	if viewerID == "" {
		return nil, &FetchError{Err: errors.New("viewer id is required")}
	}
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	swipeRecord, err := fs.Swipes.GetSwipes(ctx, viewerID)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to load viewer swipes: %w", err)}
	}

	var profiles []models.UserProfile
	err = fs.Dynamo.ScanWithFilter(ctx, models.UsersTable, func(item map[string]types.AttributeValue) bool {
		uid := utils.ExtractString(item, "uid")
		if uid == "" || uid == viewerID {
			return false
		}
		if _, swiped := swipeRecord.Decision(uid); swiped {
			return false
		}
		age, ok := utils.ExtractInt(item, "age")
		if !ok {
			// Age unset means the profile cannot satisfy a range filter.
			return false
		}
		return age >= minAge && age <= maxAge
	}, &profiles)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to scan candidates: %w", err)}
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].UID < profiles[j].UID
	})

	if len(profiles) > limit {
		profiles = profiles[:limit]
	}

	return profiles, nil
}
