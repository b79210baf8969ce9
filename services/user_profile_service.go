package services

import (
	"cinder_server/models"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserProfileService manages user profile records. Profiles are created
// at registration, mutated by their owner through settings, and read by
// other users' candidate feeds; they are never deleted.
type UserProfileService struct {
	Dynamo *DynamoService
}

// CreateProfile stores a new profile. A missing seeking range gets the
// 18..50 default. Registering a uid that already has a profile fails
// with ErrProfileExists; returning users go through sessions instead.
func (ups *UserProfileService) CreateProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UID == "" {
		return nil, errors.New("uid is required")
	}
	if profile.FullName == "" {
		return nil, errors.New("fullName is required")
	}

	if _, err := ups.GetProfile(ctx, profile.UID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to check for existing profile: %w", err)
	}

	if profile.MinSeekingAge == 0 {
		profile.MinSeekingAge = models.DefaultMinSeekingAge
	}
	if profile.MaxSeekingAge == 0 {
		profile.MaxSeekingAge = models.DefaultMaxSeekingAge
	}

	if err := ups.Dynamo.PutItem(ctx, models.UsersTable, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile for %s: %w", profile.UID, err)
	}
	return &profile, nil
}

// GetProfile retrieves a user profile by uid.
func (ups *UserProfileService) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"uid": &types.AttributeValueMemberS{Value: uid},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", uid, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// SaveSettings overwrites the owner's profile with the edited one. The
// uid is immutable; everything the settings screen exposes (name, age,
// profession, photo URLs, seeking range) comes in on the profile value.
func (ups *UserProfileService) SaveSettings(ctx context.Context, uid string, profile models.UserProfile) (*models.UserProfile, error) {
	if uid == "" || profile.UID != uid {
		return nil, errors.New("profile uid does not match the owner")
	}
	if _, err := ups.GetProfile(ctx, uid); err != nil {
		return nil, err
	}
	if profile.MinSeekingAge == 0 {
		profile.MinSeekingAge = models.DefaultMinSeekingAge
	}
	if profile.MaxSeekingAge == 0 {
		profile.MaxSeekingAge = models.DefaultMaxSeekingAge
	}
	if profile.MinSeekingAge > profile.MaxSeekingAge {
		return nil, errors.New("minSeekingAge exceeds maxSeekingAge")
	}

	if err := ups.Dynamo.PutItem(ctx, models.UsersTable, profile); err != nil {
		return nil, fmt.Errorf("failed to save settings for %s: %w", uid, err)
	}
	return &profile, nil
}
