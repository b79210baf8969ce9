package services

import (
	"cinder_server/models"
	"cinder_server/realtime"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService owns the conversation channel between two matched users:
// the mirrored message logs, the recent-message summaries, and the live
// feeds layered on top of them.
type ChatService struct {
	Dynamo   *DynamoService
	Profiles *UserProfileService
	Hub      *realtime.Hub
}

// SendMessage stores a message under both parties' views of the
// conversation and refreshes both recent-message summaries, all in one
// transaction, then publishes to the live feeds. Nothing is published
// when the store write fails.
func (s *ChatService) SendMessage(ctx context.Context, fromID, toID, text string) error {
	if fromID == "" || toID == "" {
		return &SendError{Err: errors.New("fromId and toId are required")}
	}
	if text == "" {
		return &SendError{Err: errors.New("message text is empty")}
	}

	fromProfile, err := s.Profiles.GetProfile(ctx, fromID)
	if err != nil {
		return &SendError{Err: fmt.Errorf("failed to fetch sender profile: %w", err)}
	}
	toProfile, err := s.Profiles.GetProfile(ctx, toID)
	if err != nil {
		return &SendError{Err: fmt.Errorf("failed to fetch recipient profile: %w", err)}
	}

	messageID := uuid.NewString()
	timestamp := time.Now().UTC().Format(models.TimestampLayout)

	senderCopy := models.Message{
		ConversationID: models.ConversationID(fromID, toID),
		SortKey:        models.MessageSortKey(timestamp, messageID),
		MessageID:      messageID,
		Text:           text,
		FromID:         fromID,
		ToID:           toID,
		Timestamp:      timestamp,
	}
	recipientCopy := senderCopy
	recipientCopy.ConversationID = models.ConversationID(toID, fromID)

	// Each summary names the conversation partner, so the sender's entry
	// carries the recipient's details and vice versa.
	senderSummary := models.RecentMessage{
		OwnerID:         fromID,
		UID:             toID,
		Name:            toProfile.FullName,
		Text:            text,
		ProfileImageURL: toProfile.PrimaryImageURL(),
		Timestamp:       timestamp,
	}
	recipientSummary := models.RecentMessage{
		OwnerID:         toID,
		UID:             fromID,
		Name:            fromProfile.FullName,
		Text:            text,
		ProfileImageURL: fromProfile.PrimaryImageURL(),
		Timestamp:       timestamp,
	}

	err = s.Dynamo.TransactPutItems(ctx, []TransactPut{
		{TableName: models.MessagesTable, Item: senderCopy},
		{TableName: models.MessagesTable, Item: recipientCopy},
		{TableName: models.RecentMessagesTable, Item: senderSummary},
		{TableName: models.RecentMessagesTable, Item: recipientSummary},
	})
	if err != nil {
		log.Printf("Failed to store message %s -> %s: %v", fromID, toID, err)
		return &SendError{Err: fmt.Errorf("failed to store message: %w", err)}
	}

	s.Hub.Publish(realtime.MessagesTopic(fromID, toID), senderCopy)
	s.Hub.Publish(realtime.MessagesTopic(toID, fromID), recipientCopy)
	s.Hub.Publish(realtime.RecentMessagesTopic(fromID), senderSummary)
	s.Hub.Publish(realtime.RecentMessagesTopic(toID), recipientSummary)

	return nil
}

// GetMessages fetches one direction of a conversation log in timestamp
// order, oldest first.
func (s *ChatService) GetMessages(ctx context.Context, viewerID, partnerID string, limit int) ([]models.Message, error) {
	keyCondition := "conversationId = :cid"
	expressionValues := map[string]types.AttributeValue{
		":cid": &types.AttributeValueMemberS{Value: models.ConversationID(viewerID, partnerID)},
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit), false)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to fetch messages: %w", err)}
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to unmarshal messages: %w", err)}
	}

	return messages, nil
}

// GetRecentMessages returns the viewer's current summaries, newest
// conversation first.
func (s *ChatService) GetRecentMessages(ctx context.Context, viewerID string) ([]models.RecentMessage, error) {
	keyCondition := "ownerId = :uid"
	expressionValues := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: viewerID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.RecentMessagesTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to fetch recent messages: %w", err)}
	}

	var summaries []models.RecentMessage
	if err := attributevalue.UnmarshalListOfMaps(items, &summaries); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to unmarshal recent messages: %w", err)}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Timestamp > summaries[j].Timestamp
	})

	return summaries, nil
}

// SubscribeToMessages starts a live feed of messages newly added to the
// viewer's direction of the conversation with partner. Messages sent
// before the subscription started are not replayed; use GetMessages for
// the backlog. The caller must Close the subscription when the chat
// view goes away.
func (s *ChatService) SubscribeToMessages(viewerID, partnerID string, onMessage func(models.Message)) *realtime.Subscription {
	return s.Hub.Subscribe(realtime.MessagesTopic(viewerID, partnerID), func(event interface{}) {
		if msg, ok := event.(models.Message); ok {
			onMessage(msg)
		}
	})
}

// SubscribeToRecentMessages delivers the viewer's current summary set
// immediately, then re-delivers the full set, re-sorted newest first,
// whenever a summary is added or overwritten. Summaries with equal
// timestamps keep their insertion order; an event older than the held
// entry for its partner is dropped.
func (s *ChatService) SubscribeToRecentMessages(ctx context.Context, viewerID string, onUpdate func([]models.RecentMessage)) (*realtime.Subscription, error) {
	var mu sync.Mutex
	byPartner := make(map[string]int)
	var ordered []models.RecentMessage

	// apply merges one summary into the working set, ignoring anything
	// older than what is already held for that partner. Reports whether
	// the set changed.
	apply := func(summary models.RecentMessage) bool {
		if i, exists := byPartner[summary.UID]; exists {
			if ordered[i].Timestamp > summary.Timestamp {
				return false
			}
			ordered[i] = summary
			return true
		}
		byPartner[summary.UID] = len(ordered)
		ordered = append(ordered, summary)
		return true
	}

	snapshot := func() []models.RecentMessage {
		out := make([]models.RecentMessage, len(ordered))
		copy(out, ordered)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Timestamp > out[j].Timestamp
		})
		return out
	}

	// The hub subscription goes up before the store read, so a summary
	// written in between is still delivered; its event waits on mu until
	// the initial set has gone out.
	mu.Lock()
	sub := s.Hub.Subscribe(realtime.RecentMessagesTopic(viewerID), func(event interface{}) {
		summary, ok := event.(models.RecentMessage)
		if !ok {
			return
		}
		mu.Lock()
		changed := apply(summary)
		update := snapshot()
		mu.Unlock()
		if changed {
			onUpdate(update)
		}
	})

	current, err := s.GetRecentMessages(ctx, viewerID)
	if err != nil {
		mu.Unlock()
		sub.Close()
		return nil, err
	}
	for _, summary := range current {
		apply(summary)
	}
	onUpdate(snapshot())
	mu.Unlock()

	return sub, nil
}
