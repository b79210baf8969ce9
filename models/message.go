package models

import "fmt"

// Message belongs to a conversation between two users. Every message is
// stored twice, once under each direction of the conversation, so both
// parties can query their own log without a join.
type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	SortKey        string `dynamodbav:"sortKey" json:"sortKey"`
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	Text           string `dynamodbav:"text" json:"text"`
	FromID         string `dynamodbav:"fromId" json:"fromId"`
	ToID           string `dynamodbav:"toId" json:"toId"`
	Timestamp      string `dynamodbav:"timestamp" json:"timestamp"`
}

// TimestampLayout is RFC3339 with fixed-width nanoseconds, so that the
// lexicographic order of stored timestamps matches their time order.
// (RFC3339Nano trims trailing zeros and would break sort-key ordering.)
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ConversationID builds the partition key for one direction of a
// mirrored conversation log: the owner's view of the chat with partner.
func ConversationID(ownerUID, partnerUID string) string {
	return fmt.Sprintf("%s#%s", ownerUID, partnerUID)
}

// MessageSortKey orders messages by creation time; the message id is
// appended so two messages written in the same instant stay distinct.
func MessageSortKey(timestamp, messageID string) string {
	return fmt.Sprintf("%s#%s", timestamp, messageID)
}

// MessagesTable is the DynamoDB table name for conversation logs
const MessagesTable = "Messages"
