package models

// RecentMessage is the last-message preview kept per (owner, partner)
// pair. It is overwritten on every new message in either direction and
// drives the matches/chat list, newest conversation first.
type RecentMessage struct {
	OwnerID         string `dynamodbav:"ownerId" json:"ownerId"`
	UID             string `dynamodbav:"uid" json:"uid"` // conversation partner
	Name            string `dynamodbav:"name" json:"name"`
	Text            string `dynamodbav:"text" json:"text"`
	ProfileImageURL string `dynamodbav:"profileImageUrl" json:"profileImageUrl"`
	Timestamp       string `dynamodbav:"timestamp" json:"timestamp"`
}

// RecentMessagesTable is the DynamoDB table name for recent-message summaries
const RecentMessagesTable = "RecentMessages"
