package models

// Match is one half of a mutual-like outcome. Two records are written
// per match, one under each participant, each pointing at the other
// party.
type Match struct {
	OwnerID         string `dynamodbav:"ownerId" json:"ownerId"`
	UID             string `dynamodbav:"uid" json:"uid"` // the other party
	Name            string `dynamodbav:"name" json:"name"`
	ProfileImageURL string `dynamodbav:"profileImageUrl" json:"profileImageUrl"`
	Timestamp       string `dynamodbav:"timestamp" json:"timestamp"`
}

// MatchesTable is the DynamoDB table name for match records
const MatchesTable = "Matches"
