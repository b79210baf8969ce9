package models

// UserProfile defines the structure for user profile records
type UserProfile struct {
	UID           string `dynamodbav:"uid" json:"uid"`
	FullName      string `dynamodbav:"fullName" json:"fullName"`
	ImageURL1     string `dynamodbav:"imageUrl1,omitempty" json:"imageUrl1,omitempty"`
	ImageURL2     string `dynamodbav:"imageUrl2,omitempty" json:"imageUrl2,omitempty"`
	ImageURL3     string `dynamodbav:"imageUrl3,omitempty" json:"imageUrl3,omitempty"`
	Age           *int   `dynamodbav:"age,omitempty" json:"age,omitempty"`
	Profession    string `dynamodbav:"profession,omitempty" json:"profession,omitempty"`
	MinSeekingAge int    `dynamodbav:"minSeekingAge" json:"minSeekingAge"`
	MaxSeekingAge int    `dynamodbav:"maxSeekingAge" json:"maxSeekingAge"`
}

// Default seeking range applied at registration when the user has not
// picked one yet.
const (
	DefaultMinSeekingAge = 18
	DefaultMaxSeekingAge = 50
)

// PrimaryImageURL returns the first photo reference, which the card deck
// and the match/recent records treat as the profile picture.
func (p UserProfile) PrimaryImageURL() string {
	return p.ImageURL1
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"
