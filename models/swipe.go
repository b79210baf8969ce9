package models

// Swipe decision values stored in the per-user swipe map.
const (
	SwipeLiked  = 1
	SwipePassed = 0
)

// SwipeRecord holds every decision a single user has made, keyed by the
// candidate's uid. At most one decision per candidate; a later swipe on
// the same candidate overwrites the earlier one.
type SwipeRecord struct {
	UID    string         `dynamodbav:"uid" json:"uid"`
	Swipes map[string]int `dynamodbav:"swipes" json:"swipes"`
}

// Decision returns the stored decision for candidateUID and whether one
// exists at all.
func (r SwipeRecord) Decision(candidateUID string) (int, bool) {
	v, ok := r.Swipes[candidateUID]
	return v, ok
}

// Liked reports whether the record contains a "liked" decision for
// candidateUID.
func (r SwipeRecord) Liked(candidateUID string) bool {
	return r.Swipes[candidateUID] == SwipeLiked
}

// SwipesTable is the DynamoDB table name for swipe records
const SwipesTable = "Swipes"
