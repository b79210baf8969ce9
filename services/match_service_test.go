package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckForMatchNoLikeBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProfile(t, "alice", "Alice", 25)
	env.seedProfile(t, "bob", "Bob", 27)

	require.NoError(t, env.swipes.RecordSwipe(ctx, "alice", "bob", true))

	// Bob has not swiped at all: the common non-match path, not an error.
	match, err := env.matches.CheckForMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Nil(t, match)

	matches, err := env.matches.GetMatches(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestCheckForMatchOneSidedPass(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProfile(t, "alice", "Alice", 25)
	env.seedProfile(t, "bob", "Bob", 27)

	require.NoError(t, env.swipes.RecordSwipe(ctx, "bob", "alice", false))
	require.NoError(t, env.swipes.RecordSwipe(ctx, "alice", "bob", true))

	// Bob swiped, but passed. Still no match.
	match, err := env.matches.CheckForMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Nil(t, match)
}

func TestCheckForMatchMutualLike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProfile(t, "alice", "Alice", 25)
	env.seedProfile(t, "bob", "Bob", 27)

	// Alice likes Bob first; nothing happens for her yet.
	require.NoError(t, env.swipes.RecordSwipe(ctx, "alice", "bob", true))
	match, err := env.matches.CheckForMatch(ctx, "alice", "bob")
	require.NoError(t, err)
	require.Nil(t, match)

	// Bob likes Alice back: detection run from Bob's side creates the pair.
	require.NoError(t, env.swipes.RecordSwipe(ctx, "bob", "alice", true))
	match, err = env.matches.CheckForMatch(ctx, "bob", "alice")
	require.NoError(t, err)
	require.NotNil(t, match)
	require.Equal(t, "bob", match.OwnerID)
	require.Equal(t, "alice", match.UID)
	require.Equal(t, "Alice", match.Name)

	// Both parties hold a record referencing the other.
	bobMatches, err := env.matches.GetMatches(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobMatches, 1)
	require.Equal(t, "alice", bobMatches[0].UID)
	require.Equal(t, "https://photos.example.com/alice/1.jpg", bobMatches[0].ProfileImageURL)

	aliceMatches, err := env.matches.GetMatches(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceMatches, 1)
	require.Equal(t, "bob", aliceMatches[0].UID)
	require.Equal(t, "Bob", aliceMatches[0].Name)
}

func TestCheckForMatchTransactFailureLeavesNoHalfMatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProfile(t, "alice", "Alice", 25)
	env.seedProfile(t, "bob", "Bob", 27)

	require.NoError(t, env.swipes.RecordSwipe(ctx, "alice", "bob", true))
	require.NoError(t, env.swipes.RecordSwipe(ctx, "bob", "alice", true))

	env.client.failNext = errors.New("store down")
	match, err := env.matches.CheckForMatch(ctx, "bob", "alice")
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Nil(t, match)

	// All-or-nothing: neither side may see a one-sided match.
	for _, uid := range []string{"alice", "bob"} {
		matches, err := env.matches.GetMatches(ctx, uid)
		require.NoError(t, err)
		require.Empty(t, matches)
	}
}

func TestCheckForMatchMissingProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedProfile(t, "alice", "Alice", 25)
	// Bob liked Alice but his profile record is gone.
	require.NoError(t, env.swipes.RecordSwipe(ctx, "bob", "alice", true))
	require.NoError(t, env.swipes.RecordSwipe(ctx, "alice", "bob", true))

	_, err := env.matches.CheckForMatch(ctx, "alice", "bob")
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.ErrorIs(t, err, ErrProfileNotFound)
}
