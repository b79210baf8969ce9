package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func uidEchoHandler(t *testing.T, seen *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UIDFromContext(r.Context())
		require.True(t, ok)
		*seen = uid
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareInjectsUID(t *testing.T) {
	tm := NewTokenManager("test-secret")
	token, err := tm.CreateToken("alice")
	require.NoError(t, err)

	var seen string
	handler := Middleware(tm)(uidEchoHandler(t, &seen))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", seen)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	tm := NewTokenManager("test-secret")
	handler := Middleware(tm)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler reached without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	tm := NewTokenManager("test-secret")
	handler := Middleware(tm)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler reached without a valid token")
	}))

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	tm := NewTokenManager("test-secret")
	other := NewTokenManager("other-secret")
	token, err := other.CreateToken("alice")
	require.NoError(t, err)

	handler := Middleware(tm)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler reached with a foreign token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithUID(t *testing.T) {
	ctx := WithUID(context.Background(), "alice")
	uid, ok := UIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "alice", uid)

	_, ok = UIDFromContext(context.Background())
	require.False(t, ok)
}
