package services

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound reports a uid with no profile record behind it.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileExists reports a registration attempt for a uid that
// already has a profile.
var ErrProfileExists = errors.New("profile already exists")

// RecordError wraps a failed swipe-decision write.
type RecordError struct {
	Err error
}

func (e *RecordError) Error() string { return fmt.Sprintf("record swipe: %v", e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }

// LookupError wraps a failed read during match detection.
type LookupError struct {
	Err error
}

func (e *LookupError) Error() string { return fmt.Sprintf("match lookup: %v", e.Err) }
func (e *LookupError) Unwrap() error { return e.Err }

// SendError wraps a failed conversation write.
type SendError struct {
	Err error
}

func (e *SendError) Error() string { return fmt.Sprintf("send message: %v", e.Err) }
func (e *SendError) Unwrap() error { return e.Err }

// FetchError wraps a failed read of stored records: candidate feeds,
// conversation logs, and recent summaries.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }
