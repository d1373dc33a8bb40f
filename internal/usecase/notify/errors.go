package notify

import "errors"

// Sentinel errors for notify operations.
var (
	// ErrChannelDisabled indicates that Send() was called on a disabled channel.
	ErrChannelDisabled = errors.New("channel is disabled")

	// ErrInvalidContact indicates that the contact passed to Send is nil.
	ErrInvalidContact = errors.New("invalid contact data")
)
