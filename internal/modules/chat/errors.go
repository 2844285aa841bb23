package chat

import "errors"

var (
	ErrNotFound          = errors.New("conversation not found")
	ErrNotParticipant    = errors.New("not a participant of this conversation")
	ErrCannotMessageSelf = errors.New("cannot message your own listing")
	ErrEmptyBody         = errors.New("message body cannot be empty")
)
