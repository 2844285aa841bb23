package chat

type StartConversationRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	Body      string `json:"body" binding:"required,max=4000"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required,max=4000"`
}

// MessageEvent is the payload pushed over the websocket when a new message
// lands in one of the user's conversations.
type MessageEvent struct {
	Type           string `json:"type"`
	ConversationID int64  `json:"conversation_id"`
	MessageID      int64  `json:"message_id"`
	SenderID       int64  `json:"sender_id"`
	Body           string `json:"body"`
}
