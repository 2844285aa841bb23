package domain

import "time"

// Conversation is a guest<->host thread about one listing. One conversation
// per (listing, guest) pair.
type Conversation struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ListingID int64     `json:"listing_id" gorm:"uniqueIndex:idx_conversation_listing_guest"`
	GuestID   int64     `json:"guest_id" gorm:"uniqueIndex:idx_conversation_listing_guest"`
	HostID    int64     `json:"host_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (Conversation) TableName() string { return "conversations" }

type Message struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	ConversationID int64     `json:"conversation_id" gorm:"index"`
	SenderID       int64     `json:"sender_id"`
	Body           string    `json:"body" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Message) TableName() string { return "messages" }
