package chat

import (
	"context"

	"homestay/internal/domain"
)

type MessageStore interface {
	GetOrCreateConversation(ctx context.Context, listingID, guestID, hostID int64) (*domain.Conversation, error)
	GetConversation(ctx context.Context, id int64) (*domain.Conversation, error)
	GetConversationsForUser(ctx context.Context, userID int64) ([]domain.Conversation, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	GetMessages(ctx context.Context, conversationID int64, limit, offset int) ([]domain.Message, error)
}

type ListingStore interface {
	GetByIDAny(ctx context.Context, id int64) (*domain.Listing, error)
}

type NotificationSender interface {
	NotifyNewMessage(ctx context.Context, userID int64, m *domain.Message) error
}
