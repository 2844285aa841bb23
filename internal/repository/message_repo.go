package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"homestay/internal/domain"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// GetOrCreateConversation dedupes on (listing, guest).
func (r *MessageRepository) GetOrCreateConversation(ctx context.Context, listingID, guestID, hostID int64) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := r.db.WithContext(ctx).
		Where("listing_id = ? AND guest_id = ?", listingID, guestID).
		First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conv = domain.Conversation{ListingID: listingID, GuestID: guestID, HostID: hostID}
	if err := r.db.WithContext(ctx).Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *MessageRepository) GetConversation(ctx context.Context, id int64) (*domain.Conversation, error) {
	var conv domain.Conversation
	if err := r.db.WithContext(ctx).First(&conv, id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *MessageRepository) GetConversationsForUser(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	var out []domain.Conversation
	err := r.db.WithContext(ctx).
		Where("guest_id = ? OR host_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *MessageRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MessageRepository) GetMessages(ctx context.Context, conversationID int64, limit, offset int) ([]domain.Message, error) {
	var out []domain.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}
