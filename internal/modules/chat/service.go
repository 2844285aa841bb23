package chat

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"homestay/internal/domain"
)

type Service struct {
	messages MessageStore
	listings ListingStore
	notifs   NotificationSender
	hub      *Hub
}

func NewService(messages MessageStore, listings ListingStore, notifs NotificationSender, hub *Hub) *Service {
	return &Service{
		messages: messages,
		listings: listings,
		notifs:   notifs,
		hub:      hub,
	}
}

// StartConversation opens (or reuses) the guest's thread about a listing and
// posts the first message in it.
func (s *Service) StartConversation(ctx context.Context, guestID int64, req StartConversationRequest) (*domain.Conversation, *domain.Message, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, nil, ErrEmptyBody
	}

	listing, err := s.listings.GetByIDAny(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if listing.OwnerID == guestID {
		return nil, nil, ErrCannotMessageSelf
	}

	conv, err := s.messages.GetOrCreateConversation(ctx, listing.ID, guestID, listing.OwnerID)
	if err != nil {
		return nil, nil, err
	}

	msg, err := s.deliver(ctx, conv, guestID, body)
	if err != nil {
		return nil, nil, err
	}
	return conv, msg, nil
}

func (s *Service) SendMessage(ctx context.Context, senderID, conversationID int64, req SendMessageRequest) (*domain.Message, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrEmptyBody
	}

	conv, err := s.messages.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if senderID != conv.GuestID && senderID != conv.HostID {
		return nil, ErrNotParticipant
	}

	return s.deliver(ctx, conv, senderID, body)
}

// deliver persists the message, then best-effort pushes it to the other
// participant: over the websocket when they are online, as an in-app
// notification otherwise.
func (s *Service) deliver(ctx context.Context, conv *domain.Conversation, senderID int64, body string) (*domain.Message, error) {
	msg := &domain.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	recipientID := conv.GuestID
	if senderID == conv.GuestID {
		recipientID = conv.HostID
	}

	event := MessageEvent{
		Type:           "message",
		ConversationID: conv.ID,
		MessageID:      msg.ID,
		SenderID:       senderID,
		Body:           body,
	}

	delivered := false
	if s.hub != nil {
		delivered = s.hub.SendToUser(recipientID, event)
	}
	if !delivered && s.notifs != nil {
		_ = s.notifs.NotifyNewMessage(ctx, recipientID, msg)
	}

	return msg, nil
}

func (s *Service) GetConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	return s.messages.GetConversationsForUser(ctx, userID)
}

func (s *Service) GetMessages(ctx context.Context, userID, conversationID int64, limit, offset int) ([]domain.Message, error) {
	conv, err := s.messages.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if userID != conv.GuestID && userID != conv.HostID {
		return nil, ErrNotParticipant
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.messages.GetMessages(ctx, conversationID, limit, offset)
}
