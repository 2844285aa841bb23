package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"homestay/internal/domain"
)

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) GetOrCreateConversation(ctx context.Context, listingID, guestID, hostID int64) (*domain.Conversation, error) {
	args := m.Called(ctx, listingID, guestID, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockMessageStore) GetConversation(ctx context.Context, id int64) (*domain.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockMessageStore) GetConversationsForUser(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func (m *MockMessageStore) CreateMessage(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	if msg != nil && args.Error(0) == nil {
		msg.ID = 1
	}
	return args.Error(0)
}

func (m *MockMessageStore) GetMessages(ctx context.Context, conversationID int64, limit, offset int) ([]domain.Message, error) {
	args := m.Called(ctx, conversationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

type MockListingStore struct {
	mock.Mock
}

func (m *MockListingStore) GetByIDAny(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyNewMessage(ctx context.Context, userID int64, msg *domain.Message) error {
	args := m.Called(ctx, userID, msg)
	return args.Error(0)
}

func TestStartConversation_CannotMessageOwnListing(t *testing.T) {
	mockMessages := new(MockMessageStore)
	mockListings := new(MockListingStore)

	mockListings.On("GetByIDAny", mock.Anything, int64(7)).Return(&domain.Listing{ID: 7, OwnerID: 42}, nil)

	service := NewService(mockMessages, mockListings, nil, nil)

	_, _, err := service.StartConversation(context.Background(), 42, StartConversationRequest{
		ListingID: 7,
		Body:      "hello me",
	})
	assert.ErrorIs(t, err, ErrCannotMessageSelf)
}

func TestStartConversation_NotifiesOfflineHost(t *testing.T) {
	mockMessages := new(MockMessageStore)
	mockListings := new(MockListingStore)
	mockNotifs := new(MockNotificationSender)

	mockListings.On("GetByIDAny", mock.Anything, int64(7)).Return(&domain.Listing{ID: 7, OwnerID: 1}, nil)
	mockMessages.On("GetOrCreateConversation", mock.Anything, int64(7), int64(42), int64(1)).
		Return(&domain.Conversation{ID: 10, ListingID: 7, GuestID: 42, HostID: 1}, nil)
	mockMessages.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyNewMessage", mock.Anything, int64(1), mock.Anything).Return(nil)

	service := NewService(mockMessages, mockListings, mockNotifs, NewHub())

	conv, msg, err := service.StartConversation(context.Background(), 42, StartConversationRequest{
		ListingID: 7,
		Body:      "Is the place free in June?",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), conv.ID)
	assert.Equal(t, int64(42), msg.SenderID)
	mockNotifs.AssertExpectations(t)
}

func TestSendMessage_ParticipantOnly(t *testing.T) {
	mockMessages := new(MockMessageStore)

	mockMessages.On("GetConversation", mock.Anything, int64(10)).
		Return(&domain.Conversation{ID: 10, GuestID: 42, HostID: 1}, nil)

	service := NewService(mockMessages, new(MockListingStore), nil, nil)

	_, err := service.SendMessage(context.Background(), 77, 10, SendMessageRequest{Body: "hi"})
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestSendMessage_RejectsBlankBody(t *testing.T) {
	service := NewService(new(MockMessageStore), new(MockListingStore), nil, nil)

	_, err := service.SendMessage(context.Background(), 42, 10, SendMessageRequest{Body: "   "})
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestGetMessages_ParticipantOnly(t *testing.T) {
	mockMessages := new(MockMessageStore)

	mockMessages.On("GetConversation", mock.Anything, int64(10)).
		Return(&domain.Conversation{ID: 10, GuestID: 42, HostID: 1}, nil)

	service := NewService(mockMessages, new(MockListingStore), nil, nil)

	_, err := service.GetMessages(context.Background(), 77, 10, 50, 0)
	assert.ErrorIs(t, err, ErrNotParticipant)
}
