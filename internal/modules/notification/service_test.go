package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"homestay/internal/domain"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, n *domain.Notification, data map[string]any) error {
	args := m.Called(ctx, n, data)
	return args.Error(0)
}

func (m *MockStore) GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockStore) MarkAllAsRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestNotifyBookingRequested_TargetsHost(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 1 && n.Type == domain.NotifBookingRequested
	}), mock.MatchedBy(func(data map[string]any) bool {
		return data["booking_id"] == "b-3"
	})).Return(nil)

	service := NewService(mockStore)

	err := service.NotifyBookingRequested(context.Background(), 1, &domain.Booking{
		PublicID:  "b-3",
		ListingID: 7,
		CheckIn:   time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2030, time.June, 6, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestNotifyBookingCancelled_IncludesReason(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifBookingCancelled &&
			n.Message == "Booking 2030-06-01 to 2030-06-06 was cancelled: change of plans"
	}), mock.Anything).Return(nil)

	service := NewService(mockStore)

	err := service.NotifyBookingCancelled(context.Background(), 1, &domain.Booking{
		PublicID: "b-3",
		CheckIn:  time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2030, time.June, 6, 0, 0, 0, 0, time.UTC),
	}, "change of plans")

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestGetUserNotifications_ClampsLimit(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("GetByUserID", mock.Anything, int64(1), 50).Return([]domain.Notification{}, nil)

	service := NewService(mockStore)

	_, err := service.GetUserNotifications(context.Background(), 1, 100000)
	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}
