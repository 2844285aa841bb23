package notification

import (
	"context"
	"fmt"

	"homestay/internal/domain"
)

// Store is the persistence surface; notifications are in-app rows only and
// delivery to external channels happens outside this process.
type Store interface {
	Create(ctx context.Context, n *domain.Notification, data map[string]any) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, notificationID, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

const dateLayout = "2006-01-02"

func (s *Service) NotifyBookingRequested(ctx context.Context, hostID int64, b *domain.Booking) error {
	return s.store.Create(ctx, &domain.Notification{
		UserID:  hostID,
		Type:    domain.NotifBookingRequested,
		Title:   "New booking request",
		Message: fmt.Sprintf("A guest requested %s to %s", b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout)),
	}, map[string]any{"booking_id": b.PublicID, "listing_id": b.ListingID})
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, guestID int64, b *domain.Booking) error {
	return s.store.Create(ctx, &domain.Notification{
		UserID:  guestID,
		Type:    domain.NotifBookingConfirmed,
		Title:   "Booking confirmed",
		Message: fmt.Sprintf("Your stay %s to %s is confirmed", b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout)),
	}, map[string]any{"booking_id": b.PublicID, "listing_id": b.ListingID})
}

func (s *Service) NotifyBookingRejected(ctx context.Context, guestID int64, b *domain.Booking) error {
	return s.store.Create(ctx, &domain.Notification{
		UserID:  guestID,
		Type:    domain.NotifBookingRejected,
		Title:   "Booking declined",
		Message: fmt.Sprintf("The host declined your request for %s to %s", b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout)),
	}, map[string]any{"booking_id": b.PublicID, "listing_id": b.ListingID})
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, userID int64, b *domain.Booking, reason string) error {
	msg := fmt.Sprintf("Booking %s to %s was cancelled", b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout))
	if reason != "" {
		msg += ": " + reason
	}
	return s.store.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    domain.NotifBookingCancelled,
		Title:   "Booking cancelled",
		Message: msg,
	}, map[string]any{"booking_id": b.PublicID, "listing_id": b.ListingID})
}

func (s *Service) NotifyNewReview(ctx context.Context, hostID int64, rv *domain.Review) error {
	return s.store.Create(ctx, &domain.Notification{
		UserID:  hostID,
		Type:    domain.NotifNewReview,
		Title:   "New review",
		Message: fmt.Sprintf("A guest left a %d-star review", rv.Rating),
	}, map[string]any{"review_id": rv.ID, "listing_id": rv.ListingID})
}

func (s *Service) NotifyNewMessage(ctx context.Context, userID int64, m *domain.Message) error {
	return s.store.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    domain.NotifNewMessage,
		Title:   "New message",
		Message: "You have a new message",
	}, map[string]any{"conversation_id": m.ConversationID})
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.store.GetByUserID(ctx, userID, limit)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.store.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.store.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.store.MarkAllAsRead(ctx, userID)
}
