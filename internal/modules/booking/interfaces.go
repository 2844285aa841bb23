package booking

import (
	"context"
	"time"

	"homestay/internal/domain"
)

// BookingStore is the persistence contract for bookings. Create and Update
// must surface repository.ErrRangeConflict when the storage-level no-overlap
// constraint fires.
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindOverlapping(ctx context.Context, listingID int64, checkIn, checkOut time.Time, excludeStatuses []domain.BookingStatus) ([]domain.Booking, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	FindAllForListing(ctx context.Context, listingID int64) ([]domain.Booking, error)
	FindByGuest(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error)
}

// ListingStore is the read side the engine needs from the catalog.
type ListingStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

// NotificationSender records in-app notifications for booking lifecycle
// events. Failures are never allowed to fail the booking operation itself.
type NotificationSender interface {
	NotifyBookingRequested(ctx context.Context, hostID int64, b *domain.Booking) error
	NotifyBookingConfirmed(ctx context.Context, guestID int64, b *domain.Booking) error
	NotifyBookingRejected(ctx context.Context, guestID int64, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, userID int64, b *domain.Booking, reason string) error
}
