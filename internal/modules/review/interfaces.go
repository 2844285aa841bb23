package review

import (
	"context"

	"homestay/internal/domain"
)

type ReviewStore interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error)
	SetOwnerResponse(ctx context.Context, reviewID int64, resp string) (*domain.Review, error)
}

type BookingStore interface {
	GetByPublicID(ctx context.Context, publicID string) (*domain.Booking, error)
}

type ListingStore interface {
	GetByIDAny(ctx context.Context, id int64) (*domain.Listing, error)
}

type NotificationSender interface {
	NotifyNewReview(ctx context.Context, hostID int64, rv *domain.Review) error
}
