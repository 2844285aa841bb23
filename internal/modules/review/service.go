package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"homestay/internal/domain"
	"homestay/internal/repository"
)

type Service struct {
	reviews  ReviewStore
	bookings BookingStore
	listings ListingStore
	notifs   NotificationSender
}

func NewService(reviews ReviewStore, bookings BookingStore, listings ListingStore, notifs NotificationSender) *Service {
	return &Service{
		reviews:  reviews,
		bookings: bookings,
		listings: listings,
		notifs:   notifs,
	}
}

// CreateReview records a guest review for a completed stay. Only the guest on
// a checked-out booking may review it, and each booking carries at most one
// review.
func (s *Service) CreateReview(ctx context.Context, guestID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	b, err := s.bookings.GetByPublicID(ctx, req.BookingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if b.GuestID != guestID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCheckedOut {
		return nil, ErrNotEligible
	}

	rv := &domain.Review{
		ListingID: b.ListingID,
		GuestID:   guestID,
		BookingID: b.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	if s.notifs != nil {
		if listing, lerr := s.listings.GetByIDAny(ctx, b.ListingID); lerr == nil {
			_ = s.notifs.NotifyNewReview(ctx, listing.OwnerID, rv)
		}
	}

	return rv, nil
}

func (s *Service) GetListingReviews(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.reviews.GetByListing(ctx, listingID, limit, offset)
}

// RespondToReview attaches the host's public reply. Only the owner of the
// reviewed listing may respond.
func (s *Service) RespondToReview(ctx context.Context, reviewID, requesterID int64, responseText string) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, asNotFound(err)
	}

	listing, err := s.listings.GetByIDAny(ctx, rv.ListingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if listing.OwnerID != requesterID {
		return nil, ErrForbidden
	}

	return s.reviews.SetOwnerResponse(ctx, reviewID, responseText)
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
