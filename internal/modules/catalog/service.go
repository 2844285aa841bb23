package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"homestay/internal/config"
	"homestay/internal/domain"
	"homestay/internal/repository"
)

type Service struct {
	listings ListingStore
}

func NewService(listings ListingStore) *Service {
	return &Service{listings: listings}
}

func (s *Service) CreateListing(ctx context.Context, ownerID int64, req CreateListingRequest) (*domain.Listing, error) {
	if !req.NightlyPrice.IsPositive() {
		return nil, ErrInvalidRequest
	}

	currency := req.Currency
	if currency == "" {
		currency = config.DefaultCurrency
	}

	l := &domain.Listing{
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		City:         req.City,
		Address:      req.Address,
		NightlyPrice: req.NightlyPrice,
		Currency:     currency,
		MaxGuests:    req.MaxGuests,
		Bedrooms:     req.Bedrooms,
		InstantBook:  req.InstantBook,
		Amenities:    req.Amenities,
		Photos:       req.Photos,
		IsActive:     true,
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) UpdateListing(ctx context.Context, listingID, ownerID int64, req UpdateListingRequest) (*domain.Listing, error) {
	l, err := s.listings.GetByIDAny(ctx, listingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if l.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	if !req.NightlyPrice.IsPositive() {
		return nil, ErrInvalidRequest
	}

	l.Title = req.Title
	l.Description = req.Description
	l.City = req.City
	l.Address = req.Address
	l.NightlyPrice = req.NightlyPrice
	if req.Currency != "" {
		l.Currency = req.Currency
	}
	l.MaxGuests = req.MaxGuests
	l.Bedrooms = req.Bedrooms
	l.InstantBook = req.InstantBook
	l.Amenities = req.Amenities
	l.Photos = req.Photos

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Search runs the predicate-based listing search. Unset filter fields are
// skipped entirely rather than matched against zero values.
func (s *Service) Search(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.listings.GetAll(ctx, f)
}

func (s *Service) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return l, nil
}

func (s *Service) GetMyListings(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	return s.listings.GetByOwnerID(ctx, ownerID)
}

// SetListingActive delists or relists a property. Existing bookings are not
// touched; only future searches and booking requests see the change.
func (s *Service) SetListingActive(ctx context.Context, listingID, ownerID int64, active bool) (*domain.Listing, error) {
	l, err := s.listings.GetByIDAny(ctx, listingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if l.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	if err := s.listings.SetActive(ctx, listingID, active); err != nil {
		return nil, err
	}
	l.IsActive = active
	return l, nil
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
