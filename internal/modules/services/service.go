package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"homestay/internal/domain"
)

// Service manages host-provided extras attached to listings. Bookings copy
// offerings into their own addon lines, so edits here never affect money
// already agreed on.
type Service struct {
	offerings OfferingStore
	listings  ListingStore
}

func NewService(offerings OfferingStore, listings ListingStore) *Service {
	return &Service{offerings: offerings, listings: listings}
}

func (s *Service) CreateOffering(ctx context.Context, ownerID int64, req CreateOfferingRequest) (*domain.ServiceOffering, error) {
	if req.Price.IsNegative() {
		return nil, ErrInvalidRequest
	}

	listing, err := s.listings.GetByIDAny(ctx, req.ListingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if listing.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	o := &domain.ServiceOffering{
		ListingID:   req.ListingID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	}
	if err := s.offerings.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) UpdateOffering(ctx context.Context, offeringID, ownerID int64, req UpdateOfferingRequest) (*domain.ServiceOffering, error) {
	if req.Price.IsNegative() {
		return nil, ErrInvalidRequest
	}

	o, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		return nil, asNotFound(err)
	}

	listing, err := s.listings.GetByIDAny(ctx, o.ListingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if listing.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	o.Name = req.Name
	o.Description = req.Description
	o.Price = req.Price
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.offerings.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetListingOfferings returns the active extras guests can add to a booking
// request.
func (s *Service) GetListingOfferings(ctx context.Context, listingID int64) ([]domain.ServiceOffering, error) {
	return s.offerings.GetByListing(ctx, listingID)
}

func (s *Service) DeactivateOffering(ctx context.Context, offeringID, ownerID int64) error {
	o, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		return asNotFound(err)
	}

	listing, err := s.listings.GetByIDAny(ctx, o.ListingID)
	if err != nil {
		return asNotFound(err)
	}
	if listing.OwnerID != ownerID {
		return ErrForbidden
	}

	return s.offerings.SetActive(ctx, offeringID, false)
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
