package services

import (
	"context"

	"homestay/internal/domain"
)

type OfferingStore interface {
	Create(ctx context.Context, o *domain.ServiceOffering) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceOffering, error)
	GetByListing(ctx context.Context, listingID int64) ([]domain.ServiceOffering, error)
	Update(ctx context.Context, o *domain.ServiceOffering) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type ListingStore interface {
	GetByIDAny(ctx context.Context, id int64) (*domain.Listing, error)
}
