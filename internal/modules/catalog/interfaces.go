package catalog

import (
	"context"

	"homestay/internal/domain"
	"homestay/internal/repository"
)

type ListingStore interface {
	Create(ctx context.Context, l *domain.Listing) error
	Update(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetByIDAny(ctx context.Context, id int64) (*domain.Listing, error)
	GetAll(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Listing, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
