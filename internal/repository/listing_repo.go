package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"homestay/internal/config"
	"homestay/internal/domain"
)

// ListingFilters enumerates the optional search predicates. Each set field
// becomes one parameterized WHERE clause; nothing is built reflectively.
type ListingFilters struct {
	City        string
	MinPrice    decimal.Decimal
	MaxPrice    decimal.Decimal
	MinGuests   int
	Amenities   []string
	InstantBook *bool
	Limit       int
	Offset      int
}

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// GetByID fetches a listing. Listings stored without a currency come back
// with the configured fallback so callers never see an empty code.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	if l.Currency == "" {
		l.Currency = config.DefaultCurrency
	}
	return &l, nil
}

// GetByIDAny ignores the is_active filter. Owner-facing flows use it so a
// delisted property stays editable and can be reactivated.
func (r *ListingRepository) GetByIDAny(ctx context.Context, id int64) (*domain.Listing, error) {
	var l domain.Listing
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	if l.Currency == "" {
		l.Currency = config.DefaultCurrency
	}
	return &l, nil
}

func (r *ListingRepository) GetAll(ctx context.Context, f ListingFilters) ([]domain.Listing, int64, error) {
	var listings []domain.Listing
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("is_active = ?", true)

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.MinPrice.IsPositive() {
		q = q.Where("nightly_price >= ?", f.MinPrice)
	}
	if f.MaxPrice.IsPositive() {
		q = q.Where("nightly_price <= ?", f.MaxPrice)
	}
	if f.MinGuests > 0 {
		q = q.Where("max_guests >= ?", f.MinGuests)
	}
	if f.InstantBook != nil {
		q = q.Where("instant_book = ?", *f.InstantBook)
	}
	// Amenities live in a JSON column; LIKE keeps the predicate portable
	// across postgres and sqlite.
	for _, a := range f.Amenities {
		q = q.Where("amenities LIKE ?", "%\""+a+"\"%")
	}

	q.Count(&total)

	err := q.
		Limit(f.Limit).
		Offset(f.Offset).
		Order("created_at DESC").
		Find(&listings).Error

	for i := range listings {
		if listings[i].Currency == "" {
			listings[i].Currency = config.DefaultCurrency
		}
	}

	return listings, total, err
}

func (r *ListingRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *ListingRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
