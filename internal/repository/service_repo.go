package repository

import (
	"context"

	"gorm.io/gorm"

	"homestay/internal/domain"
)

type ServiceOfferingRepository struct {
	db *gorm.DB
}

func NewServiceOfferingRepository(db *gorm.DB) *ServiceOfferingRepository {
	return &ServiceOfferingRepository{db: db}
}

func (r *ServiceOfferingRepository) Create(ctx context.Context, o *domain.ServiceOffering) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ServiceOfferingRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOffering, error) {
	var o domain.ServiceOffering
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ServiceOfferingRepository) GetByListing(ctx context.Context, listingID int64) ([]domain.ServiceOffering, error) {
	var out []domain.ServiceOffering
	err := r.db.WithContext(ctx).
		Where("listing_id = ? AND is_active = ?", listingID, true).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *ServiceOfferingRepository) Update(ctx context.Context, o *domain.ServiceOffering) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *ServiceOfferingRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.ServiceOffering{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
