package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"homestay/internal/domain"
)

// ErrDuplicateReview is returned when a second review targets the same
// booking. The reviews table enforces one review per booking.
var ErrDuplicateReview = errors.New("booking already reviewed")

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	err := r.db.WithContext(ctx).Create(rv).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateReview
	}
	return err
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) GetByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error) {
	var out []domain.Review
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *ReviewRepository) SetOwnerResponse(ctx context.Context, reviewID int64, resp string) (*domain.Review, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", reviewID).
		Update("owner_response", resp)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, reviewID)
}
