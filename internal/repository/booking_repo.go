package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"homestay/internal/domain"
)

// ErrRangeConflict is returned when the bookings_no_overlap constraint
// rejects a write. The booking service maps it to its "not available" error,
// which is what makes two concurrent admissions for the same dates resolve
// to exactly one winner.
var ErrRangeConflict = errors.New("booking date range conflict")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create persists the booking together with its addon lines as one unit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	for i := range b.Addons {
		b.Addons[i].Position = i
	}
	err := r.db.WithContext(ctx).Create(b).Error
	return translateConstraint(err)
}

// FindOverlapping returns bookings on the listing whose half-open
// [check_in, check_out) range intersects the given one. Two ranges overlap
// iff a1 < b2 AND b1 < a2.
func (r *BookingRepository) FindOverlapping(ctx context.Context, listingID int64, checkIn, checkOut time.Time, excludeStatuses []domain.BookingStatus) ([]domain.Booking, error) {
	var out []domain.Booking
	q := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Where("check_in < ? AND ? < check_out", checkOut, checkIn)
	if len(excludeStatuses) > 0 {
		q = q.Where("status NOT IN ?", excludeStatuses)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *BookingRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Addons", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("public_id = ?", publicID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update saves the booking row and replaces its addon list wholesale.
// Old addons are discarded, never merged.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", b.ID).Delete(&domain.BookingAddon{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Addons").Save(b).Error; err != nil {
			return err
		}
		for i := range b.Addons {
			b.Addons[i].ID = 0
			b.Addons[i].BookingID = b.ID
			b.Addons[i].Position = i
		}
		if len(b.Addons) == 0 {
			return nil
		}
		return tx.Create(&b.Addons).Error
	})
	return translateConstraint(err)
}

func (r *BookingRepository) FindAllForListing(ctx context.Context, listingID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("check_in ASC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) FindByGuest(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Addons", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

func translateConstraint(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation, 23505 unique_violation
		if (pgErr.Code == "23P01" || pgErr.Code == "23505") && pgErr.ConstraintName == "bookings_no_overlap" {
			return ErrRangeConflict
		}
	}
	return err
}
