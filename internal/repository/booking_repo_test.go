package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"homestay/internal/database"
	"homestay/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	// a file-backed database per test keeps gorm's connection pool from
	// seeing different in-memory databases
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func day(d int) time.Time {
	return time.Date(2030, time.January, d, 0, 0, 0, 0, time.UTC)
}

func seedBooking(t *testing.T, repo *BookingRepository, publicID string, checkIn, checkOut time.Time, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		PublicID:   publicID,
		ListingID:  7,
		GuestID:    42,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     int(checkOut.Sub(checkIn) / (24 * time.Hour)),
		Guests:     2,
		TotalPrice: decimal.NewFromInt(100),
		Currency:   "USD",
		Status:     status,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestFindOverlapping_HalfOpenRanges(t *testing.T) {
	repo := NewBookingRepository(setupDB(t))
	ctx := context.Background()

	seedBooking(t, repo, "existing", day(5), day(10), domain.BookingConfirmed)

	excluded := []domain.BookingStatus{domain.BookingCancelled, domain.BookingRejected}

	cases := []struct {
		name     string
		checkIn  int
		checkOut int
		want     int
	}{
		{"identical range", 5, 10, 1},
		{"contained inside", 6, 8, 1},
		{"straddles start", 3, 6, 1},
		{"straddles end", 9, 12, 1},
		{"covers entirely", 1, 15, 1},
		{"ends at existing check-in", 1, 5, 0},
		{"starts at existing check-out", 10, 14, 0},
		{"fully before", 1, 3, 0},
		{"fully after", 12, 14, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.FindOverlapping(ctx, 7, day(tc.checkIn), day(tc.checkOut), excluded)
			assert.NoError(t, err)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestFindOverlapping_IgnoresInactiveAndOtherListings(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	seedBooking(t, repo, "cancelled", day(5), day(10), domain.BookingCancelled)
	seedBooking(t, repo, "rejected", day(5), day(10), domain.BookingRejected)

	other := seedBooking(t, repo, "other-listing", day(5), day(10), domain.BookingConfirmed)
	require.NoError(t, db.Model(other).Update("listing_id", 8).Error)

	got, err := repo.FindOverlapping(ctx, 7, day(5), day(10),
		[]domain.BookingStatus{domain.BookingCancelled, domain.BookingRejected})
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdate_ReplacesAddonRows(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	b := seedBooking(t, repo, "with-addons", day(5), day(10), domain.BookingConfirmed)
	b.Addons = []domain.BookingAddon{
		{Name: "Cleaning", UnitPrice: decimal.NewFromInt(20), Quantity: 1},
		{Name: "Breakfast", UnitPrice: decimal.NewFromInt(15), Quantity: 5},
	}
	require.NoError(t, repo.Update(ctx, b))

	b.Addons = []domain.BookingAddon{
		{Name: "Late checkout", UnitPrice: decimal.NewFromInt(30), Quantity: 1},
	}
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.GetByPublicID(ctx, "with-addons")
	require.NoError(t, err)
	require.Len(t, got.Addons, 1)
	assert.Equal(t, "Late checkout", got.Addons[0].Name)

	var orphans int64
	require.NoError(t, db.Model(&domain.BookingAddon{}).Count(&orphans).Error)
	assert.Equal(t, int64(1), orphans)
}

func TestGetByPublicID_PreloadsAddonsInOrder(t *testing.T) {
	repo := NewBookingRepository(setupDB(t))
	ctx := context.Background()

	b := &domain.Booking{
		PublicID:   "ordered",
		ListingID:  7,
		GuestID:    42,
		CheckIn:    day(5),
		CheckOut:   day(7),
		Nights:     2,
		Guests:     1,
		TotalPrice: decimal.NewFromInt(100),
		Currency:   "USD",
		Status:     domain.BookingPending,
		Addons: []domain.BookingAddon{
			{Name: "First", UnitPrice: decimal.NewFromInt(1), Quantity: 1},
			{Name: "Second", UnitPrice: decimal.NewFromInt(2), Quantity: 1},
			{Name: "Third", UnitPrice: decimal.NewFromInt(3), Quantity: 1},
		},
	}
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByPublicID(ctx, "ordered")
	require.NoError(t, err)
	require.Len(t, got.Addons, 3)
	assert.Equal(t, "First", got.Addons[0].Name)
	assert.Equal(t, "Second", got.Addons[1].Name)
	assert.Equal(t, "Third", got.Addons[2].Name)
}
