package booking

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"homestay/internal/domain"
	"homestay/internal/repository"
)

// serviceFeeRate is charged on booking updates only. Creation stays fee-free
// to match the historical billing behavior; see DESIGN.md before unifying.
var serviceFeeRate = decimal.RequireFromString("0.10")

// inactiveStatuses are excluded from every availability calculation.
var inactiveStatuses = []domain.BookingStatus{domain.BookingCancelled, domain.BookingRejected}

type Service struct {
	bookings BookingStore
	listings ListingStore
	notifs   NotificationSender
}

func NewService(bookings BookingStore, listings ListingStore, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		listings: listings,
		notifs:   notifs,
	}
}

// RequestBooking admits or rejects a reservation request. Preconditions run
// in a fixed order so callers get stable error kinds; the overlap query plus
// the insert form one admission decision, with the storage no-overlap
// constraint as the arbiter when two requests race past the query.
func (s *Service) RequestBooking(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	checkIn, checkOut := dateOnly(in.CheckIn), dateOnly(in.CheckOut)
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return nil, ErrInvalidRequest
	}

	listing, err := s.listings.GetByID(ctx, in.ListingID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if listing.OwnerID == in.GuestID {
		return nil, ErrForbidden
	}

	if in.Guests <= 0 || !validAddons(in.Addons) {
		return nil, ErrInvalidRequest
	}
	if in.Guests > listing.MaxGuests {
		return nil, ErrCapacityExceeded
	}

	overlapping, err := s.bookings.FindOverlapping(ctx, listing.ID, checkIn, checkOut, inactiveStatuses)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, ErrNotAvailable
	}

	nights := nightsBetween(checkIn, checkOut)
	total := listing.NightlyPrice.
		Mul(decimal.NewFromInt(int64(nights))).
		Add(addonsTotal(in.Addons)).
		Round(2)

	status := domain.BookingPending
	if listing.InstantBook {
		status = domain.BookingConfirmed
	}

	b := &domain.Booking{
		PublicID:        uuid.NewString(),
		ListingID:       listing.ID,
		GuestID:         in.GuestID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Nights:          nights,
		Guests:          in.Guests,
		TotalPrice:      total,
		Currency:        listing.Currency,
		Status:          status,
		PaymentStatus:   domain.PaymentPending,
		SpecialRequests: in.SpecialRequests,
		Addons:          toAddons(in.Addons),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrRangeConflict) {
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingRequested(ctx, listing.OwnerID, b)
	}

	return b, nil
}

// UpdateBooking re-runs validation and pricing for new dates, guests and
// addons. The addon list is replaced wholesale, and the recomputed total
// carries the update-time service fee. Overlap against other bookings is
// deliberately not re-checked here; the reference behavior admits edited
// ranges without it.
func (s *Service) UpdateBooking(ctx context.Context, publicID string, in UpdateBookingInput, requesterID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if b.GuestID != requesterID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidState
	}

	checkIn, checkOut := dateOnly(in.CheckIn), dateOnly(in.CheckOut)
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return nil, ErrInvalidRequest
	}
	if checkIn.Before(today()) {
		return nil, ErrInvalidRequest
	}

	listing, err := s.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if in.Guests <= 0 || !validAddons(in.Addons) {
		return nil, ErrInvalidRequest
	}
	if in.Guests > listing.MaxGuests {
		return nil, ErrCapacityExceeded
	}

	nights := nightsBetween(checkIn, checkOut)
	subtotal := listing.NightlyPrice.
		Mul(decimal.NewFromInt(int64(nights))).
		Add(addonsTotal(in.Addons))
	total := subtotal.Add(subtotal.Mul(serviceFeeRate)).Round(2)

	b.CheckIn = checkIn
	b.CheckOut = checkOut
	b.Nights = nights
	b.Guests = in.Guests
	b.TotalPrice = total
	b.Addons = toAddons(in.Addons)

	if err := s.bookings.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrRangeConflict) {
			return nil, ErrNotAvailable
		}
		return nil, err
	}
	return b, nil
}

// CancelBooking is the guest-initiated cancellation path that records a
// reason and timestamp.
func (s *Service) CancelBooking(ctx context.Context, publicID, reason string, requesterID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if b.GuestID != requesterID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidState
	}
	if dateOnly(b.CheckIn).Before(today()) {
		return nil, ErrInvalidState
	}

	now := time.Now().UTC()
	b.Status = domain.BookingCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if listing, lerr := s.listings.GetByID(ctx, b.ListingID); lerr == nil {
			_ = s.notifs.NotifyBookingCancelled(ctx, listing.OwnerID, b, reason)
		}
	}

	return b, nil
}

// UpdateBookingStatus is the host approval/rejection path. A guest may only
// use it to cancel their own booking; this path records no reason, unlike
// CancelBooking.
func (s *Service) UpdateBookingStatus(ctx context.Context, publicID string, newStatus domain.BookingStatus, requesterID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, asNotFound(err)
	}

	listing, err := s.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if newStatus == domain.BookingCancelled {
		if requesterID != b.GuestID && requesterID != listing.OwnerID {
			return nil, ErrForbidden
		}
		if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
			return nil, ErrInvalidState
		}
		now := time.Now().UTC()
		b.CancelledAt = &now
	} else {
		if requesterID != listing.OwnerID {
			return nil, ErrForbidden
		}
		switch {
		case b.Status == domain.BookingPending && newStatus == domain.BookingConfirmed:
		case b.Status == domain.BookingPending && newStatus == domain.BookingRejected:
		default:
			return nil, ErrInvalidState
		}
	}

	b.Status = newStatus
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		switch newStatus {
		case domain.BookingConfirmed:
			_ = s.notifs.NotifyBookingConfirmed(ctx, b.GuestID, b)
		case domain.BookingRejected:
			_ = s.notifs.NotifyBookingRejected(ctx, b.GuestID, b)
		case domain.BookingCancelled:
			_ = s.notifs.NotifyBookingCancelled(ctx, listing.OwnerID, b, "")
		}
	}

	return b, nil
}

// ConfirmPayment marks the booking paid. Idempotent: confirming an already
// paid booking returns the current state without error. A cancelled or
// rejected booking stays terminal; paying it must not put its date range
// back in play.
func (s *Service) ConfirmPayment(ctx context.Context, publicID string, guestID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if b.GuestID != guestID {
		return nil, ErrForbidden
	}
	if b.PaymentStatus == domain.PaymentPaid {
		return b, nil
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidState
	}

	b.PaymentStatus = domain.PaymentPaid
	b.Status = domain.BookingConfirmed

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListUnavailableDates returns every calendar date covered by an active
// booking on the listing, sorted ascending. A malformed booking record is
// logged and skipped rather than failing the whole calendar.
func (s *Service) ListUnavailableDates(ctx context.Context, listingID int64) ([]time.Time, error) {
	rows, err := s.bookings.FindAllForListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	seen := make(map[time.Time]struct{})
	for _, b := range rows {
		if !b.Status.Active() {
			continue
		}
		in, out := dateOnly(b.CheckIn), dateOnly(b.CheckOut)
		if !out.After(in) {
			log.Printf("booking %s has an invalid date range, skipping", b.PublicID)
			continue
		}
		for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
			seen[d] = struct{}{}
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func (s *Service) GetBooking(ctx context.Context, publicID string, requesterID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if b.GuestID != requesterID {
		listing, lerr := s.listings.GetByID(ctx, b.ListingID)
		if lerr != nil || listing.OwnerID != requesterID {
			return nil, ErrForbidden
		}
	}
	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.FindByGuest(ctx, guestID, limit, offset)
}

func (s *Service) GetBookingsForListing(ctx context.Context, listingID, requesterID int64) ([]domain.Booking, error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if listing.OwnerID != requesterID {
		return nil, ErrForbidden
	}
	return s.bookings.FindAllForListing(ctx, listingID)
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
