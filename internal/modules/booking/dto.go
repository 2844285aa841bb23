package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"homestay/internal/domain"
)

// AddonInput is one extra charge line supplied by the client. A missing
// quantity means 1.
type AddonInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    *int            `json:"quantity" binding:"omitempty,gt=0"`
}

func (a AddonInput) quantity() int {
	if a.Quantity == nil {
		return 1
	}
	return *a.Quantity
}

type CreateBookingRequest struct {
	ListingID       int64        `json:"listing_id" binding:"required"`
	CheckIn         string       `json:"check_in" binding:"required"`
	CheckOut        string       `json:"check_out" binding:"required"`
	Guests          int          `json:"guests" binding:"required"`
	Addons          []AddonInput `json:"addons"`
	SpecialRequests string       `json:"special_requests"`
}

type UpdateBookingRequest struct {
	CheckIn  string       `json:"check_in" binding:"required"`
	CheckOut string       `json:"check_out" binding:"required"`
	Guests   int          `json:"guests" binding:"required"`
	Addons   []AddonInput `json:"addons"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateBookingInput is the parsed form the service works with; handlers
// translate request DTOs into it.
type CreateBookingInput struct {
	ListingID       int64
	GuestID         int64
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	Addons          []AddonInput
	SpecialRequests string
}

type UpdateBookingInput struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Addons   []AddonInput
}

func toAddons(in []AddonInput) []domain.BookingAddon {
	out := make([]domain.BookingAddon, 0, len(in))
	for i, a := range in {
		out = append(out, domain.BookingAddon{
			Position:    i,
			Name:        a.Name,
			Description: a.Description,
			UnitPrice:   a.Price,
			Quantity:    a.quantity(),
		})
	}
	return out
}

// validAddons rejects negative unit prices; a crafted addon line must not
// discount the accommodation subtotal.
func validAddons(in []AddonInput) bool {
	for _, a := range in {
		if a.Price.IsNegative() {
			return false
		}
	}
	return true
}

func addonsTotal(in []AddonInput) decimal.Decimal {
	total := decimal.Zero
	for _, a := range in {
		total = total.Add(a.Price.Mul(decimal.NewFromInt(int64(a.quantity()))))
	}
	return total
}
