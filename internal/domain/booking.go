package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingRejected   BookingStatus = "rejected"
)

// Active reports whether the booking still blocks its date range.
func (s BookingStatus) Active() bool {
	return s != BookingCancelled && s != BookingRejected
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking reserves a listing for a half-open [CheckIn, CheckOut) date range.
// PublicID is the identifier exposed to clients; the row ID never leaves
// the repository layer.
type Booking struct {
	ID        int64  `json:"-" gorm:"primaryKey"`
	PublicID  string `json:"id" gorm:"column:public_id;size:36;uniqueIndex"`
	ListingID int64  `json:"listing_id" gorm:"index"`
	GuestID   int64  `json:"guest_id" gorm:"index"`

	CheckIn  time.Time `json:"check_in" gorm:"type:date"`
	CheckOut time.Time `json:"check_out" gorm:"type:date"`
	// Nights is always derived from the dates, never taken from input.
	Nights int `json:"nights"`

	Guests int `json:"guests"`

	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2)"`
	Currency   string          `json:"currency" gorm:"size:3"`

	Status        BookingStatus `json:"status" gorm:"size:16;index"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"size:16"`

	SpecialRequests    string     `json:"special_requests,omitempty" gorm:"type:text"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	Addons []BookingAddon `json:"addons" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// BookingAddon is an extra charge line owned by a single booking. Addons are
// replaced wholesale on update; they have no life of their own.
type BookingAddon struct {
	ID          int64           `json:"-" gorm:"primaryKey"`
	BookingID   int64           `json:"-" gorm:"index"`
	Position    int             `json:"-"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2)"`
	Quantity    int             `json:"quantity"`
}

func (BookingAddon) TableName() string { return "booking_addons" }
