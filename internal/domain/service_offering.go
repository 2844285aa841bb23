package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOffering is a host-provided extra (cleaning, airport pickup, ...)
// attached to a listing. Bookings copy offerings into their own addon lines
// at request time, so editing an offering never rewrites past bookings.
type ServiceOffering struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	ListingID   int64           `json:"listing_id" gorm:"index"`
	Name        string          `json:"name"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (ServiceOffering) TableName() string { return "service_offerings" }
