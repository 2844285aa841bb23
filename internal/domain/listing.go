package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing is a bookable property. Currency may be empty in storage; the
// repository substitutes the configured fallback on read so callers always
// see a concrete code.
type Listing struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	OwnerID     int64  `json:"owner_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	City        string `json:"city" gorm:"index"`
	Address     string `json:"address"`

	NightlyPrice decimal.Decimal `json:"nightly_price" gorm:"type:decimal(12,2)"`
	Currency     string          `json:"currency" gorm:"size:3"`
	MaxGuests    int             `json:"max_guests"`
	Bedrooms     int             `json:"bedrooms"`
	InstantBook  bool            `json:"instant_book"`

	Amenities []string `json:"amenities" gorm:"serializer:json"`
	Photos    []string `json:"photos" gorm:"serializer:json"`

	IsActive bool `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Listing) TableName() string { return "listings" }
