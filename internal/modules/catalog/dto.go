package catalog

import (
	"github.com/shopspring/decimal"
)

type CreateListingRequest struct {
	Title        string          `json:"title" binding:"required,min=3,max=200"`
	Description  string          `json:"description"`
	City         string          `json:"city" binding:"required"`
	Address      string          `json:"address"`
	NightlyPrice decimal.Decimal `json:"nightly_price" binding:"required"`
	Currency     string          `json:"currency" binding:"omitempty,currency"`
	MaxGuests    int             `json:"max_guests" binding:"required,gt=0"`
	Bedrooms     int             `json:"bedrooms" binding:"omitempty,gte=0"`
	InstantBook  bool            `json:"instant_book"`
	Amenities    []string        `json:"amenities"`
	Photos       []string        `json:"photos"`
}

type UpdateListingRequest struct {
	Title        string          `json:"title" binding:"required,min=3,max=200"`
	Description  string          `json:"description"`
	City         string          `json:"city" binding:"required"`
	Address      string          `json:"address"`
	NightlyPrice decimal.Decimal `json:"nightly_price" binding:"required"`
	Currency     string          `json:"currency" binding:"omitempty,currency"`
	MaxGuests    int             `json:"max_guests" binding:"required,gt=0"`
	Bedrooms     int             `json:"bedrooms" binding:"omitempty,gte=0"`
	InstantBook  bool            `json:"instant_book"`
	Amenities    []string        `json:"amenities"`
	Photos       []string        `json:"photos"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
