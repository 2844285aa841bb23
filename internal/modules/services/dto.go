package services

import "github.com/shopspring/decimal"

type CreateOfferingRequest struct {
	ListingID   int64           `json:"listing_id" binding:"required"`
	Name        string          `json:"name" binding:"required,min=2,max=120"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

type UpdateOfferingRequest struct {
	Name        string          `json:"name" binding:"required,min=2,max=120"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	IsActive    *bool           `json:"is_active"`
}
