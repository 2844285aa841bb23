package domain

import "time"

type Review struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	ListingID     int64     `json:"listing_id" gorm:"index"`
	GuestID       int64     `json:"guest_id" gorm:"index"`
	BookingID     int64     `json:"booking_id" gorm:"uniqueIndex"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment" gorm:"type:text"`
	OwnerResponse string    `json:"owner_response,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }
