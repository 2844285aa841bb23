package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotifBookingRequested NotificationType = "booking_requested"
	NotifBookingConfirmed NotificationType = "booking_confirmed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifBookingRejected  NotificationType = "booking_rejected"
	NotifNewReview        NotificationType = "new_review"
	NotifNewMessage       NotificationType = "new_message"
)

// Notification is an in-app record only. Push/email delivery is handled by
// an external consumer reading this table.
type Notification struct {
	ID        int64            `json:"id" gorm:"primaryKey"`
	UserID    int64            `json:"user_id" gorm:"index:idx_notifications_user_unread"`
	Type      NotificationType `json:"type" gorm:"size:32"`
	Title     string           `json:"title"`
	Message   string           `json:"message" gorm:"type:text"`
	Data      json.RawMessage  `json:"data,omitempty" gorm:"type:jsonb"`
	IsRead    bool             `json:"is_read" gorm:"index:idx_notifications_user_unread"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
