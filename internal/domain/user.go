package domain

import "time"

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

// User is a thin identity record. Authentication lives outside this service;
// the JWT middleware only extracts user_id and role from tokens issued
// elsewhere.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Role      Role      `json:"role" gorm:"size:16"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
