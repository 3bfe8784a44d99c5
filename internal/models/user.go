package models

import "time"

// RoleAdmin is the only role issued today.
const RoleAdmin = "admin"

// User is a restaurant owner account. Each user belongs to exactly one
// restaurant and currently always holds the admin role.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RestaurantID string    `json:"restaurantId" gorm:"index;type:varchar(36);not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Role         string    `json:"role" gorm:"type:varchar(32);default:admin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
