package models

import "time"

// LoginToken is a single-use opaque credential for the passwordless login
// flow. A pending token (ConsumedAt nil) may be confirmed exactly once
// before ExpiresAt; once confirmed it becomes the bearer session credential
// until the session window closes.
type LoginToken struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email      string     `json:"email" gorm:"index;type:varchar(255)"`
	Token      string     `json:"-" gorm:"uniqueIndex;type:varchar(64)"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	ConsumedAt *time.Time `json:"consumedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}
