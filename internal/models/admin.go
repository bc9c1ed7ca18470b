package models

import "time"

// Admin is an allow-list entry. Membership grants moderation rights and is
// provisioned out of band; the API only ever reads this table.
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}
