package model

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"_id"`
	Email        string `gorm:"unique;not null" json:"email"`
	Username     string `gorm:"unique;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Verified     bool   `gorm:"default:false" json:"verified"`

	Remasters []Remaster `gorm:"foreignKey:CreatorID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
