package model

import "time"

// Client is a directory entry. Created explicitly by sales, or implicitly
// when a user registers with the client role (matched by email).
type Client struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"column:nom;not null"`
	Email     string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Client) TableName() string { return "clients" }
