package model

import "time"

// Roles determine which pipeline operations an actor may invoke.
const (
	RoleSales    = "sales"
	RoleClient   = "client"
	RoleDelivery = "delivery"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleSales || r == RoleClient || r == RoleDelivery
}

// User stores system accounts with role-based access.
// Rol: "sales" | "client" | "delivery"
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	// ClientID links a client-role account to its Client row; nil for staff.
	ClientID  *uint `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
