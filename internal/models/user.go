package models

import "gorm.io/gorm"

// Roles a user can hold. Admin is a configured credential checked at login,
// not a stored user, so it is not a registrable role.
const (
	RoleBuyer  = "buyer"
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"
)

// User represents a registered buyer or farmer.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone      string `json:"phone" gorm:"type:varchar(32)" validate:"required"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=4"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(16)" validate:"required,oneof=buyer farmer"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
