package repositories

import "agrimart/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmailAndRole(email, role string) (*models.User, error)
}
