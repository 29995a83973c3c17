package repositories

import (
	"agrimart/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	Create(order *models.Order) error
}
