package repositories

import (
	"agrimart/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByFarmerEmail(farmerEmail string) ([]models.Product, error)
	Create(product *models.Product) error
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}
