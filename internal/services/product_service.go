package services

import (
	"agrimart/internal/models"
	"agrimart/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves the full catalog for buyers.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetFarmerProducts retrieves the products listed by one farmer. An empty
// farmer email yields an empty list rather than an error.
func (s *ProductService) GetFarmerProducts(farmerEmail string) ([]models.Product, error) {
	if farmerEmail == "" {
		return []models.Product{}, nil
	}
	return s.repo.GetByFarmerEmail(farmerEmail)
}

// CreateProduct creates a new product listing.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update: only fields supplied in the request
// change, omitted fields keep their stored values.
func (s *ProductService) UpdateProduct(id string, update models.ProductUpdate) error {
	fields := update.Fields()
	if len(fields) == 0 {
		// Nothing to change; an empty body is a no-op, not an error.
		return nil
	}
	return s.repo.UpdateFields(id, fields)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
