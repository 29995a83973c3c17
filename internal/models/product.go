package models

import "gorm.io/gorm"

// Product represents a listing owned by a farmer. FarmerEmail references
// User.Email by value; nothing enforces that the farmer exists.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FarmerEmail string  `json:"farmerEmail" gorm:"index;type:varchar(255)" validate:"required,email"`
	Name        string  `json:"name" validate:"required,max=100"`
	Category    string  `json:"category" validate:"required,max=100"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductUpdate carries a partial update. Only non-nil fields are applied,
// so an omitted field never overwrites the stored value.
type ProductUpdate struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Quantity *int     `json:"quantity" validate:"omitempty,gt=0"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
}

// Fields returns the column/value pairs a partial update should write.
func (u ProductUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Quantity != nil {
		fields["quantity"] = *u.Quantity
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	return fields
}
