package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// OrderItems is an ordered sequence of opaque line-item records. The shape of
// each record is client-defined, so items are stored as a JSON text column
// instead of a typed relation.
type OrderItems []map[string]interface{}

// Value marshals the items to JSON for storage.
func (i OrderItems) Value() (driver.Value, error) {
	return json.Marshal(i)
}

// Scan unmarshals a JSON column value back into items.
func (i *OrderItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*i = nil
		return nil
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("unsupported order items column type %T", src)
	}
}

// Order represents a completed purchase recorded after payment.
type Order struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	BuyerEmail  string     `json:"buyerEmail" gorm:"index;type:varchar(255)" validate:"required,email"`
	Items       OrderItems `json:"items" gorm:"type:text" validate:"required"`
	TotalAmount float64    `json:"totalAmount" validate:"required,gt=0"`
	Commission  float64    `json:"commission"` // always 1.5% of TotalAmount, set at write time
	PaymentID   string     `json:"paymentId" gorm:"type:varchar(64)" validate:"required"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
