package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderLine is one entry of the cart snapshot frozen into an order. Name and
// Price are copied from the product at placement time so later catalog edits
// never change a placed order.
type OrderLine struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// OrderLines is stored as a single JSON column.
type OrderLines []OrderLine

func (l OrderLines) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *OrderLines) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported type %T for OrderLines", src)
	}
}

type Order struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"userId" gorm:"not null;index"`
	Products    OrderLines `json:"products" gorm:"type:jsonb;not null"`
	TotalAmount float64    `json:"totalAmount" gorm:"not null"`
	Status      string     `json:"status" gorm:"default:pending"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
