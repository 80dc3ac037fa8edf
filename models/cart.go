package models

import "time"

// CartItem holds one product line of a user's cart. There is at most one
// row per (user, product) pair; repeat adds increment Quantity instead of
// inserting a second row.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	ProductID uint      `json:"productId" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

func (CartItem) TableName() string {
	return "carts"
}
