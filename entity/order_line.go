package entity

import (
	"gorm.io/gorm"
)

// OrderLine snapshots the unit price at order time, unlike CartLine which
// follows the live catalog price.
type OrderLine struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
