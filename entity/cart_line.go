package entity

import (
	"gorm.io/gorm"
)

// CartLine references the live menu item: no price copy, so cart display
// always reflects the current catalog price. At most one line per menu item.
type CartLine struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `json:"quantity"`
}
