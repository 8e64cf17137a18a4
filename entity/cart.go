package entity

import (
	"gorm.io/gorm"
)

// Cart is the per-user staging list. One cart per user; created lazily on
// first touch, emptied (not deleted) after checkout.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Items []CartLine `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
