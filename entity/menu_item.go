package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   bool    `gorm:"default:true" json:"available"`

	CartLines  []CartLine  `json:"-"`
	OrderLines []OrderLine `json:"-"`
}
