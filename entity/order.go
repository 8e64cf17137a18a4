package entity

import (
	"gorm.io/gorm"
)

// Order statuses. Initial is pending; delivered and cancelled end the
// lifecycle by convention.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []OrderLine `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// TotalAmount is supplied by the client at checkout and stored as-is.
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `gorm:"not null;default:pending" json:"status"`
	PaymentStatus string  `gorm:"not null;default:pending" json:"paymentStatus"`
}
