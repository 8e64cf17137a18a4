package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(order *entity.Order) error {
	return r.DB.Create(order).Error
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetForUser filters on owner and id together, so an order belonging to
// someone else is indistinguishable from a missing one.
func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByID(orderID uint) (*entity.Order, error) {
	var order entity.Order
	if err := r.DB.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("User").
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}

func (r *OrderRepository) SumTotalSince(t time.Time) (float64, error) {
	var sum float64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&sum).Error
	return sum, err
}

func (r *OrderRepository) AvgTotal() (float64, error) {
	var avg float64
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(AVG(total_amount), 0)").Scan(&avg).Error
	return avg, err
}
