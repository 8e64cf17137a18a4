package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetWithItems loads the user's cart with the live menu items resolved.
// Returns gorm.ErrRecordNotFound when the user has no cart yet; callers
// decide whether that means "create one" (GET) or "404" (update/clear).
func (r *CartRepository) GetWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreate materializes the cart on first touch.
func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) FindLine(cartID, menuItemID uint) (*entity.CartLine, error) {
	var line entity.CartLine
	err := r.DB.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) SaveLine(line *entity.CartLine) error {
	return r.DB.Save(line).Error
}

func (r *CartRepository) DeleteLine(line *entity.CartLine) error {
	return r.DB.Unscoped().Delete(line).Error
}

// ClearLines empties the cart in place; the cart row itself survives.
func (r *CartRepository) ClearLines(cartID uint) error {
	return r.DB.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartLine{}).Error
}
