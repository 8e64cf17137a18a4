package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
	"github.com/Animeshkhedkar0523/campus-smart-eats/repository"
)

type CartService struct {
	CartRepo *repository.CartRepository
}

func NewCartService(cr *repository.CartRepository) *CartService {
	return &CartService{CartRepo: cr}
}

// Get returns the user's cart with menu items resolved, creating and
// persisting an empty cart if the user has none yet.
func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	cart, err := s.CartRepo.GetWithItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if _, err := s.CartRepo.GetOrCreate(userID); err != nil {
			return nil, err
		}
		return s.CartRepo.GetWithItems(userID)
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Add appends a line, or accumulates quantity onto the existing line for the
// same menu item. The quantity is stored as given; no positivity check.
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*entity.Cart, error) {
	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	line, err := s.CartRepo.FindLine(cart.ID, menuItemID)
	switch {
	case err == nil:
		line.Quantity += quantity
		if err := s.CartRepo.SaveLine(line); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = &entity.CartLine{CartID: cart.ID, MenuItemID: menuItemID, Quantity: quantity}
		if err := s.CartRepo.SaveLine(line); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.CartRepo.GetWithItems(userID)
}

// UpdateLine overwrites the stored quantity (no accumulation, unlike Add).
// Quantity 0 removes the line entirely.
func (s *CartService) UpdateLine(userID, menuItemID uint, quantity int) (*entity.Cart, error) {
	cart, err := s.CartRepo.GetWithItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	line, err := s.CartRepo.FindLine(cart.ID, menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLineNotFound
	}
	if err != nil {
		return nil, err
	}

	if quantity == 0 {
		if err := s.CartRepo.DeleteLine(line); err != nil {
			return nil, err
		}
	} else {
		line.Quantity = quantity
		if err := s.CartRepo.SaveLine(line); err != nil {
			return nil, err
		}
	}

	return s.CartRepo.GetWithItems(userID)
}

// Clear empties the cart in place. An absent cart is an error; an already
// empty cart is a no-op success.
func (s *CartService) Clear(userID uint) (*entity.Cart, error) {
	cart, err := s.CartRepo.GetWithItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.CartRepo.ClearLines(cart.ID); err != nil {
		return nil, err
	}
	return s.CartRepo.GetWithItems(userID)
}
