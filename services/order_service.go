package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
	"github.com/Animeshkhedkar0523/campus-smart-eats/repository"
)

type OrderService struct {
	Repo     *repository.OrderRepository
	UserRepo *repository.UserRepository

	// StrictStatus gates the transition table. Off means the legacy
	// behavior: any status may be set from any other.
	StrictStatus bool
}

func NewOrderService(repo *repository.OrderRepository, userRepo *repository.UserRepository, strictStatus bool) *OrderService {
	return &OrderService{Repo: repo, UserRepo: userRepo, StrictStatus: strictStatus}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Price      float64 `json:"price"`
}

type CreateOrderReq struct {
	Items       []OrderLineIn `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64       `json:"totalAmount"`
}

// Create persists a new pending order for the user. The line prices and the
// total come from the client and are stored as submitted; the server does
// not recompute them against the catalog. Clearing the cart is the client's
// separate call.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	lines := make([]entity.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, entity.OrderLine{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}

	order := &entity.Order{
		UserID:        userID,
		Items:         lines,
		TotalAmount:   req.TotalAmount,
		Status:        entity.StatusPending,
		PaymentStatus: entity.PaymentPending,
	}
	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

// GetForUser returns ErrOrderNotFound both for a missing order and for one
// owned by another user.
func (s *OrderService) GetForUser(userID, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets the order status. The value must be in the enum; in
// strict mode it must also be reachable from the current status.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.Repo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if s.StrictStatus && !CanTransition(order.Status, status) {
		return nil, ErrIllegalTransition
	}

	if err := s.Repo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

// Stats is the admin dashboard snapshot: today's order count and revenue,
// the customer count, and the mean order value over all orders. Every call
// recomputes from scratch; O(n) in the orders table.
type Stats struct {
	OrdersToday   int64   `json:"ordersToday"`
	RevenueToday  float64 `json:"revenueToday"`
	TotalUsers    int64   `json:"totalUsers"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

func (s *OrderService) GetStats() (*Stats, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	ordersToday, err := s.Repo.CountCreatedSince(midnight)
	if err != nil {
		return nil, err
	}
	revenueToday, err := s.Repo.SumTotalSince(midnight)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.UserRepo.CountByRole(entity.RoleUser)
	if err != nil {
		return nil, err
	}
	avg, err := s.Repo.AvgTotal()
	if err != nil {
		return nil, err
	}

	return &Stats{
		OrdersToday:   ordersToday,
		RevenueToday:  revenueToday,
		TotalUsers:    totalUsers,
		AvgOrderValue: avg,
	}, nil
}
