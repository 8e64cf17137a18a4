package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
	"github.com/Animeshkhedkar0523/campus-smart-eats/pkg/resp"
	"github.com/Animeshkhedkar0523/campus-smart-eats/services"
	"github.com/Animeshkhedkar0523/campus-smart-eats/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Create(uid, &req)
	if err != nil {
		resp.ServerError(c, "error creating order")
		return
	}
	resp.Created(c, order)
}

// GET /orders/user
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, "error fetching orders")
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.Svc.GetForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, "error fetching order")
		return
	}
	resp.OK(c, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /orders/:id/status (admin)
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrIllegalTransition):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, "error updating order status")
		}
		return
	}
	resp.OK(c, order)
}

// adminOrder trims the owner to name/email; password and the rest of the
// user record stay out of the listing.
type adminOrder struct {
	entity.Order
	User gin.H `json:"user"`
}

// GET /orders/admin/all (admin)
func (h *OrderController) ListAll(c *gin.Context) {
	orders, err := h.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, "error fetching orders")
		return
	}

	out := make([]adminOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, adminOrder{
			Order: o,
			User:  gin.H{"name": o.User.Name, "email": o.User.Email},
		})
	}
	resp.OK(c, out)
}

// GET /orders/admin/stats (admin)
func (h *OrderController) Stats(c *gin.Context) {
	stats, err := h.Svc.GetStats()
	if err != nil {
		resp.ServerError(c, "error fetching order stats")
		return
	}
	resp.OK(c, stats)
}
