package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Animeshkhedkar0523/campus-smart-eats/pkg/resp"
	"github.com/Animeshkhedkar0523/campus-smart-eats/services"
	"github.com/Animeshkhedkar0523/campus-smart-eats/utils"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

type cartLineRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	// Quantity is stored as given; zero removes on update, and add applies
	// no positivity check.
	Quantity int `json:"quantity"`
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	cart, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, "error fetching cart")
		return
	}
	resp.OK(c, cart)
}

// POST /cart/add
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req cartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.Add(uid, req.MenuItemID, req.Quantity)
	if err != nil {
		resp.ServerError(c, "error adding item to cart")
		return
	}
	resp.OK(c, cart)
}

// PUT /cart/update
func (h *CartController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req cartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.UpdateLine(uid, req.MenuItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartNotFound):
			resp.NotFound(c, "cart not found")
		case errors.Is(err, services.ErrLineNotFound):
			resp.NotFound(c, "item not found in cart")
		default:
			resp.ServerError(c, "error updating cart item")
		}
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/clear
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	cart, err := h.Svc.Clear(uid)
	if err != nil {
		if errors.Is(err, services.ErrCartNotFound) {
			resp.NotFound(c, "cart not found")
			return
		}
		resp.ServerError(c, "error clearing cart")
		return
	}
	resp.OK(c, cart)
}
