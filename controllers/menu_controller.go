package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
	"github.com/Animeshkhedkar0523/campus-smart-eats/pkg/resp"
	"github.com/Animeshkhedkar0523/campus-smart-eats/repository"
)

type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(r *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: r}
}

// GET /menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, "error fetching menu items")
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}

type menuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Available   *bool    `json:"available"`
}

// POST /menu (admin)
func (ctl *MenuController) Create(c *gin.Context) {
	var item entity.MenuItem
	item.Available = true
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if item.Name == "" || item.Price < 0 {
		resp.BadRequest(c, "name is required and price must be non-negative")
		return
	}

	if err := ctl.Repo.Create(&item); err != nil {
		resp.ServerError(c, "error creating menu item")
		return
	}
	resp.Created(c, item)
}

// PUT /menu/:id (admin) — updates only the fields present in the body.
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			resp.BadRequest(c, "price must be non-negative")
			return
		}
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}

	item, err := ctl.Repo.Update(uint(id), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, "error updating menu item")
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id (admin)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, "error deleting menu item")
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted successfully"})
}
