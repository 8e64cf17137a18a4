package repository

import (
	"gorm.io/gorm"

	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.DB.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(id uint, fields map[string]any) (*entity.MenuItem, error) {
	item, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.DB.Model(item).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (r *MenuRepository) Delete(id uint) error {
	item, err := r.FindByID(id)
	if err != nil {
		return err
	}
	return r.DB.Delete(item).Error
}
