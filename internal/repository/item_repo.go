package repository

import (
	"time"

	"go-apparel-stock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *model.Item) error
	FindByID(id uuid.UUID) (*model.Item, error)
	FindAll() ([]model.Item, error)
	Update(item *model.Item) (int64, error)
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) (int64, error)
	Delete(id uuid.UUID) (int64, error)
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(item *model.Item) error {
	item.LastUpdated = time.Now().UTC()
	return r.db.Create(item).Error
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll returns all items most recently touched first. This ordering is the
// dashboard's "recently active" view and must be preserved.
func (r *itemRepo) FindAll() ([]model.Item, error) {
	var items []model.Item
	err := r.db.Order("last_updated DESC").Find(&items).Error
	return items, err
}

// Update replaces all mutable fields and restamps last_updated. The affected
// row count is returned so callers can treat zero rows as a soft not-found.
func (r *itemRepo) Update(item *model.Item) (int64, error) {
	res := r.db.Model(&model.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"category":     item.Category,
			"sub_category": item.SubCategory,
			"color":        item.Color,
			"age_group":    item.AgeGroup,
			"price":        item.Price,
			"cost_price":   item.CostPrice,
			"image_uri":    item.ImageURI,
			"quantity":     item.Quantity,
			"last_updated": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

// UpdateQuantity takes a *gorm.DB so the quantity mutation can run inside the
// caller's transaction alongside the ledger insert.
func (r *itemRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) (int64, error) {
	res := tx.Model(&model.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":     newQuantity,
			"last_updated": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

// Delete removes the item row only. Ledger entries referencing the item are
// kept: history survives deletion.
func (r *itemRepo) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Item{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
