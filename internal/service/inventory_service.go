package service

import (
	"errors"
	"time"

	"go-apparel-stock/internal/model"
	"go-apparel-stock/internal/repository"
	"go-apparel-stock/internal/ws"
	"go-apparel-stock/pkg/apperr"
	"go-apparel-stock/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryService interface {
	CreateItem(req *model.Item) (*model.Item, error)
	UpdateItem(id uuid.UUID, req *model.Item) (*model.Item, error)
	SetQuantity(id uuid.UUID, newQuantity int) error
	Sell(id uuid.UUID, quantity int, price decimal.Decimal) (*model.Sale, error)
	Restock(id uuid.UUID) (*model.Item, error)
	DeleteItem(id uuid.UUID) error
	ListItems() ([]model.Item, error)
	History(itemID *uuid.UUID) ([]model.Sale, error)
}

type inventoryService struct {
	itemRepo repository.ItemRepository
	saleRepo repository.SaleRepository
	db       *gorm.DB
	hub      *ws.Hub
}

func NewInventoryService(iRepo repository.ItemRepository, sRepo repository.SaleRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		itemRepo: iRepo,
		saleRepo: sRepo,
		db:       db,
		hub:      hub,
	}
}

// validateItem is the second line of defense behind the UI's own input checks.
func validateItem(req *model.Item) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return apperr.Validation("field '%s' failed on '%s'", first.FailedField, first.Tag)
	}
	if req.Price.IsNegative() {
		return apperr.Validation("price must not be negative")
	}
	if req.CostPrice.IsNegative() {
		return apperr.Validation("cost price must not be negative")
	}
	return nil
}

func (s *inventoryService) CreateItem(req *model.Item) (*model.Item, error) {
	if err := validateItem(req); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Create(req); err != nil {
		return nil, apperr.Storage(err)
	}

	s.publish("item_created", req)
	return req, nil
}

func (s *inventoryService) UpdateItem(id uuid.UUID, req *model.Item) (*model.Item, error) {
	if err := validateItem(req); err != nil {
		return nil, err
	}

	req.ID = id
	rows, err := s.itemRepo.Update(req)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if rows == 0 {
		return nil, apperr.NotFound("item %s not found", id)
	}

	updated, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	s.publish("item_updated", updated)
	return updated, nil
}

// SetQuantity is the bare quantity-only mutation. Non-negativity is the
// caller's invariant: Sell and Restock keep it, direct callers must too.
func (s *inventoryService) SetQuantity(id uuid.UUID, newQuantity int) error {
	rows, err := s.itemRepo.UpdateQuantity(s.db, id, newQuantity)
	if err != nil {
		return apperr.Storage(err)
	}
	if rows == 0 {
		return apperr.NotFound("item %s not found", id)
	}
	return nil
}

// Sell is the one compound state transition: decrement stock and append a
// ledger entry in a single transaction, so neither write is ever observed
// without the other. Never produces negative stock.
func (s *inventoryService) Sell(id uuid.UUID, quantity int, price decimal.Decimal) (*model.Sale, error) {
	if quantity <= 0 {
		return nil, apperr.Validation("sale quantity must be positive")
	}
	if price.IsNegative() {
		return nil, apperr.Validation("sale price must not be negative")
	}

	var sale *model.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item model.Item
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("item %s not found", id)
			}
			return apperr.Storage(err)
		}

		if item.Quantity < quantity {
			return apperr.InsufficientStock("item has %d in stock, cannot sell %d", item.Quantity, quantity)
		}

		if _, err := s.itemRepo.UpdateQuantity(tx, id, item.Quantity-quantity); err != nil {
			return apperr.Storage(err)
		}

		sale = &model.Sale{
			ItemID:      id,
			Quantity:    quantity,
			Price:       price,
			Total:       price.Mul(decimal.NewFromInt(int64(quantity))),
			Category:    item.Category,
			SubCategory: item.SubCategory,
			Color:       item.Color,
			SoldAt:      time.Now().UTC(),
		}
		if errs := validator.ValidateStruct(sale); len(errs) > 0 {
			return apperr.Validation("field '%s' failed on '%s'", errs[0].FailedField, errs[0].Tag)
		}
		if err := s.saleRepo.Create(tx, sale); err != nil {
			return apperr.Storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("item_sold", sale)
	return sale, nil
}

// Restock is a correction operation: unconditional +1, no ledger entry.
func (s *inventoryService) Restock(id uuid.UUID) (*model.Item, error) {
	var updated *model.Item
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item model.Item
		if err := tx.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("item %s not found", id)
			}
			return apperr.Storage(err)
		}

		if _, err := s.itemRepo.UpdateQuantity(tx, id, item.Quantity+1); err != nil {
			return apperr.Storage(err)
		}
		item.Quantity++
		updated = &item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("item_restocked", updated)
	return updated, nil
}

// DeleteItem removes the item without cascading to its ledger entries.
func (s *inventoryService) DeleteItem(id uuid.UUID) error {
	rows, err := s.itemRepo.Delete(id)
	if err != nil {
		return apperr.Storage(err)
	}
	if rows == 0 {
		return apperr.NotFound("item %s not found", id)
	}

	s.publish("item_deleted", map[string]string{"id": id.String()})
	return nil
}

func (s *inventoryService) ListItems() ([]model.Item, error) {
	items, err := s.itemRepo.FindAll()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

// History returns ledger entries newest first; with a nil itemID the whole
// ledger is returned. Display attributes come from the snapshot taken at sale
// time, so entries for deleted items still resolve.
func (s *inventoryService) History(itemID *uuid.UUID) ([]model.Sale, error) {
	var (
		sales []model.Sale
		err   error
	)
	if itemID != nil {
		sales, err = s.saleRepo.FindByItem(*itemID)
	} else {
		sales, err = s.saleRepo.FindAll()
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return sales, nil
}

func (s *inventoryService) publish(event string, payload any) {
	if s.hub == nil {
		return
	}
	go s.hub.Publish(event, payload)
}
