package repository

import (
	"time"

	"go-apparel-stock/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	FindByItem(itemID uuid.UUID) ([]model.Sale, error)
	GetItemSnapshots() ([]ItemSnapshot, error)
	GetDashboardStats() (*DashboardStats, error)
}

// ItemSnapshot is one row of the denormalized export view: the item joined
// with its aggregated sales history. Items with no sales carry zero aggregates.
type ItemSnapshot struct {
	ID           uuid.UUID       `json:"id"`
	Category     string          `json:"category"`
	SubCategory  string          `json:"sub_category"`
	Color        string          `json:"color"`
	AgeGroup     string          `json:"age_group"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int             `json:"quantity"`
	LastUpdated  time.Time       `json:"last_updated"`
	SoldQuantity int             `json:"sold_quantity"`
	SoldRevenue  decimal.Decimal `json:"sold_revenue"`
}

// DashboardStats for the overview endpoint.
type DashboardStats struct {
	TotalItems      int64           `json:"total_items"`
	UnitsInStock    int64           `json:"units_in_stock"`
	OutOfStockCount int64           `json:"out_of_stock_count"`
	StockValuation  decimal.Decimal `json:"stock_valuation"`
	LifetimeRevenue decimal.Decimal `json:"lifetime_revenue"`
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db: db}
}

// Create appends a ledger entry inside the caller's transaction.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Order("sold_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByItem(itemID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Where("item_id = ?", itemID).Order("sold_at DESC").Find(&sales).Error
	return sales, err
}

// GetItemSnapshots left-joins current items with their sale aggregates.
// Items with no sales must appear with zero-valued aggregates, never be dropped.
func (r *saleRepo) GetItemSnapshots() ([]ItemSnapshot, error) {
	var rows []ItemSnapshot
	err := r.db.Model(&model.Item{}).
		Select(`
			items.id,
			items.category,
			items.sub_category,
			items.color,
			items.age_group,
			items.price,
			items.cost_price,
			items.quantity,
			items.last_updated,
			COALESCE(SUM(sales.quantity), 0) AS sold_quantity,
			COALESCE(SUM(sales.total), 0) AS sold_revenue
		`).
		Joins("LEFT JOIN sales ON sales.item_id = items.id").
		Group("items.id").
		Order("items.last_updated DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *saleRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Item{}).Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Item{}).
		Select("COALESCE(SUM(quantity), 0)").Scan(&stats.UnitsInStock).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Item{}).
		Where("quantity = 0").Count(&stats.OutOfStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Item{}).
		Select("COALESCE(SUM(quantity * price), 0)").Scan(&stats.StockValuation).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(total), 0)").Scan(&stats.LifetimeRevenue).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
