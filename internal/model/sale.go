package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is one immutable ledger entry. Total is computed once at insert
// (quantity * realized price) and never recomputed. Category, SubCategory and
// Color are snapshotted from the item at sale time so history stays readable
// after the item is deleted.
type Sale struct {
	BaseModel
	ItemID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id" validate:"uuid_required"`
	Quantity    int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	SubCategory string          `gorm:"type:varchar(100)" json:"sub_category"`
	Color       string          `gorm:"type:varchar(50)" json:"color"`
	SoldAt      time.Time       `gorm:"index;not null" json:"sold_at"`
}
