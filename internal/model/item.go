package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one inventory line. Category/SubCategory/AgeGroup are free strings,
// normally drawn from the option registry but deliberately not foreign keys:
// an item stays valid even if its option is later renamed or removed.
type Item struct {
	BaseModel
	Category    string          `gorm:"type:varchar(100);not null" json:"category" validate:"required"`
	SubCategory string          `gorm:"type:varchar(100)" json:"sub_category"`
	Color       string          `gorm:"type:varchar(50);not null" json:"color" validate:"required"`
	AgeGroup    string          `gorm:"type:varchar(20);not null" json:"age_group" validate:"required"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"price"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"cost_price"`
	ImageURI    string          `gorm:"type:text" json:"image_uri"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`

	// Stamped by the store on every create/update/quantity change,
	// never taken from the caller. Drives the dashboard ordering.
	LastUpdated time.Time `gorm:"index;not null" json:"last_updated"`
}
