package model

import "github.com/google/uuid"

type OptionType string

const (
	OptionCategory    OptionType = "CATEGORY"
	OptionAge         OptionType = "AGE"
	OptionSubCategory OptionType = "SUBCATEGORY"
)

// ParentType reports the top-level type a child taxonomy level resolves against.
// Top-level types have no parent.
func (t OptionType) ParentType() (OptionType, bool) {
	if t == OptionSubCategory {
		return OptionCategory, true
	}
	return "", false
}

// Option is one reusable taxonomy value offered as a selectable choice.
// Value is unique within (Type, ParentID); ParentID is set only for child
// types (a SUBCATEGORY's parent is a CATEGORY option).
type Option struct {
	BaseModel
	Type     OptionType `gorm:"type:varchar(20);not null;index" json:"type" validate:"required"`
	Value    string     `gorm:"type:varchar(100);not null" json:"value" validate:"required"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
}

// Defaults seeded when the options table holds no rows of the type.
var (
	DefaultCategories = []string{"T-Shirt", "Shirt", "Pant", "Kurta", "Other"}
	DefaultAgeGroups  = []string{"0-1", "1-2", "2-3", "3-4", "4-5"}
)
