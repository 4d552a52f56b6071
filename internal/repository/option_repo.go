package repository

import (
	"errors"

	"go-apparel-stock/internal/model"
	"go-apparel-stock/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OptionRepository interface {
	List(typ model.OptionType, parentValue string) ([]string, error)
	Add(typ model.OptionType, value, parentValue string) error
}

type optionRepo struct {
	db *gorm.DB
}

func NewOptionRepo(db *gorm.DB) OptionRepository {
	return &optionRepo{db: db}
}

// List returns all values of typ sorted ascending. When parentValue is given it
// is first resolved to a parent option; an unresolvable parent yields an empty
// list, not an error, since the caller may be probing a not-yet-created value.
// A parent on a type that takes none is rejected, same as Add.
func (r *optionRepo) List(typ model.OptionType, parentValue string) ([]string, error) {
	query := r.db.Model(&model.Option{}).Where("type = ?", typ)

	if parentValue != "" {
		if _, ok := typ.ParentType(); !ok {
			return nil, apperr.Validation("option type %s does not take a parent", typ)
		}
		parent, err := r.findParent(typ, parentValue)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return []string{}, nil
		}
		query = query.Where("parent_id = ?", parent.ID)
	}

	values := []string{}
	if err := query.Order("value ASC").Pluck("value", &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// Add inserts an option with exactly-once semantics: a duplicate
// (type, value, resolved parent) triple is a no-op. A missing parent is
// auto-created with the child type's top-level parent type rather than
// failing the insert.
func (r *optionRepo) Add(typ model.OptionType, value, parentValue string) error {
	if value == "" {
		return apperr.Validation("option value must not be empty")
	}

	var parentID *uuid.UUID
	if parentValue != "" {
		parentType, ok := typ.ParentType()
		if !ok {
			return apperr.Validation("option type %s does not take a parent", typ)
		}
		parent, err := r.findParent(typ, parentValue)
		if err != nil {
			return err
		}
		if parent == nil {
			parent = &model.Option{Type: parentType, Value: parentValue}
			if err := r.db.Create(parent).Error; err != nil {
				return err
			}
		}
		parentID = &parent.ID
	}

	existing := r.db.Model(&model.Option{}).Where("type = ? AND value = ?", typ, value)
	if parentID != nil {
		existing = existing.Where("parent_id = ?", *parentID)
	} else {
		existing = existing.Where("parent_id IS NULL")
	}

	var found model.Option
	err := existing.First(&found).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	option := model.Option{Type: typ, Value: value, ParentID: parentID}
	return r.db.Create(&option).Error
}

// findParent resolves parentValue against the implied parent type of typ.
// A nil result with nil error means the parent does not exist.
func (r *optionRepo) findParent(typ model.OptionType, parentValue string) (*model.Option, error) {
	parentType, ok := typ.ParentType()
	if !ok {
		return nil, nil
	}

	var parent model.Option
	err := r.db.Where("type = ? AND value = ?", parentType, parentValue).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &parent, nil
}
