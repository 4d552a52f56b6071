package repository

import (
	"testing"

	"go-apparel-stock/internal/model"
	"go-apparel-stock/pkg/apperr"

	"github.com/stretchr/testify/require"
)

func TestAddOptionDuplicateIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewOptionRepo(db)

	require.NoError(t, repo.Add(model.OptionCategory, "Shirt", ""))
	require.NoError(t, repo.Add(model.OptionCategory, "Shirt", ""))

	var count int64
	require.NoError(t, db.Model(&model.Option{}).
		Where("type = ? AND value = ?", model.OptionCategory, "Shirt").
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddOptionSelfHealsMissingParent(t *testing.T) {
	db := newTestDB(t)
	repo := NewOptionRepo(db)

	require.NoError(t, repo.Add(model.OptionSubCategory, "Graphic", "NoSuchCategoryYet"))

	var parent model.Option
	require.NoError(t, db.Where("type = ? AND value = ?", model.OptionCategory, "NoSuchCategoryYet").
		First(&parent).Error)

	values, err := repo.List(model.OptionSubCategory, "NoSuchCategoryYet")
	require.NoError(t, err)
	require.Equal(t, []string{"Graphic"}, values)
}

func TestAddOptionScopesDuplicatesByParent(t *testing.T) {
	db := newTestDB(t)
	repo := NewOptionRepo(db)

	require.NoError(t, repo.Add(model.OptionSubCategory, "Slim", "Pant"))
	require.NoError(t, repo.Add(model.OptionSubCategory, "Slim", "Shirt"))

	var count int64
	require.NoError(t, db.Model(&model.Option{}).
		Where("type = ? AND value = ?", model.OptionSubCategory, "Slim").
		Count(&count).Error)
	require.EqualValues(t, 2, count)

	values, err := repo.List(model.OptionSubCategory, "Pant")
	require.NoError(t, err)
	require.Equal(t, []string{"Slim"}, values)
}

func TestListSortsAscending(t *testing.T) {
	db := newTestDB(t)
	repo := NewOptionRepo(db)

	for _, value := range []string{"Kurta", "Dress", "T-Shirt"} {
		require.NoError(t, repo.Add(model.OptionCategory, value, ""))
	}

	values, err := repo.List(model.OptionCategory, "")
	require.NoError(t, err)
	require.Equal(t, []string{"Dress", "Kurta", "T-Shirt"}, values)
}

func TestListUnresolvedParentReturnsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewOptionRepo(db)

	values, err := repo.List(model.OptionSubCategory, "NeverCreated")
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestListRejectsParentOnTopLevelType(t *testing.T) {
	db := newTestDB(t)
	repo := NewOptionRepo(db)

	_, err := repo.List(model.OptionCategory, "Clothing")
	require.Error(t, err)
	require.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestAddOptionRejectsParentOnTopLevelType(t *testing.T) {
	db := newTestDB(t)
	repo := NewOptionRepo(db)

	err := repo.Add(model.OptionCategory, "Shirt", "Clothing")
	require.Error(t, err)
	require.True(t, apperr.IsCode(err, apperr.CodeValidation))
}

func TestAddOptionRejectsEmptyValue(t *testing.T) {
	db := newTestDB(t)
	repo := NewOptionRepo(db)

	err := repo.Add(model.OptionCategory, "", "")
	require.True(t, apperr.IsCode(err, apperr.CodeValidation))
}
