package service

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"go-apparel-stock/internal/model"
	"go-apparel-stock/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIncludesUnsoldItemsWithZeroAggregates(t *testing.T) {
	svc, db := newInventoryService(t)
	exporter := NewExportService(repository.NewSaleRepo(db))

	_, err := svc.CreateItem(&model.Item{
		Category: "Shirt", Color: "Red", AgeGroup: "2-3",
		CostPrice: decimal.NewFromInt(50), Quantity: 3,
	})
	require.NoError(t, err)

	rows, err := exporter.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 0, rows[0].SoldQuantity)
	require.True(t, rows[0].SoldRevenue.IsZero())
	require.True(t, rows[0].Profit.IsZero())
}

func TestSnapshotDerivesProfit(t *testing.T) {
	svc, db := newInventoryService(t)
	exporter := NewExportService(repository.NewSaleRepo(db))

	item, err := svc.CreateItem(&model.Item{
		Category: "Shirt", Color: "Red", AgeGroup: "2-3",
		CostPrice: decimal.NewFromInt(50), Quantity: 5,
	})
	require.NoError(t, err)

	_, err = svc.Sell(item.ID, 1, decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = svc.Sell(item.ID, 1, decimal.NewFromInt(150))
	require.NoError(t, err)

	rows, err := exporter.Snapshot()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 2, rows[0].SoldQuantity)
	require.True(t, rows[0].SoldRevenue.Equal(decimal.NewFromInt(250)), "got revenue %s", rows[0].SoldRevenue)
	require.True(t, rows[0].Profit.Equal(decimal.NewFromInt(150)), "got profit %s", rows[0].Profit)
}

func TestCSVRoundTripsCommasAndQuotes(t *testing.T) {
	svc, db := newInventoryService(t)
	exporter := NewExportService(repository.NewSaleRepo(db))

	_, err := svc.CreateItem(&model.Item{
		Category: `Kid's, Blue`, SubCategory: `Says "Hi"`,
		Color: "Red", AgeGroup: "2-3", Quantity: 1,
	})
	require.NoError(t, err)

	out, err := exporter.CSV()
	require.NoError(t, err)
	require.Contains(t, out, `"Kid's, Blue"`)
	require.Contains(t, out, `"Says ""Hi"""`)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, strings.Split(csvHeader, ","), records[0])
	require.Equal(t, `Kid's, Blue`, records[1][0])
	require.Equal(t, `Says "Hi"`, records[1][1])
}

func TestCSVRendersOptionalPriceAsEmpty(t *testing.T) {
	svc, db := newInventoryService(t)
	exporter := NewExportService(repository.NewSaleRepo(db))

	_, err := svc.CreateItem(&model.Item{
		Category: "Shirt", Color: "Red", AgeGroup: "2-3", Quantity: 1,
	})
	require.NoError(t, err)

	out, err := exporter.CSV()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "", records[1][4], "unset price renders blank")
	require.Equal(t, "0", records[1][6], "cost price renders as plain zero")
}

func TestWriteFilePersistsSnapshot(t *testing.T) {
	svc, db := newInventoryService(t)
	exporter := NewExportService(repository.NewSaleRepo(db))

	_, err := svc.CreateItem(&model.Item{
		Category: "Shirt", Color: "Red", AgeGroup: "2-3", Quantity: 1,
	})
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := exporter.WriteFile(dir)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), csvHeader))
}
