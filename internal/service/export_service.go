package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go-apparel-stock/internal/repository"
	"go-apparel-stock/pkg/apperr"

	"github.com/shopspring/decimal"
)

// Fixed column order: this header is the one external wire contract and any
// spreadsheet consumer must be able to round-trip the rows below it.
const csvHeader = "Category,Subcategory,Color,Age Group,Price,Current Stock,Cost Price,Sold Quantity,Total Revenue,Estimated Profit,Last Updated"

// ExportRow is one snapshot row with the derived profit attached.
type ExportRow struct {
	repository.ItemSnapshot
	Profit decimal.Decimal `json:"profit"`
}

type ExportService interface {
	Snapshot() ([]ExportRow, error)
	CSV() (string, error)
	WriteFile(dir string) (string, error)
}

type exportService struct {
	saleRepo repository.SaleRepository
}

func NewExportService(sRepo repository.SaleRepository) ExportService {
	return &exportService{saleRepo: sRepo}
}

// Snapshot joins current items with their aggregated sales history and derives
// profit = revenue - soldQuantity * costPrice. Items with no sales appear with
// zero-valued aggregates.
func (s *exportService) Snapshot() ([]ExportRow, error) {
	snapshots, err := s.saleRepo.GetItemSnapshots()
	if err != nil {
		return nil, apperr.Storage(err)
	}

	rows := make([]ExportRow, 0, len(snapshots))
	for _, snap := range snapshots {
		cost := snap.CostPrice.Mul(decimal.NewFromInt(int64(snap.SoldQuantity)))
		rows = append(rows, ExportRow{
			ItemSnapshot: snap,
			Profit:       snap.SoldRevenue.Sub(cost),
		})
	}
	return rows, nil
}

// CSV serializes the snapshot: one header row, one row per item, every field
// double-quoted with internal quotes doubled.
func (s *exportService) CSV() (string, error) {
	rows, err := s.Snapshot()
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvHeader)
	for _, row := range rows {
		// A zero price renders as empty: the selling price is optional and
		// unset items export a blank cell, matching historic files.
		price := ""
		if !row.Price.IsZero() {
			price = row.Price.String()
		}

		fields := []string{
			row.Category,
			row.SubCategory,
			row.Color,
			row.AgeGroup,
			price,
			strconv.Itoa(row.Quantity),
			row.CostPrice.String(),
			strconv.Itoa(row.SoldQuantity),
			row.SoldRevenue.String(),
			row.Profit.String(),
			row.LastUpdated.UTC().Format(time.RFC3339),
		}
		quoted := make([]string, len(fields))
		for i, field := range fields {
			quoted[i] = quoteField(field)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}

	return strings.Join(lines, "\n"), nil
}

// WriteFile persists the CSV to a dated file under dir and returns its path,
// so the data stays retrievable even when no share mechanism picks it up.
func (s *exportService) WriteFile(dir string) (string, error) {
	csv, err := s.CSV()
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("inventory_%s.csv", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		return "", apperr.Storage(err)
	}
	return path, nil
}

func quoteField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
