package service

import (
	"go-apparel-stock/internal/repository"
	"go-apparel-stock/pkg/apperr"
)

type DashboardService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	saleRepo repository.SaleRepository
}

func NewDashboardService(saleRepo repository.SaleRepository) DashboardService {
	return &dashboardService{saleRepo: saleRepo}
}

func (s *dashboardService) GetDashboardStats() (*repository.DashboardStats, error) {
	stats, err := s.saleRepo.GetDashboardStats()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return stats, nil
}
