package service

import (
	"crypto-analysis/config"
	"crypto-analysis/internal/repository"
	"crypto-analysis/pkg/logger"
)

type Service struct {
	DashboardService DashboardService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
) *Service {
	return &Service{
		DashboardService: NewDashboardService(cfg, log, repo.PriceRepo),
	}
}
