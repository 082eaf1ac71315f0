package service

import (
	"vidgate/internal/repository"

	"go.uber.org/zap"
)

// StatsService aggregates admin-facing statistics
type StatsService struct {
	statsRepo repository.StatsRepository
	userRepo  repository.UserRepository
	logger    *zap.Logger
}

// Totals holds global counters for the admin panel
type Totals struct {
	Videos      int
	Downloads   int
	Users       int
	ActiveToday int
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo repository.StatsRepository, userRepo repository.UserRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Totals collects the global counters. Missing counters read as zero.
func (s *StatsService) Totals() (*Totals, error) {
	counters, err := s.statsRepo.GetAll()
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}

	active, err := s.userRepo.CountActiveToday()
	if err != nil {
		return nil, err
	}

	return &Totals{
		Videos:      counters["total_videos"],
		Downloads:   counters["total_downloads"],
		Users:       users,
		ActiveToday: active,
	}, nil
}
