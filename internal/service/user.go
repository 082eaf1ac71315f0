package service

import (
	"time"

	"vidgate/internal/domain"
	"vidgate/internal/repository"
)

// UserService handles user records and the daily download quota
type UserService struct {
	userRepo   repository.UserRepository
	dailyLimit int
	premium    map[int64]bool
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, dailyLimit int, premiumUsers []int64) *UserService {
	premium := make(map[int64]bool, len(premiumUsers))
	for _, id := range premiumUsers {
		premium[id] = true
	}
	return &UserService{
		userRepo:   userRepo,
		dailyLimit: dailyLimit,
		premium:    premium,
	}
}

// EnsureUserExists creates the user record if it doesn't exist
func (s *UserService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}

// GetUser returns the user record, nil if unknown
func (s *UserService) GetUser(userID int64) (*domain.User, error) {
	return s.userRepo.GetUser(userID)
}

// DailyLimit returns the configured per-day download limit
func (s *UserService) DailyLimit() int {
	return s.dailyLimit
}

// CheckDailyLimit reports whether the user may download another video today
// and how many downloads remain. Premium users are unlimited and report a
// remaining count of -1. Crossing into a new day resets the counter.
func (s *UserService) CheckDailyLimit(userID int64) (bool, int, error) {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return false, 0, err
	}
	if user == nil {
		if err := s.userRepo.EnsureUserExists(userID); err != nil {
			return false, 0, err
		}
		return true, s.dailyLimit, nil
	}

	if s.premium[userID] || user.Premium {
		return true, -1, nil
	}

	if !downloadedToday(user) {
		if err := s.userRepo.ResetDailyDownloads(userID); err != nil {
			return false, 0, err
		}
		user.DownloadsToday = 0
	}

	remaining := s.dailyLimit - user.DownloadsToday
	if remaining < 0 {
		remaining = 0
	}
	return remaining > 0, remaining, nil
}

// RecordDownload bumps the user's counters after a successful delivery
func (s *UserService) RecordDownload(userID int64) error {
	return s.userRepo.RecordDownload(userID)
}

func downloadedToday(u *domain.User) bool {
	if u.LastDownloadDate == nil {
		return false
	}
	now := time.Now()
	last := *u.LastDownloadDate
	return last.Year() == now.Year() && last.YearDay() == now.YearDay()
}
