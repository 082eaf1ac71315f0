package service

import (
	"errors"
	"testing"

	"vidgate/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_Totals(t *testing.T) {
	statsRepo := new(testutil.MockStatsRepository)
	userRepo := new(testutil.MockUserRepository)

	statsRepo.On("GetAll").Return(map[string]int{
		"total_videos":    12,
		"total_downloads": 340,
	}, nil)
	userRepo.On("CountUsers").Return(50, nil)
	userRepo.On("CountActiveToday").Return(4, nil)

	svc := NewStatsService(statsRepo, userRepo, testutil.NewTestLogger())

	totals, err := svc.Totals()
	assert.NoError(t, err)
	assert.Equal(t, 12, totals.Videos)
	assert.Equal(t, 340, totals.Downloads)
	assert.Equal(t, 50, totals.Users)
	assert.Equal(t, 4, totals.ActiveToday)
}

func TestStatsService_Totals_MissingCountersReadZero(t *testing.T) {
	statsRepo := new(testutil.MockStatsRepository)
	userRepo := new(testutil.MockUserRepository)

	statsRepo.On("GetAll").Return(map[string]int{}, nil)
	userRepo.On("CountUsers").Return(0, nil)
	userRepo.On("CountActiveToday").Return(0, nil)

	svc := NewStatsService(statsRepo, userRepo, testutil.NewTestLogger())

	totals, err := svc.Totals()
	assert.NoError(t, err)
	assert.Zero(t, totals.Videos)
	assert.Zero(t, totals.Downloads)
}

func TestStatsService_Totals_Error(t *testing.T) {
	statsRepo := new(testutil.MockStatsRepository)
	userRepo := new(testutil.MockUserRepository)

	statsRepo.On("GetAll").Return(nil, errors.New("db down"))

	svc := NewStatsService(statsRepo, userRepo, testutil.NewTestLogger())

	totals, err := svc.Totals()
	assert.Error(t, err)
	assert.Nil(t, totals)
}
