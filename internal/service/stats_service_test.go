package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/tests/mocks"
)

func newStatsService(today time.Time) (*StatsService, *mocks.MockStatsRepository) {
	repo := new(mocks.MockStatsRepository)
	s := NewStatsService(repo, nil, 0)
	s.now = func() time.Time { return today }
	return s, repo
}

func TestRecalculateDay(t *testing.T) {
	day := date(2024, 5, 20)
	s, repo := newStatsService(date(2024, 5, 21))

	stat := &domain.DailyStatistic{
		StatisticDate: day,
		TotalVisits:   12,
		TotalLoans:    5,
		OverdueLoans:  2,
	}
	repo.On("CalculateDailyStatistic", mock.Anything, day).Return(stat, nil)
	repo.On("UpsertDailyStatistic", mock.Anything, stat).Return(nil)

	stored, err := s.RecalculateDay(context.Background(), day)

	assert.NoError(t, err)
	assert.Equal(t, stat, stored)
	repo.AssertExpectations(t)
}

func TestDailySummary(t *testing.T) {
	today := date(2024, 5, 21)
	s, repo := newStatsService(today)

	stats := []*domain.DailyStatistic{
		{StatisticDate: date(2024, 5, 20)},
		{StatisticDate: date(2024, 5, 19)},
	}
	repo.On("ListDailyStatistics", mock.Anything, 30).Return(stats, nil)

	summary, err := s.DailySummary(context.Background(), 30)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalDays)
	assert.True(t, summary.CalculatedAt.Equal(today))
}

func TestLibrarySummaryFallsThroughWithoutRedis(t *testing.T) {
	today := date(2024, 5, 21)
	s, repo := newStatsService(today)

	counts := &domain.SummaryCounts{
		TotalReaders:               100,
		ActiveReaders:              80,
		TotalBooks:                 500,
		TotalCopies:                1200,
		ElectronicBooks:            60,
		TotalAuthors:               300,
		TotalLoans:                 2000,
		ActiveLoans:                150,
		OverdueLoans:               12,
		VisitsToday:                45,
		ReferenceRequestsTotal:     70,
		ReferenceRequestsCompleted: 65,
	}
	repo.On("SummaryCounts", mock.Anything, today).Return(counts, nil)

	summary, err := s.LibrarySummary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 20, summary.Readers.Inactive)
	assert.Equal(t, 440, summary.Books.PhysicalBooks)
	assert.Equal(t, 1850, summary.Loans.Returned)
	assert.Equal(t, 12, summary.Loans.Overdue)
	assert.Equal(t, 45, summary.Activity.VisitsToday)
	repo.AssertExpectations(t)
}

func TestBuildLibrarySummary(t *testing.T) {
	calculatedAt := date(2024, 5, 21)
	counts := &domain.SummaryCounts{
		TotalReaders:    10,
		ActiveReaders:   10,
		TotalBooks:      4,
		ElectronicBooks: 4,
		TotalLoans:      7,
		ActiveLoans:     7,
	}

	summary := buildLibrarySummary(counts, calculatedAt)

	assert.Equal(t, 0, summary.Readers.Inactive)
	assert.Equal(t, 0, summary.Books.PhysicalBooks)
	assert.Equal(t, 0, summary.Loans.Returned)
	assert.True(t, summary.CalculatedAt.Equal(calculatedAt))
}
