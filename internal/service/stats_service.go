package service

import (
	"context"
	"errors"
	"log"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/repository"
	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
	"github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/utils"
)

var statsJSON = jsoniter.ConfigCompatibleWithStandardLibrary

const librarySummaryCacheKey = "library:summary"

// StatsService owns visits, reference requests and the statistics aggregates.
// The library summary is served from Redis with a short TTL; a cache miss or
// a Redis outage falls through to the database.
type StatsService struct {
	StatsRepo repository.StatsRepository

	redis    *redis.Client
	cacheTTL time.Duration
	now      func() time.Time
}

func NewStatsService(statsRepo repository.StatsRepository, redisClient *redis.Client, cacheTTL time.Duration) *StatsService {
	return &StatsService{
		StatsRepo: statsRepo,
		redis:     redisClient,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

func (s *StatsService) CreateVisit(ctx context.Context, request *domain.CreateVisitRequest) (*domain.Visit, error) {
	visitDate := utils.DateOnly(s.now())
	if request.VisitDate != nil {
		visitDate = utils.DateOnly(*request.VisitDate)
	}

	visit := &domain.Visit{
		ReaderID:        request.ReaderID,
		VisitDate:       visitDate,
		IsRemote:        request.IsRemote,
		Purpose:         request.Purpose,
		DurationMinutes: request.DurationMinutes,
	}

	if err := s.StatsRepo.CreateVisit(ctx, visit); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return visit, nil
}

func (s *StatsService) GetVisit(ctx context.Context, id int64) (*domain.Visit, error) {
	visit, err := s.StatsRepo.GetVisitByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Visit", id)
	}
	return visit, nil
}

func (s *StatsService) ListVisits(ctx context.Context) ([]*domain.Visit, error) {
	visits, err := s.StatsRepo.ListVisits(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return visits, nil
}

func (s *StatsService) UpdateVisit(ctx context.Context, id int64, patch *domain.UpdateVisitRequest) (*domain.Visit, error) {
	if err := s.StatsRepo.PatchVisit(ctx, id, patch); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Visit", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return s.GetVisit(ctx, id)
}

func (s *StatsService) DeleteVisit(ctx context.Context, id int64) error {
	if err := s.StatsRepo.DeleteVisit(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Visit", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

func (s *StatsService) CreateReferenceRequest(ctx context.Context, request *domain.CreateReferenceRequestRequest) (*domain.ReferenceRequest, error) {
	ref := &domain.ReferenceRequest{
		ReaderID:        request.ReaderID,
		RequestType:     request.RequestType,
		Subject:         request.Subject,
		ComplexityLevel: request.ComplexityLevel,
	}

	if err := s.StatsRepo.CreateReferenceRequest(ctx, ref); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return ref, nil
}

func (s *StatsService) GetReferenceRequest(ctx context.Context, id int64) (*domain.ReferenceRequest, error) {
	ref, err := s.StatsRepo.GetReferenceRequestByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Reference request", id)
	}
	return ref, nil
}

func (s *StatsService) ListReferenceRequests(ctx context.Context) ([]*domain.ReferenceRequest, error) {
	refs, err := s.StatsRepo.ListReferenceRequests(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return refs, nil
}

func (s *StatsService) UpdateReferenceRequest(ctx context.Context, id int64, patch *domain.UpdateReferenceRequestRequest) (*domain.ReferenceRequest, error) {
	if err := s.StatsRepo.PatchReferenceRequest(ctx, id, patch); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapNotFound("Reference request", id)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return s.GetReferenceRequest(ctx, id)
}

func (s *StatsService) DeleteReferenceRequest(ctx context.Context, id int64) error {
	if err := s.StatsRepo.DeleteReferenceRequest(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Reference request", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

func (s *StatsService) GetDailyStatistic(ctx context.Context, id int64) (*domain.DailyStatistic, error) {
	stat, err := s.StatsRepo.GetDailyStatisticByID(ctx, id)
	if err != nil {
		return nil, wrapGetError(err, "Daily statistic", id)
	}
	return stat, nil
}

func (s *StatsService) DeleteDailyStatistic(ctx context.Context, id int64) error {
	if err := s.StatsRepo.DeleteDailyStatistic(ctx, id); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return customError.WrapNotFound("Daily statistic", id)
		}
		return customError.WrapDatabaseError(err)
	}
	return nil
}

// DailySummary returns the stored per-day aggregates, newest first.
func (s *StatsService) DailySummary(ctx context.Context, limit int) (*domain.DailyStatisticsSummary, error) {
	stats, err := s.StatsRepo.ListDailyStatistics(ctx, limit)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return &domain.DailyStatisticsSummary{
		DailyStatistics: stats,
		TotalDays:       len(stats),
		CalculatedAt:    s.now(),
	}, nil
}

// RecalculateDay aggregates one day's activity from the live tables and
// stores it, replacing any previous row for that date. The scheduler calls
// this nightly for the day just ended.
func (s *StatsService) RecalculateDay(ctx context.Context, day time.Time) (*domain.DailyStatistic, error) {
	stat, err := s.StatsRepo.CalculateDailyStatistic(ctx, day)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	if err = s.StatsRepo.UpsertDailyStatistic(ctx, stat); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return stat, nil
}

// LibrarySummary returns the live library-wide counters, cached in Redis.
func (s *StatsService) LibrarySummary(ctx context.Context) (*domain.LibrarySummary, error) {
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, librarySummaryCacheKey).Result()
		if err == nil {
			var summary domain.LibrarySummary
			if err = statsJSON.UnmarshalFromString(cached, &summary); err == nil {
				return &summary, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("library summary cache read failed: %v", err)
		}
	}

	counts, err := s.StatsRepo.SummaryCounts(ctx, utils.DateOnly(s.now()))
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	summary := buildLibrarySummary(counts, s.now())

	if s.redis != nil {
		if payload, err := statsJSON.MarshalToString(summary); err == nil {
			if err = s.redis.Set(ctx, librarySummaryCacheKey, payload, s.cacheTTL).Err(); err != nil {
				log.Printf("library summary cache write failed: %v", err)
			}
		}
	}

	return summary, nil
}

func buildLibrarySummary(counts *domain.SummaryCounts, calculatedAt time.Time) *domain.LibrarySummary {
	summary := &domain.LibrarySummary{CalculatedAt: calculatedAt}

	summary.Readers.Total = counts.TotalReaders
	summary.Readers.Active = counts.ActiveReaders
	summary.Readers.Inactive = counts.TotalReaders - counts.ActiveReaders

	summary.Books.BibliographicRecords = counts.TotalBooks
	summary.Books.PhysicalCopies = counts.TotalCopies
	summary.Books.ElectronicBooks = counts.ElectronicBooks
	summary.Books.PhysicalBooks = counts.TotalBooks - counts.ElectronicBooks

	summary.Authors.Total = counts.TotalAuthors

	summary.Loans.Total = counts.TotalLoans
	summary.Loans.Active = counts.ActiveLoans
	summary.Loans.Returned = counts.TotalLoans - counts.ActiveLoans
	summary.Loans.Overdue = counts.OverdueLoans

	summary.Activity.VisitsToday = counts.VisitsToday
	summary.Activity.ReferenceRequestsTotal = counts.ReferenceRequestsTotal
	summary.Activity.ReferenceRequestsCompleted = counts.ReferenceRequestsCompleted

	return summary
}
