package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/unipath/admission-portal/internal/config"
	"github.com/unipath/admission-portal/internal/model"
	"github.com/unipath/admission-portal/internal/repository"
	"golang.org/x/sync/errgroup"
)

// dashboardCacheTTL bounds how stale the cached aggregate may get.
const dashboardCacheTTL = 30 * time.Second

// recentAdmissionsLimit is the size of the dashboard's recent list.
const recentAdmissionsLimit = 10

// DashboardStatistics are the headline counts of the admin dashboard.
// The counts come from independent queries and may skew slightly under
// concurrent writes; the dashboard tolerates that.
type DashboardStatistics struct {
	TotalStudents      int `json:"totalStudents"`
	TotalCourses       int `json:"totalCourses"`
	TotalAdmissions    int `json:"totalAdmissions"`
	PendingAdmissions  int `json:"pendingAdmissions"`
	ApprovedAdmissions int `json:"approvedAdmissions"`
}

// DashboardData consolidates all metrics for the admin dashboard.
type DashboardData struct {
	Statistics       DashboardStatistics     `json:"statistics"`
	RecentAdmissions []model.RecentAdmission `json:"recentAdmissions"`
}

// DashboardService assembles the admin dashboard, caching the aggregate
// in Redis for a short window.
type DashboardService struct {
	repo *repository.DashboardRepository
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository, rdb *redis.Client, log zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, rdb: rdb, log: log}
}

// GetDashboardData returns the dashboard aggregate, serving from cache
// when a fresh copy exists. Cache failures degrade to direct queries.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	key := config.CacheKey.DashboardStatsKey()

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			data := &DashboardData{}
			if err := json.Unmarshal(cached, data); err == nil {
				return data, nil
			}
		}
	}

	data, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(data); err == nil {
			if err := s.rdb.Set(ctx, key, payload, dashboardCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("Dashboard cache write failed")
			}
		}
	}
	return data, nil
}

// collect runs the five count queries concurrently plus the recent list.
func (s *DashboardService) collect(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Statistics.TotalStudents, err = s.repo.CountActiveStudents(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Statistics.TotalCourses, err = s.repo.CountActiveCourses(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Statistics.TotalAdmissions, err = s.repo.CountAdmissions(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Statistics.PendingAdmissions, err = s.repo.CountAdmissionsByStatus(gctx, model.AdmissionPending)
		return err
	})
	g.Go(func() (err error) {
		data.Statistics.ApprovedAdmissions, err = s.repo.CountAdmissionsByStatus(gctx, model.AdmissionApproved)
		return err
	})
	g.Go(func() (err error) {
		data.RecentAdmissions, err = s.repo.RecentAdmissions(gctx, recentAdmissionsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
