package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mindspark/internal/cache"
	"mindspark/internal/domain"
	"mindspark/internal/logger"

	"go.uber.org/zap"
)

// ActivityCacheService is a read-through cache over the activity catalog.
// Catalog rows are immutable once seeded, so cached copies never go stale
// within their TTL.
type ActivityCacheService interface {
	GetActivity(ctx context.Context, activityID string) (*domain.Activity, error)
	InvalidateActivity(ctx context.Context, activityID string) error
}

type activityCacheServiceImpl struct {
	cache domain.Cache
	repo  domain.ActivityRepository
	ttl   time.Duration
}

// NewActivityCacheService creates a new instance of activityCacheServiceImpl.
// cache may be nil; every lookup then falls through to the repository.
func NewActivityCacheService(cacheClient domain.Cache, repo domain.ActivityRepository, ttl time.Duration) ActivityCacheService {
	return &activityCacheServiceImpl{
		cache: cacheClient,
		repo:  repo,
		ttl:   ttl,
	}
}

// GetActivity returns the activity from cache when present, otherwise loads
// it from the repository and caches the result. A not-found activity is
// (nil, nil), matching the repository contract.
func (s *activityCacheServiceImpl) GetActivity(ctx context.Context, activityID string) (*domain.Activity, error) {
	if s.cache == nil {
		return s.repo.GetActivityByID(ctx, activityID)
	}

	cacheKey := cache.GenerateCacheKey("activity", "catalog", activityID)
	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var activity domain.Activity
		if errUnmarshal := json.Unmarshal([]byte(cached), &activity); errUnmarshal == nil {
			return &activity, nil
		}
		logger.Get().Warn("ActivityCacheService: Failed to unmarshal cached activity, falling back to repository",
			zap.String("activityID", activityID))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Error("ActivityCacheService: Cache read failed, falling back to repository",
			zap.Error(err),
			zap.String("activityID", activityID))
	}

	activity, err := s.repo.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, nil
	}

	if payload, errMarshal := json.Marshal(activity); errMarshal == nil {
		if errSet := s.cache.Set(ctx, cacheKey, string(payload), s.ttl); errSet != nil {
			// Cache write failures never fail the request.
			logger.Get().Error("ActivityCacheService: Failed to cache activity",
				zap.Error(errSet),
				zap.String("activityID", activityID))
		}
	}

	return activity, nil
}

// InvalidateActivity removes a single activity from the cache.
func (s *activityCacheServiceImpl) InvalidateActivity(ctx context.Context, activityID string) error {
	if s.cache == nil {
		return nil
	}
	cacheKey := cache.GenerateCacheKey("activity", "catalog", activityID)
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		logger.Get().Error("ActivityCacheService: Failed to invalidate activity cache",
			zap.Error(err),
			zap.String("activityID", activityID))
		return domain.NewInternalError("failed to invalidate activity cache", err)
	}
	return nil
}
