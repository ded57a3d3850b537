package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/platefull/backend/internal/model"
)

const picksCount = 6

// PicksService serves the daily recipe picks. The selection is cached in
// Redis under a calendar-date key and expires at midnight UTC, so every
// client sees the same picks for a given day.
type PicksService struct {
	db    *gorm.DB
	redis *redis.Client
	log   *zap.Logger
}

// NewPicksService creates a new PicksService instance
func NewPicksService(db *gorm.DB, redisClient *redis.Client, log *zap.Logger) *PicksService {
	return &PicksService{
		db:    db,
		redis: redisClient,
		log:   log,
	}
}

func picksKey(day time.Time) string {
	return fmt.Sprintf("picks:%s", day.UTC().Format("2006-01-02"))
}

// GetDailyPicks returns today's picks, computing and caching them on the
// first request of the day. A Redis failure degrades to an uncached query.
func (s *PicksService) GetDailyPicks(ctx context.Context) ([]model.Recipe, error) {
	now := time.Now().UTC()
	key := picksKey(now)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Bytes()
		if err == nil {
			var ids []string
			if jerr := json.Unmarshal(cached, &ids); jerr == nil {
				recipes, derr := s.recipesByID(ctx, ids)
				if derr == nil {
					return recipes, nil
				}
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn("picks cache read failed", zap.Error(err))
		}
	}

	recipes, err := s.selectPicks(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil && len(recipes) > 0 {
		ids := make([]string, 0, len(recipes))
		for _, r := range recipes {
			ids = append(ids, r.ID.String())
		}
		data, _ := json.Marshal(ids)
		midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		if err := s.redis.Set(ctx, key, data, time.Until(midnight)).Err(); err != nil {
			s.log.Warn("picks cache write failed", zap.Error(err))
		}
	}

	return recipes, nil
}

// selectPicks chooses the day's recipes. Random ordering keyed by the
// database keeps the choice stable for the cached day only.
func (s *PicksService) selectPicks(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).Order("RANDOM()").Limit(picksCount).Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *PicksService) recipesByID(ctx context.Context, ids []string) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return []model.Recipe{}, nil
	}
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, err
	}
	// cached entries may reference recipes deleted since; recompute when
	// everything is gone
	if len(recipes) == 0 {
		return nil, fmt.Errorf("cached picks no longer exist")
	}
	return recipes, nil
}
