package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"restopos/internal/models"
)

// CacheService fronts hot reads with Redis. Misses and Redis failures are
// reported as errors; callers fall through to the database and treat cache
// write failures as non-fatal.
type CacheService interface {
	GetMenuItem(ctx context.Context, menuID int64) (*models.MenuItem, error)
	SetMenuItem(ctx context.Context, item *models.MenuItem, ttl time.Duration) error
	DeleteMenuItem(ctx context.Context, menuID int64) error
	InvalidateMenu(ctx context.Context) error

	GetXReport(ctx context.Context, restaurantID int64) (*models.XReport, error)
	SetXReport(ctx context.Context, report *models.XReport, ttl time.Duration) error
	DeleteXReport(ctx context.Context, restaurantID int64) error

	Close() error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return &redisCacheService{client: client}
}

func menuItemKey(menuID int64) string {
	return fmt.Sprintf("menu:item:%d", menuID)
}

func xReportKey(restaurantID int64) string {
	return fmt.Sprintf("report:x:%d", restaurantID)
}

func (s *redisCacheService) GetMenuItem(ctx context.Context, menuID int64) (*models.MenuItem, error) {
	data, err := s.client.Get(ctx, menuItemKey(menuID)).Bytes()
	if err != nil {
		return nil, err
	}
	item := &models.MenuItem{}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *redisCacheService) SetMenuItem(ctx context.Context, item *models.MenuItem, ttl time.Duration) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, menuItemKey(item.MenuID), data, ttl).Err()
}

func (s *redisCacheService) DeleteMenuItem(ctx context.Context, menuID int64) error {
	return s.client.Del(ctx, menuItemKey(menuID)).Err()
}

// InvalidateMenu drops all cached menu items. Called after any menu write so
// list and detail reads never serve stale composition.
func (s *redisCacheService) InvalidateMenu(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, "menu:item:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *redisCacheService) GetXReport(ctx context.Context, restaurantID int64) (*models.XReport, error) {
	data, err := s.client.Get(ctx, xReportKey(restaurantID)).Bytes()
	if err != nil {
		return nil, err
	}
	report := &models.XReport{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *redisCacheService) SetXReport(ctx context.Context, report *models.XReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, xReportKey(report.RestaurantID), data, ttl).Err()
}

func (s *redisCacheService) DeleteXReport(ctx context.Context, restaurantID int64) error {
	return s.client.Del(ctx, xReportKey(restaurantID)).Err()
}

func (s *redisCacheService) Close() error {
	return s.client.Close()
}
