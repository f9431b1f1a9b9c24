package cache

import (
	"context"
	"fmt"

	"pantry-assistant/internal/infrastructure/config"
	"pantry-assistant/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "translation:"

// Service 以 Redis 為後端的共享翻譯快取
// 多實例部署時取代行程內的 Manager，介面相同
type Service struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewService 創建共享快取服務
func NewService(cfg *config.CacheConfig) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Service{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取快取條目
func (s *Service) Get(ctx context.Context, key string) (Entry, bool) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return Entry{}, false
	}

	var entry Entry
	if err := common.ParseJSONBytes(data, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

// Put 寫入快取條目
func (s *Service) Put(ctx context.Context, key, value string, tier Tier) error {
	data, err := common.ToJSON(Entry{Value: value, Tier: tier})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+key, data, s.config.Redis.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Clear 清除所有翻譯快取鍵
func (s *Service) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	return nil
}

// Stats 獲取快取統計信息
func (s *Service) Stats(ctx context.Context) map[string]interface{} {
	size := 0
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		size++
	}

	return map[string]interface{}{
		"backend": "redis",
		"size":    size,
		"ttl":     s.config.Redis.TTL.String(),
	}
}

// Close 關閉 Redis 連接
func (s *Service) Close() error {
	return s.client.Close()
}
