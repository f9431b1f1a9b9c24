package cache

import (
	"context"
	"sync"
	"time"

	"pantry-assistant/internal/infrastructure/config"
	"pantry-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Tier 標記翻譯結果由哪一層產生
type Tier string

const (
	TierCache   Tier = "cache"
	TierDict    Tier = "dictionary"
	TierWordSub Tier = "word_substitution"
	TierRemote  Tier = "remote"
)

// Entry 翻譯快取條目
type Entry struct {
	Value string `json:"value"`
	Tier  Tier   `json:"tier"`
}

// Store 翻譯快取的共用介面
// 同一個鍵以最後寫入者為準；除了明確的 Clear 之外，會話期間只增不減
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool)
	Put(ctx context.Context, key, value string, tier Tier) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) map[string]interface{}
}

// Manager 行程內翻譯快取管理器
type Manager struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
}

// cacheEntry 內部快取條目
type cacheEntry struct {
	value      string
	tier       Tier
	createdAt  time.Time
	lastAccess time.Time
}

// cacheStats 快取統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewManager 創建新的快取管理器
func NewManager(cfg *config.Config) *Manager {
	if !cfg.Cache.Enabled {
		common.LogInfo("翻譯快取已停用")
		return nil
	}

	m := &Manager{
		config: cfg,
		store:  make(map[string]cacheEntry),
	}

	common.LogInfo("翻譯快取管理員已初始化",
		zap.Int("最大容量", cfg.Cache.MaxSize),
	)

	return m
}

// Get 獲取快取值
func (m *Manager) Get(ctx context.Context, key string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss(key)
		return Entry{}, false
	}

	entry.lastAccess = time.Now()
	m.store[key] = entry
	m.stats.hits++

	common.LogCacheHit(string(entry.tier), key)
	return Entry{Value: entry.value, Tier: entry.tier}, true
}

// Put 寫入快取值，同鍵以最後寫入者為準
func (m *Manager) Put(ctx context.Context, key, value string, tier Tier) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 容量達上限且為新鍵時，先淘汰最久未用的條目
	if _, exists := m.store[key]; !exists && len(m.store) >= m.config.Cache.MaxSize {
		m.evictLRU()
	}

	now := time.Now()
	m.store[key] = cacheEntry{
		value:      value,
		tier:       tier,
		createdAt:  now,
		lastAccess: now,
	}
	return nil
}

// Clear 清空快取，唯一允許縮小快取的操作
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := len(m.store)
	m.store = make(map[string]cacheEntry)
	common.LogInfo("翻譯快取已清空",
		zap.Int("清除條目數", size),
	)
	return nil
}

// evictLRU 淘汰最久未訪問的條目，呼叫時必須已持有寫鎖
func (m *Manager) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time

	for key, entry := range m.store {
		if oldestKey == "" || entry.lastAccess.Before(oldestAccess) {
			oldestKey = key
			oldestAccess = entry.lastAccess
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("快取已淘汰(LRU)",
			zap.String("鍵", oldestKey),
		)
	}
}

// Len 回傳目前條目數
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

// Stats 獲取快取統計信息
func (m *Manager) Stats(ctx context.Context) map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"hit_ratio": hitRatio,
	}
}

// Close 關閉快取管理器
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	common.LogInfo("翻譯快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
	)
	return nil
}
