package cache

import (
	"context"
	"testing"

	"pantry-assistant/internal/infrastructure/config"
)

func newTestConfig(maxSize int) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled: true,
			MaxSize: maxSize,
		},
	}
}

func TestManagerDisabled(t *testing.T) {
	cfg := newTestConfig(10)
	cfg.Cache.Enabled = false
	if m := NewManager(cfg); m != nil {
		t.Error("快取停用時 NewManager 應回傳 nil")
	}
}

func TestManagerGetPut(t *testing.T) {
	m := NewManager(newTestConfig(10))
	ctx := context.Background()

	if _, ok := m.Get(ctx, "tomato"); ok {
		t.Error("空快取不應命中")
	}

	if err := m.Put(ctx, "tomato", "tomate", TierDict); err != nil {
		t.Fatalf("Put 失敗: %v", err)
	}

	entry, ok := m.Get(ctx, "tomato")
	if !ok {
		t.Fatal("寫入後應命中")
	}
	if entry.Value != "tomate" || entry.Tier != TierDict {
		t.Errorf("Get = %+v, want {tomate dictionary}", entry)
	}
}

func TestManagerLastWriterWins(t *testing.T) {
	m := NewManager(newTestConfig(10))
	ctx := context.Background()

	_ = m.Put(ctx, "beef", "bœuf", TierWordSub)
	_ = m.Put(ctx, "beef", "bœuf haché", TierRemote)

	entry, ok := m.Get(ctx, "beef")
	if !ok || entry.Value != "bœuf haché" || entry.Tier != TierRemote {
		t.Errorf("同鍵覆寫後 Get = %+v, want 最後寫入值", entry)
	}
	if m.Len() != 1 {
		t.Errorf("覆寫不應增加條目數: %d", m.Len())
	}
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(newTestConfig(2))
	ctx := context.Background()

	_ = m.Put(ctx, "a", "1", TierDict)
	_ = m.Put(ctx, "b", "2", TierDict)

	// 訪問 a，讓 b 成為最久未用
	if _, ok := m.Get(ctx, "a"); !ok {
		t.Fatal("a 應命中")
	}

	_ = m.Put(ctx, "c", "3", TierDict)

	if m.Len() != 2 {
		t.Errorf("容量上限為 2，目前 %d", m.Len())
	}
	if _, ok := m.Get(ctx, "b"); ok {
		t.Error("b 應已被 LRU 淘汰")
	}
	if _, ok := m.Get(ctx, "a"); !ok {
		t.Error("a 不應被淘汰")
	}
	if _, ok := m.Get(ctx, "c"); !ok {
		t.Error("c 應存在")
	}
}

func TestManagerClear(t *testing.T) {
	m := NewManager(newTestConfig(10))
	ctx := context.Background()

	_ = m.Put(ctx, "a", "1", TierDict)
	_ = m.Put(ctx, "b", "2", TierRemote)

	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear 失敗: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Clear 後應為空: %d", m.Len())
	}
}

func TestManagerStats(t *testing.T) {
	m := NewManager(newTestConfig(10))
	ctx := context.Background()

	_ = m.Put(ctx, "a", "1", TierDict)
	m.Get(ctx, "a")
	m.Get(ctx, "missing")

	stats := m.Stats(ctx)
	if stats["hits"].(int64) != 1 {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"].(int64) != 1 {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
	if stats["size"].(int) != 1 {
		t.Errorf("size = %v, want 1", stats["size"])
	}
}

func TestManagerCloseNil(t *testing.T) {
	var m *Manager
	if err := m.Close(); err != nil {
		t.Errorf("nil Manager 的 Close 應為 no-op: %v", err)
	}
}
