package translation

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"pantry-assistant/internal/core/translation/cache"
	"pantry-assistant/internal/core/translation/remote"
	"pantry-assistant/internal/infrastructure/config"
	"pantry-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Epoch 批次翻譯的世代標記
// 呼叫方（例如一個已被換頁的畫面）可用它判斷結果是否已過期
type Epoch int64

// Resolution 單一文字的翻譯結果，標記產生它的層級
type Resolution struct {
	Tier  cache.Tier `json:"tier"`
	Value string     `json:"value"`
}

// Service 翻譯協調器
// 逐層解析：快取 → 字典整句 → 詞彙替換（保證成功）→ 視品質決定是否遠端
// 所有終態都會寫回快取；遠端層的任何失敗都在這裡被吸收
type Service struct {
	config *config.Config
	store  cache.Store       // 可為 nil（快取停用）
	remote remote.Translator // 可為 nil（遠端停用）
	epoch  atomic.Int64
}

// NewService 創建翻譯協調器
func NewService(cfg *config.Config, store cache.Store, remoteClient remote.Translator) *Service {
	return &Service{
		config: cfg,
		store:  store,
		remote: remoteClient,
	}
}

// CurrentEpoch 取得目前世代
func (s *Service) CurrentEpoch() Epoch {
	return Epoch(s.epoch.Load())
}

// Invalidate 進入新世代，讓仍在途中的批次翻譯結果作廢
func (s *Service) Invalidate() Epoch {
	return Epoch(s.epoch.Add(1))
}

// Resolve 解析單一文字的翻譯
// 狀態機：Cached → DictionaryExact → WordSubstitution → 條件性 RemoteAttempt
// 每個終態轉移都寫穿到快取
func (s *Service) Resolve(ctx context.Context, text string) Resolution {
	// 空白輸入原樣返回，不進入任何層級
	if strings.TrimSpace(text) == "" {
		return Resolution{Tier: cache.TierWordSub, Value: text}
	}

	key := CacheKey(text)

	// 第一層：快取
	if s.cacheEnabled() {
		if entry, ok := s.store.Get(ctx, key); ok {
			return Resolution{Tier: cache.TierCache, Value: entry.Value}
		}
	}

	// 單位換算必須在任何字典層之前執行
	converted := ConvertUnits(text)

	// 第二層：字典整句查詢
	if value, ok := ResolveExact(converted); ok {
		s.writeBack(ctx, key, value, cache.TierDict)
		return Resolution{Tier: cache.TierDict, Value: value}
	}

	// 第三層：詞彙替換，永遠成功，作為保底結果先行計算
	sub := SubstituteWords(converted)

	// 品質足夠或遠端停用時，就此定案
	if sub.GoodEnough() || !s.remoteEnabled() {
		s.writeBack(ctx, key, sub.Result, cache.TierWordSub)
		return Resolution{Tier: cache.TierWordSub, Value: sub.Result}
	}

	// 第四層：遠端翻譯，失敗時退回詞彙替換結果
	value, tier := s.translateRemote(ctx, converted, sub.Result)
	s.writeBack(ctx, key, value, tier)
	return Resolution{Tier: tier, Value: value}
}

// translateRemote 嘗試遠端翻譯
// 成功結果再過一次詞彙替換，修補遠端漏翻的烹飪詞彙
// 任何失敗都只記錄日誌並退回保底結果，不向呼叫方傳遞錯誤
func (s *Service) translateRemote(ctx context.Context, text, fallback string) (string, cache.Tier) {
	rctx, cancel := context.WithTimeout(ctx, s.config.Translation.RemoteTimeout)
	defer cancel()

	translated, err := s.remote.Translate(rctx, text)
	if err != nil {
		common.LogWarn("遠端翻譯降級",
			zap.Error(err),
		)
		return fallback, cache.TierWordSub
	}

	patched := SubstituteWords(translated)
	return patched.Result, cache.TierRemote
}

// TranslateAll 批次翻譯，只取翻譯值，輸出順序與輸入一致
func (s *Service) TranslateAll(ctx context.Context, texts []string) ([]string, error) {
	resolutions, _, err := s.ResolveAll(ctx, s.CurrentEpoch(), texts)
	results := make([]string, len(resolutions))
	for i, resolution := range resolutions {
		results[i] = resolution.Value
	}
	return results, err
}

// ResolveAll 批次翻譯並回報結果是否已過期
// 分成固定大小的批次：批內併發、批間依序執行並隔以固定延遲，
// 以配合遠端服務的速率限制；結果按原始輸入順序重組
func (s *Service) ResolveAll(ctx context.Context, epoch Epoch, texts []string) ([]Resolution, bool, error) {
	results := make([]Resolution, len(texts))
	batchSize := s.config.Translation.BatchSize

	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				results[idx] = s.Resolve(ctx, texts[idx])
			}(i)
		}
		wg.Wait()

		// 批間延遲，最後一批不等待
		if end < len(texts) {
			select {
			case <-time.After(s.config.Translation.BatchDelay):
			case <-ctx.Done():
				return results, s.isStale(epoch), ctx.Err()
			}
		}
	}

	return results, s.isStale(epoch), nil
}

// ClearCache 清空翻譯快取（管理操作）
func (s *Service) ClearCache(ctx context.Context) error {
	s.Invalidate()
	if !s.cacheEnabled() {
		return nil
	}
	return s.store.Clear(ctx)
}

// CacheStats 快取統計
func (s *Service) CacheStats(ctx context.Context) map[string]interface{} {
	if !s.cacheEnabled() {
		return map[string]interface{}{"enabled": false}
	}
	return s.store.Stats(ctx)
}

func (s *Service) isStale(epoch Epoch) bool {
	return Epoch(s.epoch.Load()) != epoch
}

func (s *Service) cacheEnabled() bool {
	return s.config.Cache.Enabled && s.store != nil
}

func (s *Service) remoteEnabled() bool {
	return s.config.Translation.RemoteEnabled && s.remote != nil
}

func (s *Service) writeBack(ctx context.Context, key, value string, tier cache.Tier) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.store.Put(ctx, key, value, tier); err != nil {
		common.LogWarn("翻譯快取寫入失敗",
			zap.Error(err),
		)
	}
}
