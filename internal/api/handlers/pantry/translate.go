package pantry

import (
	"net/http"

	"pantry-assistant/internal/core/translation"
	"pantry-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TranslateRequest 批次翻譯請求
// Debug 開啟時附上殘留英文單字報告，供字典補詞參考
type TranslateRequest struct {
	Texts []string `json:"texts" binding:"required"`
	Debug bool     `json:"debug,omitempty"`
}

// TranslationItem 單筆翻譯結果
type TranslationItem struct {
	Source            string   `json:"source"`
	Translation       string   `json:"translation"`
	Tier              string   `json:"tier"`
	UntranslatedWords []string `json:"untranslated_words,omitempty"`
}

// TranslateResponse 批次翻譯響應
type TranslateResponse struct {
	Translations []TranslationItem `json:"translations"`
	Stale        bool              `json:"stale"`
}

// HandleTranslate 處理批次翻譯請求
func HandleTranslate(translationService *translation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 沒帶請求 ID 時補一個，回應與日誌都能對上
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = common.GenerateUUID()
			c.Header("X-Request-ID", requestID)
		}

		var req TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogWarn("翻譯請求格式錯誤",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidRequest,
				Message: "texts 欄位必填且須為字串陣列",
			})
			return
		}

		if len(req.Texts) == 0 {
			c.JSON(http.StatusOK, TranslateResponse{Translations: []TranslationItem{}})
			return
		}

		resolutions, stale, err := translationService.ResolveAll(
			c.Request.Context(), translationService.CurrentEpoch(), req.Texts)
		if err != nil {
			common.LogWarn("批次翻譯中斷",
				zap.Error(err),
				zap.Int("text_count", len(req.Texts)),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusRequestTimeout, common.ErrorResponse{
				Code:    common.ErrCodeRequestTimeout,
				Message: "翻譯請求中斷",
			})
			return
		}

		items := make([]TranslationItem, len(resolutions))
		for i, resolution := range resolutions {
			items[i] = TranslationItem{
				Source:      req.Texts[i],
				Translation: resolution.Value,
				Tier:        string(resolution.Tier),
			}
			if req.Debug {
				items[i].UntranslatedWords = translation.UntranslatedWords(req.Texts[i], resolution.Value)
			}
		}

		c.JSON(http.StatusOK, TranslateResponse{
			Translations: items,
			Stale:        stale,
		})
	}
}

// HandleCacheStats 查詢翻譯快取統計
func HandleCacheStats(translationService *translation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, translationService.CacheStats(c.Request.Context()))
	}
}

// HandleCacheClear 清空翻譯快取
func HandleCacheClear(translationService *translation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := translationService.ClearCache(c.Request.Context()); err != nil {
			common.LogError("清空翻譯快取失敗", zap.Error(err))
			c.JSON(http.StatusInternalServerError, common.ErrorResponse{
				Code:    common.ErrCodeInternalError,
				Message: "清空快取失敗",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	}
}
