package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pantry-assistant/internal/infrastructure/config"
	"pantry-assistant/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Translator 遠端翻譯介面，測試時以假實作替換
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Client 遠端文字翻譯服務客戶端
// 使用 MyMemory 風格的免費 API：GET /get?q=<text>&langpair=en|fr
// 每次調用有硬性超時上限，超時視同服務不可用
type Client struct {
	client   *resty.Client
	langpair string
}

// myMemoryResponse 遠端服務的響應結構
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// NewClient 創建遠端翻譯客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Translation.RemoteBaseURL).
		SetTimeout(cfg.Translation.RemoteTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		client:   client,
		langpair: fmt.Sprintf("%s|%s", cfg.Translation.SourceLang, cfg.Translation.TargetLang),
	}
}

// Translate 調用遠端服務翻譯一段文字
// 任何失敗（網路錯誤、非成功狀態、格式錯誤、超時）都回傳錯誤
// 由協調器決定退回詞彙替換結果，錯誤不會再向上傳遞
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("q", text).
		SetQueryParam("langpair", c.langpair).
		Get("/get")

	duration := time.Since(start)

	if err != nil {
		common.LogRemoteCall(text, duration, err)
		return "", fmt.Errorf("remote translation request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		err := fmt.Errorf("remote translation returned status %d", resp.StatusCode())
		common.LogRemoteCall(text, duration, err)
		return "", err
	}

	var result myMemoryResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		common.LogRemoteCall(text, duration, err)
		return "", fmt.Errorf("failed to parse remote translation response: %w", err)
	}

	if result.ResponseStatus != http.StatusOK || strings.TrimSpace(result.ResponseData.TranslatedText) == "" {
		err := fmt.Errorf("invalid remote translation response (status %d)", result.ResponseStatus)
		common.LogRemoteCall(text, duration, err)
		return "", err
	}

	common.LogRemoteCall(text, duration, nil)
	common.LogDebug("遠端翻譯結果",
		zap.Float64("match", result.ResponseData.Match),
	)

	return result.ResponseData.TranslatedText, nil
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
