package translation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize 將自由文字正規化成可跨語言比對的形式
// 步驟順序固定：轉小寫 → NFD 分解 → 去除組合變音符號（U+0300–U+036F）→
// 去除一個結尾的 "s"（天真的單數化）→ 去除前後空白
// 為全函數：任何輸入都有輸出，空字串輸入得到空字串
func Normalize(text string) string {
	lower := strings.ToLower(text)

	decomposed := norm.NFD.String(lower)
	var sb strings.Builder
	sb.Grow(len(decomposed))
	for _, r := range decomposed {
		if r >= 0x0300 && r <= 0x036F {
			continue
		}
		sb.WriteRune(r)
	}

	// 結尾去 s 在 trim 之前，與比對行為的歷史語義一致
	stripped := strings.TrimSuffix(sb.String(), "s")
	return strings.TrimSpace(stripped)
}

// NormalizeAll 正規化一組字串
func NormalizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = Normalize(t)
	}
	return out
}

// CacheKey 產生翻譯快取鍵：小寫並去除前後空白的原文
func CacheKey(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}
