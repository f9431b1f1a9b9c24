package common

import (
	"strings"
)

// Ingredient 食譜中的一項食材
// RawText 為食材名稱原文，QuantityText 為份量原文（自由文字，不解析）
type Ingredient struct {
	RawText      string `json:"raw_text"`
	QuantityText string `json:"quantity_text"`
}

// Product 家庭庫存中的一項產品（本子系統只讀取名稱）
type Product struct {
	Name string `json:"name"`
}

// Recipe 食譜
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category,omitempty"`
	Area        string       `json:"area,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps,omitempty"`
	PrepTime    int          `json:"prep_time,omitempty"`
	CookTime    int          `json:"cook_time,omitempty"`
	Servings    int          `json:"servings,omitempty"`
	Difficulty  string       `json:"difficulty,omitempty"`
	YoutubeURL  string       `json:"youtube_url,omitempty"`
}

// MatchResult 單一食材的可用性判定結果，每次庫存變動時重新計算
type MatchResult struct {
	Ingredient  Ingredient `json:"ingredient"`
	IsAvailable bool       `json:"is_available"`
}

// RecipeAvailabilitySummary 單一食譜的可用性統計
// 生命週期僅限於當前庫存快照，不做持久化
type RecipeAvailabilitySummary struct {
	RecipeID          string   `json:"recipe_id"`
	UsedIngredients   []string `json:"used_ingredients"`
	MissedIngredients []string `json:"missed_ingredients"`
	UsedCount         int      `json:"used_count"`
	MissedCount       int      `json:"missed_count"`
	MatchPercentage   int      `json:"match_percentage"`
	CanMake           bool     `json:"can_make"`
}

// FormatIngredients 格式化食材列表（日誌與除錯用）
func FormatIngredients(ingredients []Ingredient) string {
	var sb strings.Builder
	for _, ing := range ingredients {
		sb.WriteString("- ")
		sb.WriteString(ing.RawText)
		if ing.QuantityText != "" {
			sb.WriteString(" (")
			sb.WriteString(ing.QuantityText)
			sb.WriteString(")")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ProductNames 取出產品名稱列表
func ProductNames(products []Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

// IngredientNames 取出食材名稱原文列表
func IngredientNames(ingredients []Ingredient) []string {
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.RawText)
	}
	return names
}
