package pantry

import (
	"math"
	"strings"

	"pantry-assistant/internal/core/translation"
	"pantry-assistant/internal/pkg/common"
)

// CanMakeThreshold 判定「可以做」的匹配百分比門檻
const CanMakeThreshold = 70

// synonymRule 同義詞規則，a 出現在食材、b 出現在庫存（方向性）
type synonymRule struct {
	ingredient string
	product    string
}

// 領域同義詞表
// 規則是方向性的：viande（泛稱）可被具體肉品滿足，反向不成立
var synonymRules = []synonymRule{
	{"pate", "spaghetti"},
	{"spaghetti", "pate"},
	{"viande", "boeuf"},
	{"viande", "poulet"},
	{"viande", "chicken"},
}

// 常備品：不計入必需食材的調味與基礎材料（法文與英文並列）
var stapleIngredients = map[string]bool{
	"sel":    true,
	"poivre": true,
	"huile":  true,
	"eau":    true,
	"beurre": true,
	"salt":   true,
	"pepper": true,
	"oil":    true,
	"water":  true,
	"butter": true,
}

// IsStaple 判斷正規化後的食材是否為常備品
func IsStaple(normalized string) bool {
	for staple := range stapleIngredients {
		if strings.Contains(normalized, staple) {
			return true
		}
	}
	return false
}

// IsAvailable 判斷單一食材是否能被庫存中任一品項滿足
func IsAvailable(ingredient string, products []common.Product) bool {
	for _, product := range products {
		if Matches(ingredient, product.Name) {
			return true
		}
	}
	return false
}

// Matches 判斷單一食材與單一庫存品項是否匹配
// 雙方先正規化，再做雙向子字串比對，最後查同義詞表
func Matches(ingredient, product string) bool {
	ing := translation.Normalize(ingredient)
	prod := translation.Normalize(product)

	// 空字串不與任何東西匹配，避免 Contains 對空字串恆真
	if ing == "" || prod == "" {
		return false
	}

	if strings.Contains(ing, prod) || strings.Contains(prod, ing) {
		return true
	}

	for _, rule := range synonymRules {
		if strings.Contains(ing, rule.ingredient) && strings.Contains(prod, rule.product) {
			return true
		}
	}

	return false
}

// MatchPercentage 計算食譜的匹配百分比
// 只計必需食材（排除常備品）；沒有任何必需食材時回傳 0
func MatchPercentage(ingredients []common.Ingredient, products []common.Product) int {
	essential := 0
	matched := 0

	for _, ingredient := range ingredients {
		normalized := translation.Normalize(ingredient.RawText)
		if normalized == "" || IsStaple(normalized) {
			continue
		}
		essential++
		if IsAvailable(ingredient.RawText, products) {
			matched++
		}
	}

	if essential == 0 {
		return 0
	}
	return int(math.Round(float64(matched) / float64(essential) * 100))
}
