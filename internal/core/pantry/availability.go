package pantry

import (
	"sort"

	"pantry-assistant/internal/pkg/common"
)

// FilterMode 食譜篩選模式
type FilterMode string

const (
	FilterAll        FilterMode = "all"         // 不篩選
	FilterExact      FilterMode = "exact"       // 只留完全不缺料的食譜
	FilterMissingFew FilterMode = "missing_few" // 缺料不超過 missingFewLimit 項
)

// 「缺一點點」的上限
const missingFewLimit = 3

// Engine 食譜可做性引擎
// 純計算，不持有狀態；依賴注入配置以便測試覆寫門檻
type Engine struct{}

// NewEngine 創建可做性引擎
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate 評估單一食譜對當前庫存的可做性
func (e *Engine) Evaluate(recipe common.Recipe, products []common.Product) common.RecipeAvailabilitySummary {
	used := make([]string, 0, len(recipe.Ingredients))
	missed := make([]string, 0)

	for _, ingredient := range recipe.Ingredients {
		if IsAvailable(ingredient.RawText, products) {
			used = append(used, ingredient.RawText)
		} else {
			missed = append(missed, ingredient.RawText)
		}
	}

	percentage := MatchPercentage(recipe.Ingredients, products)

	return common.RecipeAvailabilitySummary{
		RecipeID:          recipe.ID,
		UsedIngredients:   used,
		MissedIngredients: missed,
		UsedCount:         len(used),
		MissedCount:       len(missed),
		MatchPercentage:   percentage,
		CanMake:           percentage >= CanMakeThreshold,
	}
}

// EvaluateAll 評估多個食譜，結果按匹配百分比由高到低排序（穩定）
func (e *Engine) EvaluateAll(recipes []common.Recipe, products []common.Product) []common.RecipeAvailabilitySummary {
	summaries := make([]common.RecipeAvailabilitySummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, e.Evaluate(recipe, products))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].MatchPercentage > summaries[j].MatchPercentage
	})

	return summaries
}

// Filter 按模式篩選評估結果
func (e *Engine) Filter(summaries []common.RecipeAvailabilitySummary, mode FilterMode) []common.RecipeAvailabilitySummary {
	if mode == FilterAll || mode == "" {
		return summaries
	}

	filtered := make([]common.RecipeAvailabilitySummary, 0, len(summaries))
	for _, summary := range summaries {
		switch mode {
		case FilterExact:
			if summary.MissedCount == 0 {
				filtered = append(filtered, summary)
			}
		case FilterMissingFew:
			if summary.MissedCount <= missingFewLimit {
				filtered = append(filtered, summary)
			}
		}
	}
	return filtered
}

// MatchDetails 產生單一食譜的逐項匹配明細
func (e *Engine) MatchDetails(recipe common.Recipe, products []common.Product) []common.MatchResult {
	details := make([]common.MatchResult, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		details = append(details, common.MatchResult{
			Ingredient:  ingredient,
			IsAvailable: IsAvailable(ingredient.RawText, products),
		})
	}
	return details
}
