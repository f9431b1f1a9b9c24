package pantry

import (
	"context"
	"net/http"

	"pantry-assistant/internal/core/mealdb"
	"pantry-assistant/internal/core/pantry"
	"pantry-assistant/internal/core/translation"
	"pantry-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeInput 請求中的食譜
type RecipeInput struct {
	ID          string   `json:"id"`
	Ingredients []string `json:"ingredients" binding:"required"`
}

// AvailabilityRequest 可做性評估請求
type AvailabilityRequest struct {
	Recipes  []RecipeInput `json:"recipes" binding:"required"`
	Products []string      `json:"products"`
	Filter   string        `json:"filter,omitempty"`
}

// AvailabilityResponse 可做性評估響應
type AvailabilityResponse struct {
	Summaries []common.RecipeAvailabilitySummary `json:"summaries"`
}

// SearchRequest 外部食譜搜尋請求
// 搜尋結果會翻譯後再對提交的庫存評分
type SearchRequest struct {
	Name     string   `json:"name,omitempty"`
	Category string   `json:"category,omitempty"`
	Area     string   `json:"area,omitempty"`
	Products []string `json:"products"`
}

// SearchRecipe 搜尋結果中的單一食譜
type SearchRecipe struct {
	Recipe  common.Recipe                    `json:"recipe"`
	Summary common.RecipeAvailabilitySummary `json:"summary"`
	Matches []common.MatchResult             `json:"matches"`
}

// SearchResponse 外部食譜搜尋響應
type SearchResponse struct {
	Recipes []SearchRecipe `json:"recipes"`
}

// HandleAvailability 處理可做性評估請求
func HandleAvailability(engine *pantry.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogWarn("可做性請求格式錯誤",
				zap.Error(err),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
			)
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidRequest,
				Message: "recipes 欄位必填",
			})
			return
		}

		recipes := make([]common.Recipe, len(req.Recipes))
		for i, input := range req.Recipes {
			recipes[i] = common.Recipe{
				ID:          input.ID,
				Ingredients: toIngredients(input.Ingredients),
			}
		}
		products := toProducts(req.Products)

		summaries := engine.EvaluateAll(recipes, products)
		summaries = engine.Filter(summaries, pantry.FilterMode(req.Filter))

		c.JSON(http.StatusOK, AvailabilityResponse{Summaries: summaries})
	}
}

// HandleSearch 處理外部食譜搜尋請求
// 名稱、分類、地區擇一；食譜內容翻譯後連同可做性評估一起回傳
func HandleSearch(client *mealdb.Client, translationService *translation.Service, engine *pantry.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidRequest,
				Message: "請求格式錯誤",
			})
			return
		}

		ctx := c.Request.Context()

		var (
			recipes []common.Recipe
			err     error
		)
		switch {
		case req.Name != "":
			recipes, err = client.SearchByName(ctx, req.Name)
		case req.Category != "":
			recipes, err = client.SearchByCategory(ctx, req.Category)
		case req.Area != "":
			recipes, err = client.SearchByArea(ctx, req.Area)
		default:
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidRequest,
				Message: "name、category、area 至少填一項",
			})
			return
		}
		if err != nil {
			status := http.StatusBadGateway
			if customErr, ok := err.(*common.CustomError); ok {
				status = customErr.Status
			}
			common.LogError("外部食譜搜尋失敗", zap.Error(err))
			c.JSON(status, common.ErrorResponse{
				Code:    common.ErrCodeServiceUnavailable,
				Message: "食譜搜尋失敗",
			})
			return
		}

		products := toProducts(req.Products)
		common.LogDebug("外部食譜搜尋完成",
			zap.Int("recipe_count", len(recipes)),
			zap.Strings("products", common.ProductNames(products)),
		)

		results := make([]SearchRecipe, 0, len(recipes))
		for _, recipe := range recipes {
			translated, translateErr := translateRecipe(ctx, translationService, recipe)
			if translateErr != nil {
				common.LogWarn("食譜翻譯中斷，回傳原文",
					zap.String("recipe_id", recipe.ID),
					zap.Error(translateErr),
				)
				translated = recipe
			}
			results = append(results, SearchRecipe{
				Recipe:  translated,
				Summary: engine.Evaluate(translated, products),
				Matches: engine.MatchDetails(translated, products),
			})
		}

		c.JSON(http.StatusOK, SearchResponse{Recipes: results})
	}
}

// translateRecipe 把外部食譜的食材與步驟經協調器批次翻譯
func translateRecipe(ctx context.Context, translationService *translation.Service, recipe common.Recipe) (common.Recipe, error) {
	texts := make([]string, 0, len(recipe.Ingredients)+len(recipe.Steps)+1)
	texts = append(texts, recipe.Name)
	texts = append(texts, common.IngredientNames(recipe.Ingredients)...)
	texts = append(texts, recipe.Steps...)

	translated, err := translationService.TranslateAll(ctx, texts)
	if err != nil {
		return recipe, err
	}

	result := recipe
	result.Name = translated[0]
	result.Ingredients = make([]common.Ingredient, len(recipe.Ingredients))
	for i, ingredient := range recipe.Ingredients {
		result.Ingredients[i] = common.Ingredient{
			RawText:      translated[1+i],
			QuantityText: ingredient.QuantityText,
		}
	}
	result.Steps = translated[1+len(recipe.Ingredients):]
	return result, nil
}

func toIngredients(texts []string) []common.Ingredient {
	ingredients := make([]common.Ingredient, len(texts))
	for i, text := range texts {
		ingredients[i] = common.Ingredient{RawText: text}
	}
	return ingredients
}

func toProducts(names []string) []common.Product {
	products := make([]common.Product, len(names))
	for i, name := range names {
		products[i] = common.Product{Name: name}
	}
	return products
}
