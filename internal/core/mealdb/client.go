package mealdb

import (
	"context"
	"fmt"
	"strings"

	"pantry-assistant/internal/infrastructure/config"
	"pantry-assistant/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// 單份食譜最多有 20 組編號食材欄位
const maxIngredientFields = 20

// Client 外部食譜庫客戶端
type Client struct {
	client *resty.Client
	limit  int
}

// mealResponse 食譜庫回應
// 欄位是 strIngredient1..20 這類編號鍵，用泛型 map 承接再逐一抽取
type mealResponse struct {
	Meals []map[string]interface{} `json:"meals"`
}

// NewClient 創建食譜庫客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.MealDB.BaseURL).
		SetTimeout(cfg.Translation.RemoteTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		client: client,
		limit:  cfg.MealDB.Limit,
	}
}

// SearchByName 以名稱搜尋食譜
func (c *Client) SearchByName(ctx context.Context, name string) ([]common.Recipe, error) {
	return c.search(ctx, "/search.php", map[string]string{"s": name})
}

// SearchByCategory 以分類搜尋食譜（filter 端點只回摘要，需逐筆補查）
func (c *Client) SearchByCategory(ctx context.Context, category string) ([]common.Recipe, error) {
	return c.searchAndHydrate(ctx, "/filter.php", map[string]string{"c": category})
}

// SearchByArea 以地區菜系搜尋食譜
func (c *Client) SearchByArea(ctx context.Context, area string) ([]common.Recipe, error) {
	return c.searchAndHydrate(ctx, "/filter.php", map[string]string{"a": area})
}

// LookupByID 以編號查詢單一食譜
func (c *Client) LookupByID(ctx context.Context, id string) (*common.Recipe, error) {
	recipes, err := c.search(ctx, "/lookup.php", map[string]string{"i": id})
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, common.NewError(common.ErrCodeNotFound, "找不到指定的食譜", 404, nil)
	}
	return &recipes[0], nil
}

// Random 隨機取得一份食譜
func (c *Client) Random(ctx context.Context) (*common.Recipe, error) {
	recipes, err := c.search(ctx, "/random.php", nil)
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, common.NewError(common.ErrCodeNotFound, "食譜庫未回傳任何食譜", 404, nil)
	}
	return &recipes[0], nil
}

// search 呼叫完整資料端點並轉換結果
func (c *Client) search(ctx context.Context, path string, params map[string]string) ([]common.Recipe, error) {
	meals, err := c.fetch(ctx, path, params)
	if err != nil {
		return nil, err
	}

	recipes := make([]common.Recipe, 0, len(meals))
	for _, meal := range meals {
		if len(recipes) >= c.limit {
			break
		}
		recipes = append(recipes, ConvertMeal(meal))
	}
	return recipes, nil
}

// searchAndHydrate 呼叫摘要端點，再逐筆補查完整資料
func (c *Client) searchAndHydrate(ctx context.Context, path string, params map[string]string) ([]common.Recipe, error) {
	meals, err := c.fetch(ctx, path, params)
	if err != nil {
		return nil, err
	}

	recipes := make([]common.Recipe, 0, len(meals))
	for _, meal := range meals {
		if len(recipes) >= c.limit {
			break
		}
		id := stringField(meal, "idMeal")
		if id == "" {
			continue
		}
		full, err := c.LookupByID(ctx, id)
		if err != nil {
			common.LogWarn("補查食譜失敗，跳過",
				zap.String("recipe_id", id),
				zap.Error(err),
			)
			continue
		}
		recipes = append(recipes, *full)
	}
	return recipes, nil
}

func (c *Client) fetch(ctx context.Context, path string, params map[string]string) ([]map[string]interface{}, error) {
	request := c.client.R().SetContext(ctx)
	if len(params) > 0 {
		request.SetQueryParams(params)
	}

	resp, err := request.Get(path)
	if err != nil {
		return nil, common.NewError(common.ErrCodeServiceUnavailable, "食譜庫連線失敗", 502, err)
	}
	if resp.StatusCode() != 200 {
		return nil, common.NewError(common.ErrCodeServiceUnavailable,
			fmt.Sprintf("食譜庫回應異常狀態碼: %d", resp.StatusCode()), 502, nil)
	}

	var result mealResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, common.NewError(common.ErrCodeServiceUnavailable, "食譜庫回應格式錯誤", 502, err)
	}

	// 查無結果時 meals 為 null
	return result.Meals, nil
}

// ConvertMeal 把食譜庫的原始欄位轉成內部食譜模型
// 難度與時間是啟發式估算：食譜庫本身不提供這些欄位
func ConvertMeal(meal map[string]interface{}) common.Recipe {
	ingredients := ExtractIngredients(meal)
	steps := splitInstructions(stringField(meal, "strInstructions"))

	common.LogDebug("轉換外部食譜",
		zap.String("recipe_id", stringField(meal, "idMeal")),
		zap.String("食材", common.FormatIngredients(ingredients)),
	)

	return common.Recipe{
		ID:          stringField(meal, "idMeal"),
		Name:        stringField(meal, "strMeal"),
		Category:    stringField(meal, "strCategory"),
		Area:        stringField(meal, "strArea"),
		Ingredients: ingredients,
		Steps:       steps,
		PrepTime:    clamp(len(steps)*3, 10, 30),
		CookTime:    clamp(len(ingredients)*5, 15, 90),
		Servings:    4,
		Difficulty:  estimateDifficulty(len(ingredients)),
		YoutubeURL:  stringField(meal, "strYoutube"),
	}
}

// ExtractIngredients 抽取 20 組編號食材欄位，過濾空值
func ExtractIngredients(meal map[string]interface{}) []common.Ingredient {
	ingredients := make([]common.Ingredient, 0, maxIngredientFields)
	for i := 1; i <= maxIngredientFields; i++ {
		name := strings.TrimSpace(stringField(meal, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(stringField(meal, fmt.Sprintf("strMeasure%d", i)))
		ingredients = append(ingredients, common.Ingredient{
			RawText:      name,
			QuantityText: measure,
		})
	}
	return ingredients
}

// estimateDifficulty 以食材數量估算難度
func estimateDifficulty(ingredientCount int) string {
	switch {
	case ingredientCount <= 5:
		return "Facile"
	case ingredientCount >= 12:
		return "Difficile"
	default:
		return "Moyen"
	}
}

// splitInstructions 按換行切步驟，去除空行與首尾空白
func splitInstructions(instructions string) []string {
	lines := strings.Split(strings.ReplaceAll(instructions, "\r\n", "\n"), "\n")
	steps := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		steps = append(steps, line)
	}
	return steps
}

func stringField(meal map[string]interface{}, key string) string {
	if value, ok := meal[key].(string); ok {
		return value
	}
	return ""
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
