package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"pantry-assistant/internal/infrastructure/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{
		Translation: config.TranslationConfig{
			RemoteTimeout: time.Second,
		},
		MealDB: config.MealDBConfig{
			Enabled: true,
			BaseURL: baseURL,
			Limit:   10,
		},
	}
	return NewClient(cfg)
}

const sampleMeal = `{
	"meals": [{
		"idMeal": "52772",
		"strMeal": "Teriyaki Chicken Casserole",
		"strCategory": "Chicken",
		"strArea": "Japanese",
		"strInstructions": "Preheat oven to 350 F.\r\nCook the rice.\r\n\r\nCombine everything.",
		"strYoutube": "https://www.youtube.com/watch?v=4aZr5hZXP_s",
		"strIngredient1": "soy sauce",
		"strMeasure1": "3/4 cup",
		"strIngredient2": "water",
		"strMeasure2": "1/2 cup",
		"strIngredient3": "chicken breast",
		"strMeasure3": "2",
		"strIngredient4": "",
		"strMeasure4": "",
		"strIngredient5": null,
		"strMeasure5": null
	}]
}`

func TestSearchByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.php" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("s"); got != "teriyaki" {
			t.Errorf("s = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleMeal))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	recipes, err := client.SearchByName(context.Background(), "teriyaki")
	if err != nil {
		t.Fatalf("SearchByName 失敗: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("食譜數量 = %d", len(recipes))
	}

	got := recipes[0]
	if got.ID != "52772" || got.Name != "Teriyaki Chicken Casserole" {
		t.Errorf("基本欄位錯誤: %+v", got)
	}
	if got.Category != "Chicken" || got.Area != "Japanese" {
		t.Errorf("分類欄位錯誤: %+v", got)
	}
	if len(got.Ingredients) != 3 {
		t.Fatalf("食材數量 = %d, want 3（空欄位應被過濾）", len(got.Ingredients))
	}
	if got.Ingredients[0].RawText != "soy sauce" || got.Ingredients[0].QuantityText != "3/4 cup" {
		t.Errorf("食材[0] = %+v", got.Ingredients[0])
	}
	if len(got.Steps) != 3 {
		t.Errorf("步驟數量 = %d, want 3（空行應被過濾）", len(got.Steps))
	}
}

func TestSearchByNameNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals": null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	recipes, err := client.SearchByName(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("查無結果不應是錯誤: %v", err)
	}
	if len(recipes) != 0 {
		t.Errorf("食譜數量 = %d, want 0", len(recipes))
	}
}

func TestLookupByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals": null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.LookupByID(context.Background(), "99999"); err == nil {
		t.Error("查無食譜應回傳錯誤")
	}
}

func TestFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.SearchByName(context.Background(), "teriyaki"); err == nil {
		t.Error("伺服器錯誤應回傳錯誤")
	}
}

func TestConvertMealEstimates(t *testing.T) {
	meal := map[string]interface{}{
		"idMeal":  "1",
		"strMeal": "Test",
	}
	for i := 1; i <= 13; i++ {
		meal["strIngredient"+strconv.Itoa(i)] = "ingredient"
		meal["strMeasure"+strconv.Itoa(i)] = "1"
	}
	meal["strInstructions"] = "one\ntwo\nthree\nfour\nfive\nsix\nseven\neight\nnine\nten\neleven"

	recipe := ConvertMeal(meal)
	if recipe.Difficulty != "Difficile" {
		t.Errorf("13 項食材的難度 = %q, want Difficile", recipe.Difficulty)
	}
	// 11 步 × 3 = 33，上限 30
	if recipe.PrepTime != 30 {
		t.Errorf("PrepTime = %d, want 30", recipe.PrepTime)
	}
	// 13 項 × 5 = 65，在上下限之間
	if recipe.CookTime != 65 {
		t.Errorf("CookTime = %d, want 65", recipe.CookTime)
	}
	if recipe.Servings != 4 {
		t.Errorf("Servings = %d, want 4", recipe.Servings)
	}
}

func TestConvertMealEasy(t *testing.T) {
	meal := map[string]interface{}{
		"idMeal":          "2",
		"strMeal":         "Simple",
		"strIngredient1":  "egg",
		"strMeasure1":     "2",
		"strInstructions": "beat\nfry",
	}

	recipe := ConvertMeal(meal)
	if recipe.Difficulty != "Facile" {
		t.Errorf("1 項食材的難度 = %q, want Facile", recipe.Difficulty)
	}
	// 2 步 × 3 = 6，下限 10
	if recipe.PrepTime != 10 {
		t.Errorf("PrepTime = %d, want 10", recipe.PrepTime)
	}
	// 1 項 × 5 = 5，下限 15
	if recipe.CookTime != 15 {
		t.Errorf("CookTime = %d, want 15", recipe.CookTime)
	}
}
