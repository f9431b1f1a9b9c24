package pantry

import (
	"testing"

	"pantry-assistant/internal/pkg/common"
)

func recipe(id string, ingredientTexts ...string) common.Recipe {
	return common.Recipe{
		ID:          id,
		Ingredients: ingredients(ingredientTexts...),
	}
}

func TestEvaluate(t *testing.T) {
	engine := NewEngine()
	pantryItems := products("tomate", "oignon", "ail", "spaghetti")

	summary := engine.Evaluate(
		recipe("r1", "tomate", "oignon", "ail", "chocolat", "fraise"),
		pantryItems,
	)

	if summary.RecipeID != "r1" {
		t.Errorf("RecipeID = %q", summary.RecipeID)
	}
	if summary.UsedCount != 3 || summary.MissedCount != 2 {
		t.Errorf("UsedCount=%d MissedCount=%d, want 3/2", summary.UsedCount, summary.MissedCount)
	}
	if summary.MatchPercentage != 60 {
		t.Errorf("MatchPercentage = %d, want 60", summary.MatchPercentage)
	}
	if summary.CanMake {
		t.Error("60 低於門檻，不應為可做")
	}
}

func TestEvaluateCanMakeThreshold(t *testing.T) {
	engine := NewEngine()
	pantryItems := products("tomate", "oignon", "ail", "poulet")

	// 5 項中 4 項 → 80 ≥ 70
	summary := engine.Evaluate(
		recipe("r1", "tomate", "oignon", "ail", "poulet", "chocolat"),
		pantryItems,
	)
	if summary.MatchPercentage != 80 {
		t.Errorf("MatchPercentage = %d, want 80", summary.MatchPercentage)
	}
	if !summary.CanMake {
		t.Error("80 達門檻，應為可做")
	}
}

func TestEvaluateStaplesExcludedFromPercentage(t *testing.T) {
	engine := NewEngine()

	// sel 與 eau 是常備品：不在庫存也不影響百分比，但仍列入缺料清單
	summary := engine.Evaluate(
		recipe("r1", "tomate", "sel", "eau"),
		products("tomate"),
	)
	if summary.MatchPercentage != 100 {
		t.Errorf("MatchPercentage = %d, want 100", summary.MatchPercentage)
	}
	if summary.MissedCount != 2 {
		t.Errorf("MissedCount = %d, want 2", summary.MissedCount)
	}
	if !summary.CanMake {
		t.Error("必需食材全齊，應為可做")
	}
}

func TestEvaluateAllSortedByPercentage(t *testing.T) {
	engine := NewEngine()
	pantryItems := products("tomate", "oignon")

	summaries := engine.EvaluateAll([]common.Recipe{
		recipe("low", "tomate", "chocolat", "fraise"),
		recipe("high", "tomate", "oignon"),
		recipe("mid", "tomate", "oignon", "chocolat"),
	}, pantryItems)

	if len(summaries) != 3 {
		t.Fatalf("結果數量 = %d", len(summaries))
	}
	wantOrder := []string{"high", "mid", "low"}
	for i, want := range wantOrder {
		if summaries[i].RecipeID != want {
			t.Errorf("summaries[%d].RecipeID = %q, want %q", i, summaries[i].RecipeID, want)
		}
	}
}

func TestFilter(t *testing.T) {
	engine := NewEngine()
	summaries := []common.RecipeAvailabilitySummary{
		{RecipeID: "exact", MissedCount: 0},
		{RecipeID: "few", MissedCount: 2},
		{RecipeID: "many", MissedCount: 5},
	}

	all := engine.Filter(summaries, FilterAll)
	if len(all) != 3 {
		t.Errorf("FilterAll 應回傳全部: %d", len(all))
	}

	exact := engine.Filter(summaries, FilterExact)
	if len(exact) != 1 || exact[0].RecipeID != "exact" {
		t.Errorf("FilterExact = %v", exact)
	}

	few := engine.Filter(summaries, FilterMissingFew)
	if len(few) != 2 {
		t.Errorf("FilterMissingFew 應回傳 2 筆: %d", len(few))
	}

	// 未知模式視同不篩選
	unknown := engine.Filter(summaries, FilterMode(""))
	if len(unknown) != 3 {
		t.Errorf("空模式應回傳全部: %d", len(unknown))
	}
}

func TestMatchDetails(t *testing.T) {
	engine := NewEngine()

	details := engine.MatchDetails(
		recipe("r1", "tomate", "chocolat"),
		products("tomate"),
	)

	if len(details) != 2 {
		t.Fatalf("明細數量 = %d", len(details))
	}
	if !details[0].IsAvailable || details[0].Ingredient.RawText != "tomate" {
		t.Errorf("details[0] = %+v", details[0])
	}
	if details[1].IsAvailable {
		t.Errorf("chocolat 不應可用: %+v", details[1])
	}
}
