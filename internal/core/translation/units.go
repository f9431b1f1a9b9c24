package translation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// 各單位的轉換規則彼此獨立且不重疊，套用順序不影響結果
// 但 ConvertUnits 必須在任何字典層翻譯之前執行，避免單位詞被先行翻譯
var (
	ouncePattern      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:oz|ounces?)\b`)
	poundPattern      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:lbs?|pounds?)\b`)
	cupPattern        = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*cups?\b`)
	tablespoonPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:tablespoons?|tbsp)\b`)
	teaspoonPattern   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:teaspoons?|tsp)\b`)
	fahrenheitPattern = regexp.MustCompile(`(?i)(\d+)\s*°?\s*F\b`)
)

// ConvertUnits 將文字中的英制單位改寫為公制
// 1 oz ≈ 28.35g，1 lb ≈ 453.6g，1 cup ≈ 240ml，°F → °C
// tablespoons / teaspoons 僅做縮寫替換，不做數值換算
func ConvertUnits(text string) string {
	result := text

	result = ouncePattern.ReplaceAllStringFunc(result, func(match string) string {
		amount := parseAmount(ouncePattern, match)
		grams := int(math.Round(amount * 28.35))
		return fmt.Sprintf("%dg", grams)
	})

	result = poundPattern.ReplaceAllStringFunc(result, func(match string) string {
		amount := parseAmount(poundPattern, match)
		grams := int(math.Round(amount * 453.6))
		if grams >= 1000 {
			return fmt.Sprintf("%.1fkg", float64(grams)/1000)
		}
		return fmt.Sprintf("%dg", grams)
	})

	result = cupPattern.ReplaceAllStringFunc(result, func(match string) string {
		amount := parseAmount(cupPattern, match)
		ml := int(math.Round(amount * 240))
		return fmt.Sprintf("%dml", ml)
	})

	result = tablespoonPattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("%s c. à soupe", rawAmount(tablespoonPattern, match))
	})

	result = teaspoonPattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("%s c. à café", rawAmount(teaspoonPattern, match))
	})

	result = fahrenheitPattern.ReplaceAllStringFunc(result, func(match string) string {
		f := parseAmount(fahrenheitPattern, match)
		celsius := int(math.Round((f - 32) * 5 / 9))
		return fmt.Sprintf("%d°C", celsius)
	})

	return result
}

// parseAmount 取出匹配中的數值部分
func parseAmount(pattern *regexp.Regexp, match string) float64 {
	sub := pattern.FindStringSubmatch(match)
	if len(sub) < 2 {
		return 0
	}
	amount, err := strconv.ParseFloat(sub[1], 64)
	if err != nil {
		return 0
	}
	return amount
}

// rawAmount 取出匹配中的數值原文（不轉換）
func rawAmount(pattern *regexp.Regexp, match string) string {
	sub := pattern.FindStringSubmatch(match)
	if len(sub) < 2 {
		return match
	}
	return sub[1]
}
