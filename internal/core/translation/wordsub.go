package translation

import (
	"regexp"
	"strings"
)

// goodEnoughRatio 替換字元比例超過此值即視為可用的翻譯
const goodEnoughRatio = 0.30

// goodEnoughResidue 殘留英文單詞數不超過此值即視為可用的翻譯
const goodEnoughResidue = 2

var englishWordPattern = regexp.MustCompile(`\b[a-z]+\b`)

// Substitution 詞彙替換結果與品質統計
type Substitution struct {
	Result        string
	Replacements  int      // 發生替換的次數
	ReplacedChars int      // 被替換掉的原文字元數
	SourceChars   int      // 原文總字元數
	Residue       []string // 替換後仍殘留的英文單詞
}

// SubstituteWords 對文字做逐詞翻譯，為翻譯管線保證成功的最後一層
// 依片語表由長鍵到短鍵做單詞邊界替換，不在表中的詞保持原樣
// 永遠回傳可用字串，絕不回傳空值
func SubstituteWords(text string) Substitution {
	sub := Substitution{
		Result:      text,
		SourceChars: len(text),
	}

	for _, entry := range sortedEntries {
		matches := entry.pattern.FindAllString(sub.Result, -1)
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			sub.Replacements++
			sub.ReplacedChars += len(m)
		}
		sub.Result = entry.pattern.ReplaceAllString(sub.Result, entry.replacement)
	}

	sub.Residue = UntranslatedWords(text, sub.Result)
	return sub
}

// GoodEnough 判斷替換結果是否已足夠好、可跳過遠端翻譯
// 條件：至少發生一次替換，且（被替換字元比例 > 30% 或 殘留英文很短）
func (s Substitution) GoodEnough() bool {
	if s.Replacements == 0 {
		return false
	}
	if s.SourceChars > 0 && float64(s.ReplacedChars)/float64(s.SourceChars) > goodEnoughRatio {
		return true
	}
	return len(s.Residue) <= goodEnoughResidue
}

// UntranslatedWords 找出翻譯後仍殘留的英文單詞（除錯報告用）
// 一個單詞被視為未翻譯：同時出現在原文與譯文中，且不是片語表的鍵
func UntranslatedWords(originalText, translatedText string) []string {
	originalWords := englishWordPattern.FindAllString(strings.ToLower(originalText), -1)
	translatedWords := englishWordPattern.FindAllString(strings.ToLower(translatedText), -1)

	translatedSet := make(map[string]bool, len(translatedWords))
	for _, w := range translatedWords {
		translatedSet[w] = true
	}

	var untranslated []string
	seen := make(map[string]bool)
	for _, word := range originalWords {
		if translatedSet[word] && !InDictionary(word) && !seen[word] {
			untranslated = append(untranslated, word)
			seen[word] = true
		}
	}
	return untranslated
}
