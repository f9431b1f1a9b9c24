package translation

import (
	"strings"
	"testing"
)

func TestSubstituteWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"單詞替換", "chicken", "poulet"},
		{"片語優先於單詞", "chicken breast", "blanc de poulet"},
		{"多詞片語加形容詞", "fresh chicken breast", "frais blanc de poulet"},
		{"未知詞保持原樣", "xylophone", "xylophone"},
		{"混合已知未知", "mix flour xylophone", "mélanger farine xylophone"},
		{"空字串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubstituteWords(tt.input)
			if got.Result != tt.want {
				t.Errorf("SubstituteWords(%q).Result = %q, want %q", tt.input, got.Result, tt.want)
			}
		})
	}
}

func TestSubstituteWordsStats(t *testing.T) {
	sub := SubstituteWords("chicken breast")
	if sub.Replacements != 1 {
		t.Errorf("Replacements = %d, want 1", sub.Replacements)
	}
	if sub.ReplacedChars != len("chicken breast") {
		t.Errorf("ReplacedChars = %d, want %d", sub.ReplacedChars, len("chicken breast"))
	}
	if sub.SourceChars != len("chicken breast") {
		t.Errorf("SourceChars = %d, want %d", sub.SourceChars, len("chicken breast"))
	}
	if len(sub.Residue) != 0 {
		t.Errorf("Residue = %v, want empty", sub.Residue)
	}
}

func TestSubstituteWordsNoPartialWordMatch(t *testing.T) {
	// "oil" 不可命中 "foil" 之類的子字串
	sub := SubstituteWords("aluminum foil wrap")
	if strings.Contains(sub.Result, "fhuile") {
		t.Errorf("不應做子字串替換: %q", sub.Result)
	}
}

func TestGoodEnough(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"無替換不及格", "xylophone zebra concoction", false},
		{"高替換比例及格", "mix flour xylophone", true},
		{"低比例但殘留少及格", "add extraordinary xylophone", true},
		{"低比例且殘留多不及格", "add extraordinary xylophone concoction whatnot", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := SubstituteWords(tt.input)
			if got := sub.GoodEnough(); got != tt.want {
				t.Errorf("SubstituteWords(%q).GoodEnough() = %v (replacements=%d ratio=%d/%d residue=%v), want %v",
					tt.input, got, sub.Replacements, sub.ReplacedChars, sub.SourceChars, sub.Residue, tt.want)
			}
		})
	}
}

func TestUntranslatedWords(t *testing.T) {
	got := UntranslatedWords("mix flour xylophone", "mélanger farine xylophone")
	if len(got) != 1 || got[0] != "xylophone" {
		t.Errorf("UntranslatedWords = %v, want [xylophone]", got)
	}

	// 完全翻譯的文字沒有殘留
	if got := UntranslatedWords("chicken", "poulet"); len(got) != 0 {
		t.Errorf("UntranslatedWords = %v, want empty", got)
	}

	// 重複殘留詞只回報一次
	got = UntranslatedWords("xylophone and xylophone", "xylophone et xylophone")
	if len(got) != 1 {
		t.Errorf("重複殘留詞應去重: %v", got)
	}
}
