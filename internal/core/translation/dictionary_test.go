package translation

import "testing"

func TestResolveExact(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"單詞命中", "chicken", "poulet", true},
		{"不分大小寫", "Chicken", "poulet", true},
		{"片語命中", "chicken breast", "blanc de poulet", true},
		{"多餘空白", "  chicken   breast  ", "blanc de poulet", true},
		{"未命中", "dragon fruit smoothie", "", false},
		{"空字串", "", "", false},
		{"部分句子不命中", "add the chicken now", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveExact(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ResolveExact(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInDictionary(t *testing.T) {
	if !InDictionary("tomato") {
		t.Error("tomato 應在片語表中")
	}
	if InDictionary("Tomato") {
		t.Error("InDictionary 只接受小寫鍵")
	}
	if InDictionary("xylophone") {
		t.Error("xylophone 不應在片語表中")
	}
}

func TestDictionarySize(t *testing.T) {
	if DictionarySize() < 200 {
		t.Errorf("片語表過小: %d", DictionarySize())
	}
}

func TestSortedEntriesLongestFirst(t *testing.T) {
	// 長鍵必須排在短鍵之前，否則 "chicken breast" 會被 "chicken" 搶先替換
	for i := 1; i < len(sortedEntries); i++ {
		if len(sortedEntries[i-1].key) < len(sortedEntries[i].key) {
			t.Fatalf("鍵排序錯誤: %q (長度 %d) 在 %q (長度 %d) 之前",
				sortedEntries[i-1].key, len(sortedEntries[i-1].key),
				sortedEntries[i].key, len(sortedEntries[i].key))
		}
	}
}
