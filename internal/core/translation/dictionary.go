package translation

import (
	"regexp"
	"sort"
	"strings"
)

// culinaryDictionary 廚房詞彙的英法對照表
// 鍵一律為小寫；多詞片語（如 "chicken breast"）必須在單詞之前被比對
var culinaryDictionary = map[string]string{
	// 肉類
	"chicken":         "poulet",
	"chicken breast":  "blanc de poulet",
	"chicken breasts": "blancs de poulet",
	"chicken thighs":  "cuisses de poulet",
	"beef":            "bœuf",
	"pork":            "porc",
	"lamb":            "agneau",
	"turkey":          "dinde",
	"bacon":           "lardons",
	"ham":             "jambon",
	"sausage":         "saucisse",
	"ground beef":     "viande hachée",

	// 魚類
	"fish":   "poisson",
	"salmon": "saumon",
	"tuna":   "thon",
	"cod":    "cabillaud",
	"shrimp": "crevettes",
	"prawns": "crevettes",

	// 蔬菜與罐頭
	"tomato":           "tomate",
	"tomatoes":         "tomates",
	"canned tomatoes":  "tomates en conserve",
	"diced tomatoes":   "tomates en dés",
	"crushed tomatoes": "tomates concassées",
	"onion":            "oignon",
	"onions":           "oignons",
	"garlic":           "ail",
	"carrot":           "carotte",
	"carrots":          "carottes",
	"potato":           "pomme de terre",
	"potatoes":         "pommes de terre",
	"lettuce":          "laitue",
	"cucumber":         "concombre",
	"bell pepper":      "poivron",
	"pepper":           "poivre",
	"mushroom":         "champignon",
	"mushrooms":        "champignons",
	"zucchini":         "courgette",
	"eggplant":         "aubergine",
	"spinach":          "épinards",
	"broccoli":         "brocoli",
	"cauliflower":      "chou-fleur",
	"cabbage":          "chou",
	"celery":           "céleri",
	"leek":             "poireau",
	"corn":             "maïs",
	"sweet corn":       "maïs doux",
	"peas":             "petits pois",
	"green beans":      "haricots verts",
	"black beans":      "haricots noirs",
	"kidney beans":     "haricots rouges",
	"white beans":      "haricots blancs",
	"beans":            "haricots",
	"chickpeas":        "pois chiches",
	"lentils":          "lentilles",

	// 水果
	"apple":        "pomme",
	"apples":       "pommes",
	"banana":       "banane",
	"orange":       "orange",
	"lemon":        "citron",
	"lime":         "citron vert",
	"strawberry":   "fraise",
	"strawberries": "fraises",
	"blueberry":    "myrtille",
	"blueberries":  "myrtilles",
	"raspberry":    "framboise",
	"raspberries":  "framboises",
	"cherry":       "cerise",
	"cherries":     "cerises",
	"peach":        "pêche",
	"pear":         "poire",
	"grape":        "raisin",
	"grapes":       "raisins",

	// 乳製品
	"milk":        "lait",
	"butter":      "beurre",
	"cheese":      "fromage",
	"cream":       "crème",
	"heavy cream": "crème épaisse",
	"sour cream":  "crème aigre",
	"yogurt":      "yaourt",
	"parmesan":    "parmesan",
	"mozzarella":  "mozzarella",
	"cheddar":     "cheddar",
	"egg":         "œuf",
	"eggs":        "œufs",

	// 穀物與麵食
	"rice":        "riz",
	"pasta":       "pâtes",
	"spaghetti":   "spaghetti",
	"noodles":     "nouilles",
	"flour":       "farine",
	"bread":       "pain",
	"breadcrumbs": "chapelure",

	// 香料與調味
	"salt":         "sel",
	"black pepper": "poivre noir",
	"paprika":      "paprika",
	"cumin":        "cumin",
	"curry":        "curry",
	"oregano":      "origan",
	"basil":        "basilic",
	"thyme":        "thym",
	"rosemary":     "romarin",
	"parsley":      "persil",
	"coriander":    "coriandre",
	"cilantro":     "coriandre",
	"bay leaf":     "feuille de laurier",
	"bay leaves":   "feuilles de laurier",
	"cinnamon":     "cannelle",
	"ginger":       "gingembre",
	"nutmeg":       "noix de muscade",
	"vanilla":      "vanille",

	// 油與醬料
	"olive oil":     "huile d'olive",
	"oil":           "huile",
	"vegetable oil": "huile végétale",
	"vinegar":       "vinaigre",
	"soy sauce":     "sauce soja",
	"tomato sauce":  "sauce tomate",
	"ketchup":       "ketchup",
	"mayonnaise":    "mayonnaise",
	"mustard":       "moutarde",

	// 糖與甜點
	"sugar":       "sucre",
	"brown sugar": "sucre roux",
	"honey":       "miel",
	"chocolate":   "chocolat",
	"cocoa":       "cacao",

	// 其他
	"water":           "eau",
	"broth":           "bouillon",
	"stock":           "bouillon",
	"chicken stock":   "bouillon de poulet",
	"vegetable stock": "bouillon de légumes",
	"beef stock":      "bouillon de bœuf",
	"coconut milk":    "lait de coco",
	"wine":            "vin",
	"red wine":        "vin rouge",
	"white wine":      "vin blanc",
	"beer":            "bière",

	// 器具
	"pan":           "poêle",
	"pot":           "casserole",
	"bowl":          "bol",
	"skillet":       "poêle",
	"saucepan":      "casserole",
	"baking sheet":  "plaque de cuisson",
	"baking dish":   "plat à four",
	"oven":          "four",
	"stove":         "cuisinière",
	"knife":         "couteau",
	"spoon":         "cuillère",
	"fork":          "fourchette",
	"spatula":       "spatule",
	"whisk":         "fouetter",
	"cutting board": "planche à découper",
	"plate":         "assiette",
	"dish":          "plat",

	// 處理方式
	"chopped":  "haché",
	"diced":    "coupé en dés",
	"sliced":   "tranché",
	"minced":   "haché finement",
	"grated":   "râpé",
	"shredded": "râpé",
	"peeled":   "épluché",
	"crushed":  "écrasé",
	"beaten":   "battu",
	"whisked":  "fouetté",
	"melted":   "fondu",
	"boiled":   "bouilli",
	"fried":    "frit",
	"roasted":  "rôti",
	"grilled":  "grillé",
	"baked":    "cuit au four",
	"steamed":  "cuit à la vapeur",
	"cooked":   "cuit",
	"raw":      "cru",
	"fresh":    "frais",
	"dried":    "séché",
	"frozen":   "congelé",

	// 烹飪動詞（食譜步驟）
	"preheat":         "préchauffer",
	"mix":             "mélanger",
	"add":             "ajouter",
	"cook":            "cuire",
	"bake":            "cuire au four",
	"boil":            "faire bouillir",
	"simmer":          "laisser mijoter",
	"stir":            "remuer",
	"fry":             "frire",
	"serve":           "servir",
	"cut":             "couper",
	"chop":            "hacher",
	"slice":           "trancher",
	"dice":            "couper en dés",
	"mince":           "hacher finement",
	"grill":           "griller",
	"roast":           "rôtir",
	"beat":            "battre",
	"pour":            "verser",
	"season":          "assaisonner",
	"heat":            "chauffer",
	"drain":           "égoutter",
	"remove":          "retirer",
	"blend":           "mixer",
	"combine":         "mélanger",
	"transfer":        "transférer",
	"spread":          "étaler",
	"sprinkle":        "saupoudrer",
	"garnish":         "garnir",
	"coat":            "enrober",
	"brush":           "badigeonner",
	"marinate":        "faire mariner",
	"steam":           "cuire à la vapeur",
	"braise":          "braiser",
	"sear":            "saisir",
	"reduce":          "réduire",
	"melt":            "faire fondre",
	"chill":           "réfrigérer",
	"freeze":          "congeler",
	"refrigerate":     "réfrigérer",
	"let rest":        "laisser reposer",
	"set aside":       "réserver",
	"peel":            "éplucher",
	"wash":            "laver",
	"rinse":           "rincer",
	"knead":           "pétrir",
	"divide":          "diviser",
	"arrange":         "disposer",
	"place":           "placer",
	"put":             "mettre",
	"bring to a boil": "porter à ébullition",
	"let cool":        "laisser refroidir",
	"cover":           "couvrir",
	"uncover":         "découvrir",

	// 介係詞與常見片語
	"the oven":  "le four",
	"in a pan":  "dans une poêle",
	"in a pot":  "dans une casserole",
	"in a bowl": "dans un bol",
	"until":     "jusqu'à ce que",
	"for about": "pendant environ",
	"about":     "environ",

	// 時間
	"minutes": "minutes",
	"minute":  "minute",
	"hours":   "heures",
	"hour":    "heure",
	"seconds": "secondes",
	"second":  "seconde",

	// 連接詞
	"and":  "et",
	"or":   "ou",
	"then": "puis",

	// 常見形容詞與副詞
	"hot":          "chaud",
	"warm":         "tiède",
	"cold":         "froid",
	"large":        "gros",
	"medium":       "moyen",
	"small":        "petit",
	"finely":       "finement",
	"freshly":      "fraîchement",
	"golden":       "doré",
	"brown":        "brun",
	"tender":       "tendre",
	"gently":       "doucement",
	"slowly":       "lentement",
	"occasionally": "de temps en temps",

	// 單位與份量
	"cup":         "tasse",
	"cups":        "tasses",
	"tablespoon":  "c. à soupe",
	"tablespoons": "c. à soupe",
	"teaspoon":    "c. à café",
	"teaspoons":   "c. à café",
	"ounce":       "once",
	"ounces":      "onces",
	"pound":       "livre",
	"pounds":      "livres",
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"milliliter":  "ml",
	"milliliters": "ml",
	"liter":       "l",
	"liters":      "l",
	"clove":       "gousse",
	"cloves":      "gousses",
	"pinch":       "pincée",
	"a pinch of":  "une pincée de",
	"handful":     "poignée",
	"piece":       "morceau",
	"pieces":      "morceaux",
	"slices":      "tranches",
	"chunk":       "morceau",
	"chunks":      "morceaux",
	"half":        "moitié",
	"quarter":     "quart",
	"whole":       "entier",
	"to taste":    "au goût",
	"as needed":   "selon besoin",
	"can":         "boîte",
	"canned":      "en conserve",
	"jar":         "pot",
	"bottle":      "bouteille",
	"package":     "paquet",
	"bunch":       "botte",
}

// dictionaryEntry 一條已編譯的替換規則
type dictionaryEntry struct {
	key         string
	replacement string
	pattern     *regexp.Regexp
}

// sortedEntries 依鍵長度由長到短排序的規則列表
// 確保 "chicken breast" 先於 "chicken" 被比對
var sortedEntries []dictionaryEntry

func init() {
	keys := make([]string, 0, len(culinaryDictionary))
	for k := range culinaryDictionary {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	sortedEntries = make([]dictionaryEntry, 0, len(keys))
	for _, k := range keys {
		sortedEntries = append(sortedEntries, dictionaryEntry{
			key:         k,
			replacement: culinaryDictionary[k],
			pattern:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`),
		})
	}
}

// DictionarySize 回傳片語表條目數（除錯用）
func DictionarySize() int {
	return len(culinaryDictionary)
}

// InDictionary 檢查一個小寫單詞是否為片語表的鍵
func InDictionary(word string) bool {
	_, ok := culinaryDictionary[word]
	return ok
}

// ResolveExact 以整句為鍵查詢片語表
// 查詢不分大小寫並先正規化空白；未命中回傳 ("", false)，絕不回傳部分結果
func ResolveExact(text string) (string, bool) {
	key := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	if key == "" {
		return "", false
	}
	value, ok := culinaryDictionary[key]
	return value, ok
}
