package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/proteinnavi/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	weightPatternRegex   = regexp.MustCompile(`(?i)\d+(?:\.\d+)?(?:kg|g|キロ|グラム)`)
	proteinAmountRegex   = regexp.MustCompile(`(?i)(?:たんぱく質|タンパク質|protein)[\s：:]*(\d+(?:\.\d+)?)g`)
	calorieAmountRegex   = regexp.MustCompile(`(?:エネルギー|カロリー)[\s：:]*(\d+(?:\.\d+)?)kcal`)
	packageWeightRegex   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)kg|(\d+)g`)
	brandSplitRegex      = regexp.MustCompile(`[\s　(【]+`)
	floatFromStringRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// essentialKeywords: a listing must contain at least one of these to count as
// a protein product.
var essentialKeywords = []string{
	"プロテイン", "protein", "ホエイ", "whey", "ソイ", "soy",
	"カゼイン", "casein", "大豆プロテイン", "bcaa", "eaa", "アミノ酸",
}

// excludeKeywords filters out related-but-wrong listings: shaker bottles,
// protein bars, pet snacks, apparel and the rest of the marketplace noise that
// matches "protein" searches.
var excludeKeywords = []string{
	// 周辺商品
	"シェイカー", "ボトル", "容器", "ドリンク", "飲料水", "飲み物",
	"クレアチン", "hmb", "グルタミン",
	"マルチビタミン", "フィッシュオイル", "オメガ",
	// 加工食品
	"バー", "棒", "クッキー", "ウエハース", "グミ", "ゼリー",
	"タブレット", "錠剤", "カプセル",
	// アクセサリ
	"スプーン", "ファンネル", "漏斗", "メジャー", "計量",
	"ケース", "ケース付き", "セット", "ミキサー",
	// 衣類・器具
	"アパレル", "ウェア", "タオル", "服", "tシャツ",
	"ダンベル", "バーベル", "器具", "マシン",
	// その他
	"本", "dvd", "ブック", "マニュアル", "書籍",
	"青汁", "酵素", "コラーゲン",
}

// aminoKeywords relax the package-weight requirement: BCAA/EAA products are
// often sold without a weight in the title.
var aminoKeywords = []string{"bcaa", "eaa", "アミノ酸"}

// knownBrands maps brand keyword variants to a canonical brand name
var knownBrands = []struct {
	keywords []string
	name     string
}{
	{[]string{"ザバス", "savas"}, "ザバス"},
	{[]string{"dns"}, "DNS"},
	{[]string{"ビーレジェンド", "belegend"}, "beLEGEND"},
	{[]string{"マイプロテイン", "myprotein"}, "マイプロテイン"},
	{[]string{"アルプロン", "alpron"}, "アルプロン"},
	{[]string{"ゴールドジム", "gold's gym"}, "ゴールドジム"},
	{[]string{"エクスプロージョン", "x-plosion"}, "エクスプロージョン"},
	{[]string{"ウェリナ", "welina"}, "ウェリナ"},
	{[]string{"valx", "バルクス"}, "VALX"},
	{[]string{"ハレオ", "haleo"}, "ハレオ"},
	{[]string{"ケンタイ", "kentai"}, "Kentai"},
}

// Defaults used when nutrition facts cannot be extracted from the item text
const (
	defaultProteinGrams = 20.0
	defaultCalories     = 110.0
	defaultServings     = 30
	scoopGrams          = 30.0 // assumed serving size when deriving servings from package weight
)

// Classifier assigns protein type/category/brand/nutrition to marketplace
// listings using keyword and pattern heuristics over the free-text item name
// and description.
type Classifier struct{}

// NewClassifier creates a new product classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// IsProteinProduct reports whether a listing is an actual protein powder
// rather than an accessory, bar, supplement or other noise.
func (c *Classifier) IsProteinProduct(name, description string) bool {
	fullText := strings.ToLower(name + " " + description)

	hasEssential := false
	for _, kw := range essentialKeywords {
		if strings.Contains(fullText, strings.ToLower(kw)) {
			hasEssential = true
			break
		}
	}
	if !hasEssential {
		return false
	}

	for _, kw := range excludeKeywords {
		if strings.Contains(fullText, strings.ToLower(kw)) {
			return false
		}
	}

	// Amino-acid products skip the weight check; powders must state a weight
	for _, kw := range aminoKeywords {
		if strings.Contains(fullText, kw) {
			return true
		}
	}
	return weightPatternRegex.MatchString(name)
}

// ExtractTypes returns the protein types mentioned in an item name
func (c *Classifier) ExtractTypes(name string) []string {
	lower := strings.ToLower(name)
	var types []string

	if strings.Contains(lower, "ホエイ") || strings.Contains(lower, "whey") {
		types = append(types, "ホエイ")
	}
	if strings.Contains(lower, "ソイ") || strings.Contains(lower, "soy") || strings.Contains(lower, "大豆") {
		types = append(types, "ソイ")
	}
	if strings.Contains(lower, "カゼイン") || strings.Contains(lower, "casein") {
		types = append(types, "カゼイン")
	}
	if strings.Contains(lower, "植物性") || strings.Contains(lower, "ピープロテイン") {
		types = append(types, "植物性")
	}

	if len(types) == 0 {
		return []string{"その他"}
	}
	return types
}

// ExtractCategory maps an item name to a display category ID
func (c *Classifier) ExtractCategory(name string) string {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "ホエイ") || strings.Contains(lower, "whey"):
		return "WHEY"
	case strings.Contains(lower, "ソイ") || strings.Contains(lower, "soy") ||
		strings.Contains(lower, "大豆") || strings.Contains(lower, "植物性"):
		return "VEGAN"
	case strings.Contains(lower, "カゼイン") || strings.Contains(lower, "casein"):
		return "CASEIN"
	case strings.Contains(lower, "bcaa") || strings.Contains(lower, "eaa") ||
		strings.Contains(lower, "アミノ酸"):
		return "BCAA"
	case strings.Contains(lower, "シェイカー") || strings.Contains(lower, "ボトル") ||
		strings.Contains(lower, "容器"):
		return "ACCESSORIES"
	default:
		return "WHEY"
	}
}

// ExtractBrand resolves a canonical brand from the item name, falling back to
// the first word of the title.
func (c *Classifier) ExtractBrand(name string) string {
	lower := strings.ToLower(name)

	for _, brand := range knownBrands {
		for _, kw := range brand.keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return brand.name
			}
		}
	}

	fields := brandSplitRegex.Split(strings.TrimSpace(name), -1)
	if len(fields) > 0 && fields[0] != "" {
		return fields[0]
	}
	return "その他"
}

// ExtractNutrition pulls protein grams, calories and serving count out of the
// item text. Missing values fall back to typical protein powder defaults.
func (c *Classifier) ExtractNutrition(name, description string) domain.Nutrition {
	text := name + " " + description

	nutrition := domain.Nutrition{
		Protein:  defaultProteinGrams,
		Calories: defaultCalories,
		Servings: defaultServings,
	}

	if m := proteinAmountRegex.FindStringSubmatch(text); m != nil {
		nutrition.Protein = parseFloat(m[1], defaultProteinGrams)
	}
	if m := calorieAmountRegex.FindStringSubmatch(text); m != nil {
		nutrition.Calories = parseFloat(m[1], defaultCalories)
	}

	// Package weight -> servings, assuming one scoop per serving
	if m := packageWeightRegex.FindStringSubmatch(name); m != nil {
		if m[1] != "" {
			// kg form
			kg := parseFloat(m[1], 0)
			if kg > 0 {
				nutrition.Servings = int(kg*1000/scoopGrams + 0.5)
			}
		} else if m[2] != "" {
			grams := parseFloat(m[2], 0)
			if grams > 100 {
				nutrition.Servings = int(grams/scoopGrams + 0.5)
			}
		}
	}

	return nutrition
}

// parseFloat parses the leading decimal in s, returning fallback on failure
func parseFloat(s string, fallback float64) float64 {
	match := floatFromStringRegex.FindString(s)
	if match == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return fallback
	}
	return value
}
