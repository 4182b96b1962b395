// Package catalog holds the static product and questionnaire data that drives
// the diagnosis. The data is fixed at compile time and never mutated.
package catalog

import "github.com/proteinnavi/backend/internal/domain"

// proteins is the curated diagnosis catalog. Order matters: the ranker breaks
// score ties by catalog position, so better-known products are listed first.
var proteins = []domain.Protein{
	{
		Name:    "ザバス ホエイプロテイン100 ココア味",
		Brand:   "SAVAS",
		Type:    []string{"ホエイ", "WPC"},
		Purpose: []string{"筋トレ", "日常", "健康"},
		Gender:  []string{"男性", "女性"},
		Flavor:  "ココア",
		Features: domain.Features{
			Protein:    20,
			Sugar:      2.7,
			Calories:   113,
			Fullness:   3,
			Absorption: domain.AbsorptionFast,
			Solubility: 4,
			Artificial: 3,
			Lactose:    domain.LactoseHigh,
			Beauty:     false,
			Domestic:   true,
		},
		Taste:           domain.Taste{Sweetness: 4, Refreshing: false, Fruity: false, Natural: true},
		Timing:          []string{"朝", "運動後", "間食"},
		PricePerServing: 68,
		Description:     "国産の定番ホエイプロテイン。溶けやすく、ココア味で飲みやすい。",
		Links: []domain.StoreLink{
			{Name: "Amazon", URL: "https://amazon.co.jp/savas-whey-cocoa"},
			{Name: "Rakuten", URL: "https://rakuten.co.jp/savas-whey-cocoa"},
		},
	},
	{
		Name:    "ビーレジェンド ホエイプロテイン 南国パイン風味",
		Brand:   "beLEGEND",
		Type:    []string{"ホエイ", "WPC"},
		Purpose: []string{"筋トレ", "美容", "日常"},
		Gender:  []string{"男性", "女性"},
		Flavor:  "パイン",
		Features: domain.Features{
			Protein:    21,
			Sugar:      3.0,
			Calories:   118,
			Fullness:   3,
			Absorption: domain.AbsorptionFast,
			Solubility: 5,
			Artificial: 2,
			Lactose:    domain.LactoseHigh,
			Beauty:     false,
			Domestic:   true,
		},
		Taste:           domain.Taste{Sweetness: 4, Refreshing: true, Fruity: true, Natural: false},
		Timing:          []string{"朝", "運動後", "間食"},
		PricePerServing: 60,
		Description:     "フルーティーで飲みやすい。コスパが良く、溶けやすさも抜群。",
		Links: []domain.StoreLink{
			{Name: "Amazon", URL: "https://amazon.co.jp/belegend-pineapple"},
			{Name: "Rakuten", URL: "https://rakuten.co.jp/belegend-pineapple"},
		},
	},
	{
		Name:    "マイプロテイン インパクトホエイ チョコレート",
		Brand:   "Myprotein",
		Type:    []string{"ホエイ", "WPC"},
		Purpose: []string{"筋トレ", "ダイエット"},
		Gender:  []string{"男性", "女性"},
		Flavor:  "チョコレート",
		Features: domain.Features{
			Protein:    21,
			Sugar:      1.9,
			Calories:   103,
			Fullness:   2,
			Absorption: domain.AbsorptionFast,
			Solubility: 3,
			Artificial: 4,
			Lactose:    domain.LactoseHigh,
			Beauty:     false,
			Domestic:   false,
		},
		Taste:           domain.Taste{Sweetness: 5, Refreshing: false, Fruity: false, Natural: false},
		Timing:          []string{"朝", "運動後"},
		PricePerServing: 45,
		Description:     "海外ブランドの高コスパプロテイン。甘いチョコレート味。",
		Links: []domain.StoreLink{
			{Name: "Amazon", URL: "https://amazon.co.jp/myprotein-chocolate"},
			{Name: "Rakuten", URL: "https://rakuten.co.jp/myprotein-chocolate"},
		},
	},
	{
		Name:    "ザバス ソイプロテイン100 ココア味",
		Brand:   "SAVAS",
		Type:    []string{"ソイ", "植物性"},
		Purpose: []string{"ダイエット", "美容", "健康"},
		Gender:  []string{"女性"},
		Flavor:  "ココア",
		Features: domain.Features{
			Protein:    15,
			Sugar:      1.1,
			Calories:   79,
			Fullness:   4,
			Absorption: domain.AbsorptionSlow,
			Solubility: 3,
			Artificial: 2,
			Lactose:    domain.LactoseNone,
			Beauty:     true,
			Domestic:   true,
		},
		Taste:           domain.Taste{Sweetness: 3, Refreshing: false, Fruity: false, Natural: true},
		Timing:          []string{"朝", "夜", "間食", "食事置き換え"},
		PricePerServing: 60,
		Description:     "大豆由来で乳糖フリー。腹持ちが良く、美容成分配合で女性におすすめ。",
		Links: []domain.StoreLink{
			{Name: "Amazon", URL: "https://amazon.co.jp/savas-soy-cocoa"},
			{Name: "Rakuten", URL: "https://rakuten.co.jp/savas-soy-cocoa"},
		},
	},
	{
		Name:    "ウェリナ ソイプロテイン 抹茶ラテ味",
		Brand:   "WELINA",
		Type:    []string{"ソイ", "植物性"},
		Purpose: []string{"美容", "ダイエット", "健康"},
		Gender:  []string{"女性"},
		Flavor:  "抹茶",
		Features: domain.Features{
			Protein:    16,
			Sugar:      0.8,
			Calories:   78,
			Fullness:   5,
			Absorption: domain.AbsorptionSlow,
			Solubility: 4,
			Artificial: 1,
			Lactose:    domain.LactoseNone,
			Beauty:     true,
			Domestic:   true,
		},
		Taste:           domain.Taste{Sweetness: 2, Refreshing: true, Fruity: false, Natural: true},
		Timing:          []string{"朝", "夜", "食事置き換え"},
		PricePerServing: 85,
		Description:     "女性専用設計。美容成分豊富で人工甘味料不使用。抹茶の上品な味わい。",
		Links: []domain.StoreLink{
			{Name: "Amazon", URL: "https://amazon.co.jp/welina-soy-matcha"},
			{Name: "Rakuten", URL: "https://rakuten.co.jp/welina-soy-matcha"},
		},
	},
	{
		Name:    "GOLD'S GYM CFMホエイプロテイン チョコレート",
		Brand:   "Gold's Gym",
		Type:    []string{"ホエイ", "WPI"},
		Purpose: []string{"筋トレ", "本格"},
		Gender:  []string{"男性", "女性"},
		Flavor:  "チョコレート",
		Features: domain.Features{
			Protein:    24,
			Sugar:      1.2,
			Calories:   108,
			Fullness:   2,
			Absorption: domain.AbsorptionFast,
			Solubility: 5,
			Artificial: 3,
			Lactose:    domain.LactoseLow,
			Beauty:     false,
			Domestic:   true,
		},
		Taste:           domain.Taste{Sweetness: 3, Refreshing: false, Fruity: false, Natural: true},
		Timing:          []string{"運動後", "朝"},
		PricePerServing: 110,
		Description:     "高品質WPI使用。乳糖を除去済みで、本格的な筋トレユーザー向け。",
		Links: []domain.StoreLink{
			{Name: "Amazon", URL: "https://amazon.co.jp/golds-gym-cfm"},
			{Name: "Rakuten", URL: "https://rakuten.co.jp/golds-gym-cfm"},
		},
	},
	{
		Name:    "X-PLOSION ホエイプロテイン バナナ",
		Brand:   "X-PLOSION",
		Type:    []string{"ホエイ", "WPC"},
		Purpose: []string{"筋トレ", "コスパ"},
		Gender:  []string{"男性", "女性"},
		Flavor:  "バナナ",
		Features: domain.Features{
			Protein:    22,
			Sugar:      2.0,
			Calories:   110,
			Fullness:   3,
			Absorption: domain.AbsorptionFast,
			Solubility: 4,
			Artificial: 3,
			Lactose:    domain.LactoseHigh,
			Beauty:     false,
			Domestic:   true,
		},
		Taste:           domain.Taste{Sweetness: 4, Refreshing: false, Fruity: true, Natural: false},
		Timing:          []string{"朝", "運動後", "間食"},
		PricePerServing: 39,
		Description:     "圧倒的なコストパフォーマンス。バナナ味で飲みやすく、学生にもおすすめ。",
		Links: []domain.StoreLink{
			{Name: "Amazon", URL: "https://amazon.co.jp/xplosion-banana"},
			{Name: "Rakuten", URL: "https://rakuten.co.jp/xplosion-banana"},
		},
	},
	{
		Name:    "DNS プロテインホエイ100 プレミアムチョコレート",
		Brand:   "DNS",
		Type:    []string{"ホエイ", "WPC"},
		Purpose: []string{"筋トレ", "本格", "アスリート"},
		Gender:  []string{"男性", "女性"},
		Flavor:  "チョコレート",
		Features: domain.Features{
			Protein:    25,
			Sugar:      2.1,
			Calories:   118,
			Fullness:   2,
			Absorption: domain.AbsorptionFast,
			Solubility: 5,
			Artificial: 2,
			Lactose:    domain.LactoseHigh,
			Beauty:     false,
			Domestic:   true,
		},
		Taste:           domain.Taste{Sweetness: 4, Refreshing: false, Fruity: false, Natural: true},
		Timing:          []string{"運動後", "朝"},
		PricePerServing: 95,
		Description:     "アスリート御用達。高たんぱく質で本格的なトレーニング効果をサポート。",
		Links: []domain.StoreLink{
			{Name: "Amazon", URL: "https://amazon.co.jp/dns-premium-chocolate"},
			{Name: "Rakuten", URL: "https://rakuten.co.jp/dns-premium-chocolate"},
		},
	},
}

// Proteins returns the diagnosis catalog. Callers receive a fresh slice so the
// backing data stays immutable.
func Proteins() []domain.Protein {
	out := make([]domain.Protein, len(proteins))
	copy(out, proteins)
	return out
}
