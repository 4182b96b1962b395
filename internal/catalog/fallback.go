package catalog

import "github.com/proteinnavi/backend/internal/domain"

// fallbackProducts is served on the listing page when the Rakuten API is
// unreachable and the cache is cold, so the page is never empty.
var fallbackProducts = []domain.ListingProduct{
	{
		ID:          "fallback_1",
		Name:        "ザバス ホエイプロテイン100 ココア味 1050g",
		Brand:       "ザバス",
		Description: "明治の定番プロテイン。初心者にもおすすめの飲みやすいココア味。",
		Image:       "/placeholder-protein.svg",
		Category:    "WHEY",
		Type:        []string{"ホエイ"},
		Rating:      4.3,
		Reviews:     1500,
		Tags:        []string{"定番", "飲みやすい"},
		Price:       4580,
		Nutrition:   domain.Nutrition{Protein: 20.9, Calories: 83, Servings: 50},
		Shops:       []domain.StoreLink{{Name: "Amazon", Price: 4580, URL: "#"}},
	},
	{
		ID:          "fallback_2",
		Name:        "エクスプロージョン ホエイプロテイン ミルクチョコレート味 3kg",
		Brand:       "エクスプロージョン",
		Description: "大容量3kgでコスパ最強。筋力トレーニングに最適なプロテイン。",
		Image:       "/placeholder-protein.svg",
		Category:    "WHEY",
		Type:        []string{"ホエイ"},
		Rating:      4.5,
		Reviews:     1988,
		Tags:        []string{"大容量", "コスパ"},
		Price:       8399,
		Nutrition:   domain.Nutrition{Protein: 20.0, Calories: 110, Servings: 100},
		Shops:       []domain.StoreLink{{Name: "Rakuten", Price: 8399, URL: "#"}},
	},
	{
		ID:          "fallback_3",
		Name:        "ビーレジェンド ホエイプロテイン 激うまチョコ風味 1kg",
		Brand:       "beLEGEND",
		Description: "超美味しいチョコ味で人気No.1。筋トレ後のご褒美にも最適。",
		Image:       "/placeholder-protein.svg",
		Category:    "WHEY",
		Type:        []string{"ホエイ"},
		Rating:      4.6,
		Reviews:     2100,
		Tags:        []string{"美味しい", "人気"},
		Price:       3980,
		Nutrition:   domain.Nutrition{Protein: 21.0, Calories: 112, Servings: 33},
		Shops:       []domain.StoreLink{{Name: "Rakuten", Price: 3980, URL: "#"}},
	},
	{
		ID:          "fallback_4",
		Name:        "マイプロテイン Impact ホエイプロテイン ナチュラルチョコレート 1kg",
		Brand:       "マイプロテイン",
		Description: "海外ブランドの高品質プロテイン。コスパと品質のバランスが良い。",
		Image:       "/placeholder-protein.svg",
		Category:    "WHEY",
		Type:        []string{"ホエイ"},
		Rating:      4.4,
		Reviews:     1800,
		Tags:        []string{"海外ブランド", "高品質"},
		Price:       3200,
		Nutrition:   domain.Nutrition{Protein: 22.0, Calories: 105, Servings: 40},
		Shops:       []domain.StoreLink{{Name: "MyProtein", Price: 3200, URL: "#"}},
	},
	{
		ID:          "fallback_5",
		Name:        "DNS プロテインホエイ100 プレミアムチョコレート味 1050g",
		Brand:       "DNS",
		Description: "アスリート向け高品質プロテイン。溶けやすく美味しい。",
		Image:       "/placeholder-protein.svg",
		Category:    "WHEY",
		Type:        []string{"ホエイ"},
		Rating:      4.5,
		Reviews:     1200,
		Tags:        []string{"アスリート", "高品質"},
		Price:       5400,
		Nutrition:   domain.Nutrition{Protein: 24.0, Calories: 145, Servings: 33},
		Shops:       []domain.StoreLink{{Name: "DNS", Price: 5400, URL: "#"}},
	},
	{
		ID:          "fallback_6",
		Name:        "大豆プロテイン ソイプロテイン 無添加 1kg",
		Brand:       "その他",
		Description: "植物性プロテイン。ダイエットにも最適な低カロリー設計。",
		Image:       "/placeholder-protein.svg",
		Category:    "VEGAN",
		Type:        []string{"ソイ"},
		Rating:      4.2,
		Reviews:     850,
		Tags:        []string{"植物性", "ダイエット"},
		Price:       2800,
		Nutrition:   domain.Nutrition{Protein: 20.0, Calories: 78, Servings: 40},
		Shops:       []domain.StoreLink{{Name: "Rakuten", Price: 2800, URL: "#"}},
	},
	{
		ID:          "fallback_7",
		Name:        "SAVAS ソイプロテイン100 ココア味 1050g",
		Brand:       "ザバス",
		Description: "明治のソイプロテイン。ダイエットに最適なココア味で美味しく続けられる。",
		Image:       "/placeholder-protein.svg",
		Category:    "VEGAN",
		Type:        []string{"ソイ"},
		Rating:      4.3,
		Reviews:     950,
		Tags:        []string{"植物性", "ダイエット", "美味しい"},
		Price:       4200,
		Nutrition:   domain.Nutrition{Protein: 19.5, Calories: 79, Servings: 45},
		Shops:       []domain.StoreLink{{Name: "Amazon", Price: 4200, URL: "#"}},
	},
	{
		ID:          "fallback_8",
		Name:        "ゴールドスタンダード 100% ホエイ ダブルリッチチョコレート 907g",
		Brand:       "その他",
		Description: "世界で愛される高品質プロテイン。プロアスリートも愛用。",
		Image:       "/placeholder-protein.svg",
		Category:    "WHEY",
		Type:        []string{"ホエイ"},
		Rating:      4.7,
		Reviews:     2500,
		Tags:        []string{"世界標準", "高品質"},
		Price:       6200,
		Nutrition:   domain.Nutrition{Protein: 24.0, Calories: 120, Servings: 28},
		Shops:       []domain.StoreLink{{Name: "Amazon", Price: 6200, URL: "#"}},
	},
}

// Fallback returns the static listing products used when Rakuten is down.
func Fallback() []domain.ListingProduct {
	out := make([]domain.ListingProduct, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}
