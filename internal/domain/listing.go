package domain

// ListingProduct is a marketplace-backed product shown on the listing page.
// Unlike the diagnosis catalog it is built at runtime from Rakuten search
// results, with type/category/nutrition inferred from the item text.
type ListingProduct struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Brand           string      `json:"brand"`
	Description     string      `json:"description"`
	Image           string      `json:"image"`
	Category        string      `json:"category"` // WHEY, VEGAN, CASEIN, BCAA
	Type            []string    `json:"type"`
	Rating          float64     `json:"rating"`
	Reviews         int         `json:"reviews"`
	Tags            []string    `json:"tags"`
	Price           int         `json:"price"`
	PricePerServing int         `json:"pricePerServing"`
	Nutrition       Nutrition   `json:"nutrition"`
	Shops           []StoreLink `json:"shops"`
}

// Nutrition holds values extracted from free-text item descriptions
type Nutrition struct {
	Protein  float64 `json:"protein"`  // grams per serving
	Calories float64 `json:"calories"` // kcal per serving
	Servings int     `json:"servings"` // servings per package
}

// RakutenItem is one item from the Ichiba item search API (formatVersion=2)
type RakutenItem struct {
	ItemCode        string   `json:"itemCode"`
	ItemName        string   `json:"itemName"`
	ItemCaption     string   `json:"itemCaption"`
	ItemPrice       int      `json:"itemPrice"`
	ItemURL         string   `json:"itemUrl"`
	AffiliateURL    string   `json:"affiliateUrl,omitempty"`
	ShopCode        string   `json:"shopCode"`
	ShopName        string   `json:"shopName"`
	ReviewCount     int      `json:"reviewCount"`
	ReviewAverage   float64  `json:"reviewAverage"`
	MediumImageURLs []string `json:"mediumImageUrls"`
	SmallImageURLs  []string `json:"smallImageUrls"`
}

// RakutenSearchResponse is the Ichiba item search response envelope
type RakutenSearchResponse struct {
	Items     []RakutenItem `json:"Items"`
	Count     int           `json:"count"`
	Page      int           `json:"page"`
	PageCount int           `json:"pageCount"`
	Hits      int           `json:"hits"`
}
