package rakuten

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/proteinnavi/backend/internal/domain"
)

var (
	imageSizeParamRegex = regexp.MustCompile(`\?_ex=\d+x\d+`)
	htmlTagRegex        = regexp.MustCompile(`<[^>]*>`)
)

const (
	// Rakuten thumbnails default to 128x128; request a larger rendition for
	// the listing grid.
	imageSizeParam = "?_ex=400x400"

	descriptionMaxRunes = 200

	placeholderImage = "https://placehold.co/400x400?text=プロテイン"
)

// Classification holds the classifier-derived attributes for one listing.
// The mapper itself stays free of text heuristics; callers classify first.
type Classification struct {
	Brand     string
	Types     []string
	Category  string
	Nutrition domain.Nutrition
}

// MapToListingProduct converts a Rakuten item into our domain listing model
func MapToListingProduct(item *domain.RakutenItem, cls Classification) domain.ListingProduct {
	price := item.ItemPrice

	pricePerServing := 0
	if cls.Nutrition.Servings > 0 {
		pricePerServing = (price + cls.Nutrition.Servings/2) / cls.Nutrition.Servings
	}

	return domain.ListingProduct{
		ID:              fmt.Sprintf("rakuten_%s_%s", item.ShopCode, item.ItemCode),
		Name:            item.ItemName,
		Brand:           cls.Brand,
		Description:     CleanDescription(item),
		Image:           ImageURL(item),
		Category:        cls.Category,
		Type:            cls.Types,
		Rating:          item.ReviewAverage,
		Reviews:         item.ReviewCount,
		Tags:            []string{"楽天", "プロテイン"},
		Price:           price,
		PricePerServing: pricePerServing,
		Nutrition:       cls.Nutrition,
		Shops: []domain.StoreLink{{
			Name:  "Rakuten",
			Price: price,
			URL:   purchaseURL(item),
		}},
	}
}

// ImageURL picks the best available image and upgrades its size parameter
func ImageURL(item *domain.RakutenItem) string {
	var url string
	switch {
	case len(item.MediumImageURLs) > 0:
		url = item.MediumImageURLs[0]
	case len(item.SmallImageURLs) > 0:
		url = item.SmallImageURLs[0]
	default:
		return placeholderImage
	}
	return imageSizeParamRegex.ReplaceAllString(url, imageSizeParam)
}

// CleanDescription strips HTML from the item caption and truncates it for
// listing cards. Falls back to the item name when the caption is empty.
func CleanDescription(item *domain.RakutenItem) string {
	desc := htmlTagRegex.ReplaceAllString(item.ItemCaption, "")
	desc = strings.TrimSpace(desc)
	if desc == "" {
		desc = item.ItemName
	}

	runes := []rune(desc)
	if len(runes) > descriptionMaxRunes {
		return string(runes[:descriptionMaxRunes]) + "..."
	}
	return desc
}

// purchaseURL prefers the affiliate link when one is present
func purchaseURL(item *domain.RakutenItem) string {
	if item.AffiliateURL != "" {
		return item.AffiliateURL
	}
	if item.ItemURL != "" {
		return item.ItemURL
	}
	return fmt.Sprintf("https://item.rakuten.co.jp/%s/%s/", item.ShopCode, item.ItemCode)
}
