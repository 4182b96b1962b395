package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/proteinnavi/backend/internal/catalog"
	"github.com/proteinnavi/backend/internal/domain"
	"github.com/proteinnavi/backend/internal/infrastructure/rakuten"
)

const featuredCacheKey = "products:featured"

// defaultKeywords are the brand searches used to build the featured listing
var defaultKeywords = []string{"ザバス", "ビーレジェンド", "マイプロテイン"}

// ProductServiceConfig holds configuration for the product service
type ProductServiceConfig struct {
	CacheTTL time.Duration
	Keywords []string
}

// ProductService builds the marketplace-backed product listing.
// Flow: check cache -> search Rakuten per keyword -> classify/filter -> cache.
// When both the cache and the API come up empty it falls back to a static
// product list so the listing page is never blank.
type ProductService struct {
	cache      domain.CacheRepository
	client     domain.RakutenClient
	classifier *Classifier
	cacheTTL   time.Duration
	keywords   []string
}

// NewProductService creates a product service with dependencies
func NewProductService(
	cache domain.CacheRepository,
	client domain.RakutenClient,
	config ProductServiceConfig,
) *ProductService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 168 * time.Hour // 1 week
	}

	keywords := config.Keywords
	if len(keywords) == 0 {
		keywords = defaultKeywords
	}

	return &ProductService{
		cache:      cache,
		client:     client,
		classifier: NewClassifier(),
		cacheTTL:   cacheTTL,
		keywords:   keywords,
	}
}

// ListFeatured returns the featured product listing. The second return value
// reports whether the listing came from cache.
func (s *ProductService) ListFeatured(ctx context.Context) ([]domain.ListingProduct, bool, error) {
	if cached, ok := s.getCachedListing(ctx); ok {
		return cached, true, nil
	}

	var all []domain.ListingProduct
	seen := make(map[string]bool)

	for _, keyword := range s.keywords {
		products, err := s.Search(ctx, keyword, 1)
		if err != nil {
			// A single failed keyword should not sink the whole listing
			if !errors.Is(err, domain.ErrProductNotFound) {
				log.Printf("[PRODUCTS] search failed for %q: %v", keyword, err)
			}
			continue
		}

		for _, p := range products {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			all = append(all, p)
		}
	}

	if len(all) == 0 {
		log.Printf("[PRODUCTS] no products from Rakuten, serving fallback list")
		return catalog.Fallback(), false, nil
	}

	if err := s.cache.Set(ctx, featuredCacheKey, all, s.cacheTTL); err != nil {
		log.Printf("[PRODUCTS] failed to cache listing: %v", err)
	}

	return all, false, nil
}

// Search queries Rakuten for a keyword and returns the classified protein
// products from that page. Non-protein listings are filtered out.
func (s *ProductService) Search(ctx context.Context, keyword string, page int) ([]domain.ListingProduct, error) {
	if keyword == "" {
		return nil, domain.ErrInvalidRequest
	}

	resp, err := s.client.SearchItems(ctx, keyword, page)
	if err != nil {
		return nil, err
	}

	products := make([]domain.ListingProduct, 0, len(resp.Items))
	for i := range resp.Items {
		item := &resp.Items[i]

		description := rakuten.CleanDescription(item)
		if !s.classifier.IsProteinProduct(item.ItemName, description) {
			continue
		}

		products = append(products, rakuten.MapToListingProduct(item, rakuten.Classification{
			Brand:     s.classifier.ExtractBrand(item.ItemName),
			Types:     s.classifier.ExtractTypes(item.ItemName),
			Category:  s.classifier.ExtractCategory(item.ItemName),
			Nutrition: s.classifier.ExtractNutrition(item.ItemName, description),
		}))
	}

	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}
	return products, nil
}

// getCachedListing loads the featured listing out of the cache. Cached values
// come back as generic JSON after the cache's round-trip, so they are
// re-marshaled into the typed slice.
func (s *ProductService) getCachedListing(ctx context.Context) ([]domain.ListingProduct, bool) {
	value, err := s.cache.Get(ctx, featuredCacheKey)
	if err != nil {
		return nil, false
	}

	if products, ok := value.([]domain.ListingProduct); ok {
		return products, len(products) > 0
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}

	var products []domain.ListingProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Printf("[PRODUCTS] corrupt cache entry, refetching: %v", err)
		return nil, false
	}

	return products, len(products) > 0
}
