package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/proteinnavi/backend/internal/catalog"
	"github.com/proteinnavi/backend/internal/domain"
)

// DiagnosisService is the slice of the diagnosis usecase the handlers need
type DiagnosisService interface {
	Diagnose(answers *domain.DiagnosisAnswers) []domain.MatchResult
}

// ProductService is the slice of the product usecase the handlers need
type ProductService interface {
	ListFeatured(ctx context.Context) ([]domain.ListingProduct, bool, error)
	Search(ctx context.Context, keyword string, page int) ([]domain.ListingProduct, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	diagnosis DiagnosisService
	products  ProductService
}

// NewHandler creates a new HTTP handler
func NewHandler(diagnosis DiagnosisService, products ProductService) *Handler {
	return &Handler{
		diagnosis: diagnosis,
		products:  products,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "proteinnavi-backend",
		"version": "1.0.0",
	})
}

// GetQuestions returns the questionnaire definition in presentation order
func (h *Handler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": catalog.Questions(),
	})
}

// Diagnose scores the catalog against the submitted answers and returns the
// top recommendations.
func (h *Handler) Diagnose(c *gin.Context) {
	var answers domain.DiagnosisAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	if !answers.Complete() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrIncompleteAnswers.Error(),
		})
		return
	}

	results := h.diagnosis.Diagnose(&answers)

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// ListProducts serves the marketplace product listing. Without a keyword it
// returns the cached featured listing; with one it searches Rakuten directly.
func (h *Handler) ListProducts(c *gin.Context) {
	keyword := c.Query("keyword")

	if keyword == "" {
		products, cached, err := h.products.ListFeatured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "failed to load products",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"totalCount": len(products),
			"cached":     cached,
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	products, err := h.products.Search(c.Request.Context(), keyword, page)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"products":   []domain.ListingProduct{},
				"totalCount": 0,
				"cached":     false,
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "product search failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"totalCount": len(products),
		"cached":     false,
	})
}
