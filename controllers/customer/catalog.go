package customerControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanthakishoreraja/smsystems/models"
	"github.com/nanthakishoreraja/smsystems/pos"
)

// The customer surface is read-only: browse and search, nothing else.

type CategoryWithCount struct {
	models.Category
	ProductCount int `json:"productCount"`
}

// GET /catalog/categories — categories with product counts for the sidebar
// badges.
func GetCategories(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts := s.ProductCountByCategory()

		out := []CategoryWithCount{}
		for _, cat := range s.Categories() {
			out = append(out, CategoryWithCount{Category: cat, ProductCount: counts[cat.ID]})
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /catalog/products?q=&category_id=
func GetProducts(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.SearchProducts(c.Query("q"), c.Query("category_id")))
	}
}
