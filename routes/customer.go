package routes

import (
	"github.com/gin-gonic/gin"

	customerControllers "github.com/nanthakishoreraja/smsystems/controllers/customer"
	"github.com/nanthakishoreraja/smsystems/pos"
)

// SetupCustomerRoutes registers the anonymous “/catalog/*” endpoints. No
// mutating route lives here.
func SetupCustomerRoutes(r *gin.Engine, s *pos.Session) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/categories", customerControllers.GetCategories(s))
		catalog.GET("/products", customerControllers.GetProducts(s))
	}
}
