package routes

import (
	"github.com/gin-gonic/gin"

	cashierControllers "github.com/nanthakishoreraja/smsystems/controllers/cashier"
	"github.com/nanthakishoreraja/smsystems/middleware"
	"github.com/nanthakishoreraja/smsystems/pos"
)

// SetupCashierRoutes registers all “/cashier/*” endpoints. Requires the
// staff JWT middleware.
func SetupCashierRoutes(r *gin.Engine, s *pos.Session) {
	cashier := r.Group("/cashier")
	cashier.Use(middleware.ValidateToken)
	{
		// ─────────── Product Management ───────────
		products := cashier.Group("/products")
		{
			products.GET("", cashierControllers.GetProducts(s))
			products.POST("", cashierControllers.UpsertProduct(s))
			products.DELETE("/:id", cashierControllers.DeleteProduct(s))
			products.GET("/export-excel", cashierControllers.ExportProductsToExcel(s))
		}

		// ─────────── Category Management ───────────
		categories := cashier.Group("/categories")
		{
			categories.GET("", cashierControllers.GetCategories(s))
			categories.POST("", cashierControllers.CreateCategory(s))
			categories.PUT("/:id", cashierControllers.UpdateCategory(s))
			categories.DELETE("/:id", cashierControllers.DeleteCategory(s))
		}

		// ─────────── Till: cart, billing, checkout ───────────
		cart := cashier.Group("/cart")
		{
			cart.GET("", cashierControllers.GetCart(s))
			cart.POST("", cashierControllers.AddCartItem(s))
			cart.POST("/undo", cashierControllers.UndoCart(s))
			cart.PUT("/customer", cashierControllers.SetCustomer(s))
			cart.PUT("/:line_id", cashierControllers.UpdateCartItem(s))
			cart.DELETE("/:line_id", cashierControllers.RemoveCartItem(s))
			cart.DELETE("", cashierControllers.ClearCart(s))
		}

		cashier.POST("/checkout", cashierControllers.Checkout(s))
		cashier.GET("/invoice", cashierControllers.GetInvoice(s))
		cashier.GET("/qr", cashierControllers.GetPaymentQR(s))

		// ─────────── Reporting ───────────
		reports := cashier.Group("/reports")
		{
			reports.GET("/sales", cashierControllers.GetSalesReport(s))
			reports.GET("/sales/export-excel", cashierControllers.ExportSalesToExcel(s))
		}

		cashier.POST("/reset-seed", cashierControllers.ResetSeed(s))
	}
}
