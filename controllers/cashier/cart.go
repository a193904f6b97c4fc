package cashierControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanthakishoreraja/smsystems/models"
	"github.com/nanthakishoreraja/smsystems/pos"
)

type AddCartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type SetQtyInput struct {
	Qty int `json:"qty"`
}

type CustomerInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// GET /cashier/cart — resolved lines plus totals. Lines whose product was
// deleted are skipped, never an error.
func GetCart(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, totals := s.CartDetail()
		c.JSON(http.StatusOK, gin.H{
			"lines":    lines,
			"totals":   totals,
			"customer": s.Customer(),
		})
	}
}

// POST /cashier/cart — add one of a product; same product again bumps the
// existing line's quantity.
func AddCartItem(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s.AddToCart(input.ProductID)
		lines, totals := s.CartDetail()
		c.JSON(http.StatusOK, gin.H{"lines": lines, "totals": totals})
	}
}

// PUT /cashier/cart/:line_id — set quantity; anything below 1 becomes 1.
func UpdateCartItem(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQtyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s.SetQty(c.Param("line_id"), input.Qty)
		lines, totals := s.CartDetail()
		c.JSON(http.StatusOK, gin.H{"lines": lines, "totals": totals})
	}
}

// DELETE /cashier/cart/:line_id
func RemoveCartItem(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.RemoveLine(c.Param("line_id"))
		lines, totals := s.CartDetail()
		c.JSON(http.StatusOK, gin.H{"lines": lines, "totals": totals})
	}
}

// DELETE /cashier/cart — empty the cart and the billing fields.
func ClearCart(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// POST /cashier/cart/undo — step back one mutation.
func UndoCart(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Undo()
		lines, totals := s.CartDetail()
		c.JSON(http.StatusOK, gin.H{
			"lines":    lines,
			"totals":   totals,
			"customer": s.Customer(),
		})
	}
}

// PUT /cashier/cart/customer — the billing form writes through here.
func SetCustomer(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s.SetCustomer(models.Customer{
			Name:    input.Name,
			Address: input.Address,
			Phone:   input.Phone,
		})
		c.JSON(http.StatusOK, s.Customer())
	}
}
