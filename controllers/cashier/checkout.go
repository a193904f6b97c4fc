package cashierControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanthakishoreraja/smsystems/pos"
)

// POST /cashier/checkout — record a PAID order and clear the cart. Fails on
// an empty cart; nothing is written in that case.
func Checkout(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := s.Checkout()
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
