package cashierControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanthakishoreraja/smsystems/pos"
)

// POST /cashier/reset-seed — wipe everything and reload the demo catalog.
func ResetSeed(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.ResetSeed()
		c.JSON(http.StatusOK, gin.H{"message": "Demo data restored"})
	}
}
