package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nanthakishoreraja/smsystems/auth"
	"github.com/nanthakishoreraja/smsystems/pos"
)

// SetupRoutes is the single entry-point that wires up the public and cashier
// route groups.
func SetupRoutes(r *gin.Engine, s *pos.Session) {
	// 1️⃣ Public auth route (no middleware)
	r.POST("/auth/login", auth.LoginHandler)

	// 2️⃣ Customer catalog browser (public, read-only)
	SetupCustomerRoutes(r, s)

	// 3️⃣ Cashier routes (JWT-protected)
	SetupCashierRoutes(r, s)
}
