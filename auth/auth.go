package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is returned when the username/password pair does not
// match the configured staff login.
var ErrInvalidCredentials = errors.New("invalid username or password")

// sessionTTL is how long a cashier stays signed in. A shift, roughly.
const sessionTTL = 12 * time.Hour

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the staff credentials from the environment and issues a
// signed session token. There is exactly one cashier login for the shop.
// An unset credential pair locks the till rather than opening it.
func Login(username, password string) (string, error) {
	staffUser := os.Getenv("STAFF_USER")
	staffPass := os.Getenv("STAFF_PASS")
	if staffUser == "" || staffPass == "" {
		return "", ErrInvalidCredentials
	}
	if username != staffUser || password != staffPass {
		return "", ErrInvalidCredentials
	}
	return issueStaffToken(username)
}

func issueStaffToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": "staff",
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// POST /auth/login
func LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	token, err := Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": time.Now().Add(sessionTTL),
	})
}
