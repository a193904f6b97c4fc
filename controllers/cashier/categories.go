package cashierControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanthakishoreraja/smsystems/pos"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// abortWithError maps core failures onto HTTP statuses: validation failures
// are the user's to fix, anything else is ours.
func abortWithError(c *gin.Context, err error) {
	if pos.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
}

// GET /cashier/categories
func GetCategories(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Categories())
	}
}

// POST /cashier/categories
func CreateCategory(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, err := s.AddCategory(input.Name)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /cashier/categories/:id
func UpdateCategory(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.RenameCategory(c.Param("id"), input.Name); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
	}
}

// DELETE /cashier/categories/:id
func DeleteCategory(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteCategory(c.Param("id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
