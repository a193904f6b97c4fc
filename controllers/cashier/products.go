package cashierControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/nanthakishoreraja/smsystems/models"
	"github.com/nanthakishoreraja/smsystems/pos"
)

type ProductInput struct {
	ID         string  `json:"id"`
	Name       string  `json:"name" binding:"required"`
	CategoryID string  `json:"category_id"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

// GET /cashier/products?q=&category_id=
func GetProducts(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := s.SearchProducts(c.Query("q"), c.Query("category_id"))
		c.JSON(http.StatusOK, products)
	}
}

// POST /cashier/products — creates, or replaces wholesale when id matches.
func UpsertProduct(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := s.UpsertProduct(models.Product{
			ID:         input.ID,
			Name:       input.Name,
			CategoryID: input.CategoryID,
			Price:      input.Price,
			Image:      input.Image,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /cashier/products/:id
func DeleteProduct(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.DeleteProduct(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// GET /cashier/products/export-excel
func ExportProductsToExcel(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := map[string]string{}
		for _, cat := range s.Categories() {
			categories[cat.ID] = cat.Name
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Category", "Price", "Image"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range s.Products() {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			catName := categories[p.CategoryID]
			if catName == "" {
				catName = "-"
			}
			row.AddCell().SetValue(catName)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Image)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
