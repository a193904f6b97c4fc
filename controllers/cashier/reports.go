package cashierControllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/nanthakishoreraja/smsystems/pos"
)

// GET /cashier/reports/sales?month=yyyy-MM — matching orders plus their
// summed total. No month means the whole ledger.
func GetSalesReport(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.SalesInMonth(c.Query("month")))
	}
}

// GET /cashier/reports/sales/export-excel?month=yyyy-MM
func ExportSalesToExcel(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.Query("month")
		report := s.SalesInMonth(month)

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sales")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"Date", "Order", "Customer", "Items", "Status", "Total"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range report.Orders {
			date := o.CreatedAt
			if t, err := time.Parse(time.RFC3339, o.CreatedAt); err == nil {
				date = t.Format("2006-01-02")
			}

			var items []string
			for _, it := range o.Items {
				items = append(items, it.Name+" ×"+strconv.Itoa(it.Qty))
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(date)
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Customer.Name)
			row.AddCell().SetValue(strings.Join(items, ", "))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.Totals.Total)
		}

		totalRow := sheet.AddRow()
		totalRow.AddCell().SetValue("Total")
		for i := 0; i < 4; i++ {
			totalRow.AddCell()
		}
		totalRow.AddCell().SetValue(report.Total)

		filename := "sales.xlsx"
		if month != "" {
			filename = "sales-" + month + ".xlsx"
		}
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
