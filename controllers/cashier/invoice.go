package cashierControllers

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nanthakishoreraja/smsystems/models"
	"github.com/nanthakishoreraja/smsystems/pos"
)

func formatMoney(v float64) string { return fmt.Sprintf("%.2f", v) }

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": formatMoney,
}).Parse(`<!doctype html><html><head><title>Invoice {{.Order.ID}}</title>
<style>body{font-family:Segoe UI,Arial;margin:24px} table{border-collapse:collapse;width:100%} th,td{border:1px solid #ccc;padding:8px;text-align:left} tfoot td{text-align:right;font-weight:700}</style>
</head><body>
<h2>{{.ShopName}}</h2>
<div>Contact: {{.ShopContact}}</div>
<div style="margin-top:8px;margin-bottom:8px;"><strong>Invoice To:</strong> {{.Order.Customer.Name}}</div>
{{range .Order.AddressLines}}<div>{{.}}</div>
{{end}}<div>{{.Order.Customer.Phone}}</div>
<div>Invoice: {{.Order.ID}}</div>
<div>Date: {{.Date}}</div>
<hr>
<table><thead><tr><th>Item</th><th>Qty</th><th>Rate</th><th>Amount</th></tr></thead>
<tbody>{{range .Order.Items}}<tr><td>{{.Name}}</td><td>{{.Qty}}</td><td>₹ {{money .Price}}</td><td>₹ {{money .Amount}}</td></tr>{{end}}</tbody>
<tfoot><tr><td colspan="3">Subtotal</td><td>₹ {{money .Order.Totals.Subtotal}}</td></tr>
<tr><td colspan="3">Tax</td><td>₹ {{money .Order.Totals.Tax}}</td></tr>
<tr><td colspan="3">Total</td><td>₹ {{money .Order.Totals.Total}}</td></tr></tfoot></table>
<p>Thank you for your purchase!</p>
</body></html>`))

type invoiceItem struct {
	Name   string
	Qty    int
	Price  float64
	Amount float64
}

type invoiceOrder struct {
	ID           string
	Customer     models.Customer
	AddressLines []string
	Items        []invoiceItem
	Totals       models.Totals
}

// GET /cashier/invoice — an HTML invoice of the cart as it stands, built
// from a DRAFT materialization. Nothing is recorded; the browser's print
// dialog does the rest.
func GetInvoice(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		order := s.MaterializeOrder(models.OrderStatusDraft)

		view := invoiceOrder{
			ID:       order.ID,
			Customer: order.Customer,
			Totals:   order.Totals,
			// Addresses are typed with line breaks; keep them.
			AddressLines: strings.Split(strings.ReplaceAll(order.Customer.Address, "\r\n", "\n"), "\n"),
		}
		for _, it := range order.Items {
			view.Items = append(view.Items, invoiceItem{
				Name:   it.Name,
				Qty:    it.Qty,
				Price:  it.Price,
				Amount: it.Price * float64(it.Qty),
			})
		}

		date := order.CreatedAt
		if t, err := time.Parse(time.RFC3339, order.CreatedAt); err == nil {
			date = t.Local().Format("02 Jan 2006 15:04")
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		err := invoiceTmpl.Execute(c.Writer, gin.H{
			"Order":       view,
			"Date":        date,
			"ShopName":    os.Getenv("SHOP_NAME"),
			"ShopContact": os.Getenv("SHOP_CONTACT"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		}
	}
}
