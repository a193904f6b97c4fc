package cashierControllers

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/nanthakishoreraja/smsystems/pos"
)

const qrImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// GET /cashier/qr?note=&target= — payment payload for the QR modal. The
// image URL points at an external generator; nothing here goes on the wire.
// A non-empty target overrides the UPI URI wholesale (arbitrary QR content).
func GetPaymentQR(s *pos.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		totals := s.ComputeTotals()

		note := c.Query("note")
		if note == "" {
			note = "Invoice"
		}

		data := c.Query("target")
		if data == "" {
			values := url.Values{}
			values.Set("pa", os.Getenv("UPI_VPA"))
			values.Set("pn", os.Getenv("SHOP_NAME"))
			values.Set("am", fmt.Sprintf("%.2f", totals.Total))
			values.Set("tn", note)
			data = "upi://pay?" + values.Encode()
		}

		c.JSON(http.StatusOK, gin.H{
			"amount":    totals.Total,
			"data":      data,
			"image_url": qrImageEndpoint + "?size=240x240&data=" + url.QueryEscape(data),
		})
	}
}
