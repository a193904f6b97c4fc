package pos

import (
	"strings"
	"time"

	"github.com/nanthakishoreraja/smsystems/models"
	"github.com/nanthakishoreraja/smsystems/store"
)

// MonthlySales is the report payload: the matching orders plus their summed
// total.
type MonthlySales struct {
	Orders []models.Order `json:"orders"`
	Total  float64        `json:"total"`
}

// MaterializeOrder derives an order from the cart as it stands: line items
// at current catalog name and price, current totals, current customer
// fields, a fresh id and timestamp. Pure — the cart is untouched. A line
// whose product was deleted still appears, with an empty name and price 0.
func (s *Session) MaterializeOrder(status models.OrderStatus) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildOrderLocked(status)
}

func (s *Session) buildOrderLocked(status models.OrderStatus) models.Order {
	items := make([]models.OrderItem, 0, len(s.cart))
	for _, line := range s.cart {
		var name string
		var price float64
		if p, ok := s.findProductLocked(line.ProductID); ok {
			name, price = p.Name, p.Price
		}
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      name,
			Price:     price,
			Qty:       line.Qty,
		})
	}
	return models.Order{
		ID:        "ORD-" + strings.ToUpper(newID()),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Items:     items,
		Totals:    s.totalsLocked(),
		Status:    status,
		Customer:  s.customer,
	}
}

// RecordSale appends an order to the ledger. The ledger is append-only;
// nothing ever updates or deletes an entry.
func (s *Session) RecordSale(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendSaleLocked(order)
}

func (s *Session) appendSaleLocked(order models.Order) {
	sales := []models.Order{}
	s.store.Read(store.KeySales, &sales)
	sales = append(sales, order)
	s.writeKey(store.KeySales, sales)
}

// Checkout turns the cart into a PAID ledger entry and then clears the cart.
// The clear goes through the normal history push, so Undo afterwards brings
// the cart lines back — the ledger entry stays. Checkout itself is not
// undoable.
func (s *Session) Checkout() (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return models.Order{}, &ValidationError{"cart is empty"}
	}
	order := s.buildOrderLocked(models.OrderStatusPaid)
	s.appendSaleLocked(order)
	s.clearCartLocked()
	return order, nil
}

// SalesInMonth returns ledger entries whose timestamp falls in the given
// "yyyy-MM" month, with their summed total. An empty month matches
// everything.
func (s *Session) SalesInMonth(month string) MonthlySales {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales := []models.Order{}
	s.store.Read(store.KeySales, &sales)

	report := MonthlySales{Orders: []models.Order{}}
	for _, o := range sales {
		if month != "" && !strings.HasPrefix(o.CreatedAt, month) {
			continue
		}
		report.Orders = append(report.Orders, o)
		report.Total += o.Totals.Total
	}
	return report
}
