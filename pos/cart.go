package pos

import "github.com/nanthakishoreraja/smsystems/models"

// Flat tax policy. Kept as a distinct field on Totals so a future rate only
// touches this constant.
const taxRate = 0.0

// pushHistory snapshots the pre-mutation cart and customer. Every mutator
// except Undo calls this first, so one Undo always steps back exactly one
// operation. Beyond maxHistory entries the oldest snapshot is dropped.
func (s *Session) pushHistory() {
	s.history = append(s.history, models.HistorySnapshot{
		Cart:     append([]models.CartLine{}, s.cart...),
		Customer: s.customer,
	})
	if len(s.history) > maxHistory {
		s.history = s.history[1:]
	}
}

// AddToCart increments the existing line for productID, or appends a new
// line with qty 1. The cart never holds two lines for one product.
func (s *Session) AddToCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushHistory()
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Qty++
			s.persistCart()
			return
		}
	}
	s.cart = append(s.cart, models.CartLine{ID: newID(), ProductID: productID, Qty: 1})
	s.persistCart()
}

// SetQty sets a line's quantity, clamped to a minimum of 1. Unknown line ids
// are a silent no-op.
func (s *Session) SetQty(lineID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushHistory()
	if qty < 1 {
		qty = 1
	}
	for i := range s.cart {
		if s.cart[i].ID == lineID {
			s.cart[i].Qty = qty
			s.persistCart()
			return
		}
	}
}

// RemoveLine drops a line from the cart. Unknown line ids are a silent no-op.
func (s *Session) RemoveLine(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushHistory()
	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
	s.persistCart()
}

// ClearCart empties the cart and blanks the customer fields.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
}

func (s *Session) clearCartLocked() {
	s.pushHistory()
	s.cart = []models.CartLine{}
	s.customer = models.Customer{}
	s.persistCart()
}

// Undo restores the cart and customer from the most recent snapshot. It does
// not push a snapshot itself, so there is no redo and an undo cannot be
// undone. No-op when the stack is empty.
func (s *Session) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return
	}
	snap := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.cart = snap.Cart
	s.customer = snap.Customer
	s.persistCart()
}

// ComputeTotals sums price × qty over cart lines whose product still exists;
// a line whose product was deleted contributes 0. Pure: no state changes,
// no snapshot.
func (s *Session) ComputeTotals() models.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

func (s *Session) totalsLocked() models.Totals {
	var subtotal float64
	for _, line := range s.cart {
		if p, ok := s.findProductLocked(line.ProductID); ok {
			subtotal += p.Price * float64(line.Qty)
		}
	}
	tax := subtotal * taxRate
	return models.Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// CartLineDetail is a cart line resolved against the catalog, ready to
// render.
type CartLineDetail struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"lineTotal"`
}

// CartDetail resolves the cart for display, skipping lines whose product no
// longer exists, and returns the current totals alongside.
func (s *Session) CartDetail() ([]CartLineDetail, models.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := []CartLineDetail{}
	for _, line := range s.cart {
		p, ok := s.findProductLocked(line.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, CartLineDetail{
			ID:        line.ID,
			ProductID: line.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       line.Qty,
			LineTotal: p.Price * float64(line.Qty),
		})
	}
	return lines, s.totalsLocked()
}
