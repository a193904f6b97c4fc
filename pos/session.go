package pos

import (
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nanthakishoreraja/smsystems/models"
	"github.com/nanthakishoreraja/smsystems/store"
)

// maxHistory bounds the undo stack; the oldest snapshot is evicted first.
const maxHistory = 50

// Session owns all till state: catalog, draft cart, undo history, the
// customer fields being typed in, and the sales ledger behind it. Construct
// one per process with Load and hand it to every handler — there is no
// package-level state, so tests can run as many sessions as they like.
//
// Handlers run on concurrent requests, so every operation takes the mutex.
// Two tills pointed at the same database still race with last-write-wins;
// a single-location shop accepts that.
type Session struct {
	mu sync.Mutex

	store store.Store

	products   []models.Product
	categories []models.Category
	cart       []models.CartLine
	customer   models.Customer
	history    []models.HistorySnapshot
}

// Load builds a session from whatever the store currently holds. Missing or
// unreadable values fall back to empty lists.
func Load(st store.Store) *Session {
	s := &Session{
		store:      st,
		products:   []models.Product{},
		categories: []models.Category{},
		cart:       []models.CartLine{},
	}
	st.Read(store.KeyProducts, &s.products)
	st.Read(store.KeyCategories, &s.categories)
	st.Read(store.KeyCart, &s.cart)
	return s
}

// Products returns a copy of the product list.
func (s *Session) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product{}, s.products...)
}

// Categories returns a copy of the category list.
func (s *Session) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Category{}, s.categories...)
}

// Cart returns a copy of the current cart lines, orphans included.
func (s *Session) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine{}, s.cart...)
}

// Customer returns the billing fields currently typed in at the till.
func (s *Session) Customer() models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// SetCustomer replaces the billing fields, trimming whitespace. The form
// layer calls this as the cashier types; it is not undo-tracked on its own,
// but every snapshot captures the fields as they stand.
func (s *Session) SetCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = models.Customer{
		Name:    strings.TrimSpace(c.Name),
		Address: strings.TrimSpace(c.Address),
		Phone:   strings.TrimSpace(c.Phone),
	}
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// writeKey persists one key, degrading to a logged diagnostic on failure so
// a storage hiccup never takes the till down mid-sale.
func (s *Session) writeKey(key string, value any) {
	if err := s.store.Write(key, value); err != nil {
		log.Printf("❌ Failed to persist %s: %v", key, err)
	}
}

func (s *Session) persistProducts() {
	s.writeKey(store.KeyProducts, s.products)
}

func (s *Session) persistCategories() {
	s.writeKey(store.KeyCategories, s.categories)
}

func (s *Session) persistCart() {
	s.writeKey(store.KeyCart, s.cart)
}
