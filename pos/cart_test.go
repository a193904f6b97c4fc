package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanthakishoreraja/smsystems/models"
	"github.com/nanthakishoreraja/smsystems/store"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return Load(store.NewMemory())
}

// addProduct puts a product in the catalog and returns it.
func addProduct(t *testing.T, s *Session, name string, price float64) models.Product {
	t.Helper()
	p, err := s.UpsertProduct(models.Product{Name: name, CategoryID: "cat-test", Price: price})
	require.NoError(t, err)
	return p
}

func TestAddToCart_MergesLinesForSameProduct(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "Dome Camera 2MP", 1499)

	const calls = 5
	for i := 0; i < calls; i++ {
		s.AddToCart(p.ID)
	}

	cart := s.Cart()
	require.Len(t, cart, 1, "repeated adds must merge into one line")
	assert.Equal(t, p.ID, cart[0].ProductID)
	assert.Equal(t, calls, cart[0].Qty)
}

func TestAddToCart_DistinctProductsGetDistinctLines(t *testing.T) {
	s := newTestSession(t)
	p1 := addProduct(t, s, "Dome Camera 2MP", 1499)
	p2 := addProduct(t, s, "HDMI Cable 2m", 299)

	s.AddToCart(p1.ID)
	s.AddToCart(p2.ID)

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.NotEqual(t, cart[0].ID, cart[1].ID, "line ids are their own identity")
}

func TestSetQty_ClampsToMinimumOne(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "BNC Connector", 49)
	s.AddToCart(p.ID)
	lineID := s.Cart()[0].ID

	for _, qty := range []int{0, -1, -100} {
		s.SetQty(lineID, qty)
		assert.Equal(t, 1, s.Cart()[0].Qty, "qty %d must clamp to 1", qty)
	}

	s.SetQty(lineID, 7)
	assert.Equal(t, 7, s.Cart()[0].Qty)
}

func TestSetQty_UnknownLineIsNoOp(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "BNC Connector", 49)
	s.AddToCart(p.ID)
	before := s.Cart()

	s.SetQty("no-such-line", 42)

	assert.Equal(t, before, s.Cart())
}

func TestRemoveLine(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "DVR 4-Channel", 3999)
	s.AddToCart(p.ID)
	lineID := s.Cart()[0].ID

	s.RemoveLine(lineID)
	assert.Empty(t, s.Cart())

	// Unknown id: silent no-op.
	s.RemoveLine("no-such-line")
	assert.Empty(t, s.Cart())
}

func TestClearCart_ResetsCustomer(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "DVR 4-Channel", 3999)
	s.AddToCart(p.ID)
	s.SetCustomer(models.Customer{Name: "Ravi", Phone: "9486171929"})

	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.Equal(t, models.Customer{}, s.Customer())
}

func TestUndo_RestoresPreMutationState(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "Bullet Camera 5MP", 2499)
	s.AddToCart(p.ID)
	s.AddToCart(p.ID)
	s.SetCustomer(models.Customer{Name: "Ravi", Address: "Kottaram", Phone: "9486171929"})

	wantCart := s.Cart()
	wantCustomer := s.Customer()
	wantTotal := s.ComputeTotals().Total

	s.RemoveLine(wantCart[0].ID)
	require.Empty(t, s.Cart())

	s.Undo()

	assert.Equal(t, wantCart, s.Cart())
	assert.Equal(t, wantCustomer, s.Customer())
	assert.Equal(t, wantTotal, s.ComputeTotals().Total)
}

func TestUndo_EmptyHistoryIsNoOp(t *testing.T) {
	s := newTestSession(t)
	s.Undo()
	assert.Empty(t, s.Cart())
}

func TestUndo_IsOneDirectional(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "HDMI Cable 2m", 299)
	s.AddToCart(p.ID)

	s.Undo()
	require.Empty(t, s.Cart())

	// Undo pushed nothing, so another undo cannot bring the line back.
	s.Undo()
	assert.Empty(t, s.Cart())
}

func TestHistory_EveryMutatorPushesExactlyOneSnapshot(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "HDMI Cable 2m", 299)

	s.AddToCart(p.ID)
	assert.Len(t, s.history, 1)

	lineID := s.Cart()[0].ID
	s.SetQty(lineID, 3)
	assert.Len(t, s.history, 2)

	s.SetQty("no-such-line", 3) // no-op mutations still snapshot
	assert.Len(t, s.history, 3)

	s.RemoveLine(lineID)
	assert.Len(t, s.history, 4)

	s.ClearCart()
	assert.Len(t, s.history, 5)

	s.Undo()
	assert.Len(t, s.history, 4, "undo must pop, never push")
}

func TestHistory_CappedAtFiftyWithFIFOEviction(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "BNC Connector", 49)

	s.AddToCart(p.ID)
	lineID := s.Cart()[0].ID

	// 50 further mutations: 51 snapshots total, so the snapshot of the
	// first AddToCart (the empty cart) must fall off the far end.
	for i := 0; i < 50; i++ {
		s.SetQty(lineID, i+2)
	}
	assert.Len(t, s.history, maxHistory)

	for i := 0; i < maxHistory; i++ {
		s.Undo()
	}
	assert.Len(t, s.history, 0)

	// The empty-cart state from before the first add is no longer
	// reachable: the oldest surviving snapshot already has the line.
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Qty)
}

func TestComputeTotals_Scenario(t *testing.T) {
	s := newTestSession(t)
	p := addProduct(t, s, "P1", 100.00)

	s.AddToCart(p.ID)
	s.AddToCart(p.ID)

	cart := s.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, 2, cart[0].Qty)

	totals := s.ComputeTotals()
	assert.Equal(t, 200.00, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 200.00, totals.Total)
}

func TestComputeTotals_OrderInvariantAndPure(t *testing.T) {
	s := newTestSession(t)
	p1 := addProduct(t, s, "A", 10)
	p2 := addProduct(t, s, "B", 20)
	p3 := addProduct(t, s, "C", 30)

	s.AddToCart(p1.ID)
	s.AddToCart(p2.ID)
	s.AddToCart(p3.ID)
	want := s.ComputeTotals()

	// Reorder the lines behind the engine's back; the sum cannot change.
	s.cart[0], s.cart[2] = s.cart[2], s.cart[0]
	assert.Equal(t, want, s.ComputeTotals())

	// Pure: no snapshots, no cart changes.
	assert.Len(t, s.history, 3)
	assert.Len(t, s.Cart(), 3)
}

func TestComputeTotals_SkipsDeletedProducts(t *testing.T) {
	s := newTestSession(t)
	p1 := addProduct(t, s, "Keep", 100)
	p2 := addProduct(t, s, "Gone", 999)

	s.AddToCart(p1.ID)
	s.AddToCart(p2.ID)
	s.DeleteProduct(p2.ID)

	totals := s.ComputeTotals()
	assert.Equal(t, 100.00, totals.Total, "orphaned line contributes 0")
	assert.Len(t, s.Cart(), 2, "the line itself stays in the cart")
}

func TestCartDetail_SkipsOrphanedLines(t *testing.T) {
	s := newTestSession(t)
	p1 := addProduct(t, s, "Keep", 100)
	p2 := addProduct(t, s, "Gone", 999)

	s.AddToCart(p1.ID)
	s.AddToCart(p2.ID)
	s.SetQty(s.Cart()[0].ID, 3)
	s.DeleteProduct(p2.ID)

	lines, totals := s.CartDetail()
	require.Len(t, lines, 1)
	assert.Equal(t, "Keep", lines[0].Name)
	assert.Equal(t, 300.00, lines[0].LineTotal)
	assert.Equal(t, 300.00, totals.Total)
}

func TestCart_PersistsAcrossSessions(t *testing.T) {
	st := store.NewMemory()
	s := Load(st)
	p := addProduct(t, s, "Dome Camera 2MP", 1499)
	s.AddToCart(p.ID)
	s.AddToCart(p.ID)

	reloaded := Load(st)
	cart := reloaded.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Qty)
	assert.Equal(t, 2998.00, reloaded.ComputeTotals().Total)
}
