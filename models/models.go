package models

// JSON tags match the shop's existing stored data, so a dump taken from the
// old cashier screen loads without conversion.

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID string  `json:"categoryId"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
}

// CartLine is one entry in the draft order. Its ID identifies the line
// itself, not the product it points at.
type CartLine struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Customer holds the billing fields typed in at the till. Transient: it is
// never stored on its own, only embedded into orders and undo snapshots.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type OrderStatus string

const (
	OrderStatusPaid  OrderStatus = "PAID"  // payment recorded at the till
	OrderStatusDraft OrderStatus = "DRAFT" // print preview, not yet paid
)

// OrderItem freezes the product's name and price at order time, so later
// catalog edits never rewrite past invoices.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Order is immutable once appended to the sales ledger.
type Order struct {
	ID        string      `json:"id"`
	CreatedAt string      `json:"createdAt"` // RFC 3339
	Items     []OrderItem `json:"items"`
	Totals    Totals      `json:"totals"`
	Status    OrderStatus `json:"status"`
	Customer  Customer    `json:"customer"`
}

// HistorySnapshot is a deep copy of the cart and customer fields taken
// before a mutation, kept for undo.
type HistorySnapshot struct {
	Cart     []CartLine `json:"cart"`
	Customer Customer   `json:"customer"`
}
