package models

// ProductCard is the render-ready model for one catalog entry.
type ProductCard struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	Price           float64 `json:"price"`
	Discount        bool    `json:"discount"`
	DiscountedPrice float64 `json:"discounted_price,omitempty"`
	// StruckPrice is set when the discount applies: the original price
	// the UI renders struck through next to the discounted one.
	StruckPrice float64 `json:"struck_price,omitempty"`
}

// CartLine is one rendered cart entry. Unit price is the effective
// (discounted when applicable) price.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// CartView is the full rendered cart: lines in catalog order, the
// grand total over resolvable lines, and the badge counter (which
// counts every persisted entry, orphaned or not).
type CartView struct {
	Lines      []CartLine `json:"lines"`
	GrandTotal float64    `json:"grand_total"`
	ItemCount  int        `json:"item_count"`
}

// CheckoutResult is what the checkout endpoint hands back: the summary
// text and the messaging deep link the client navigates to. Delivery
// is the channel's problem, not ours.
type CheckoutResult struct {
	Summary    string `json:"summary"`
	HandoffURL string `json:"handoff_url"`
}
