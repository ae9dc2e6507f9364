package services

import "github.com/aboayman-oss/Sakr-Store/models"

// DefaultDescriptionLimit is how many characters of a product
// description a card shows before truncating.
const DefaultDescriptionLimit = 50

// BuildProductCard derives the render model for one product: name
// fallback, truncated description, resolved image, and the discount
// presentation (discounted price shown, original struck through).
func BuildProductCard(p models.Product, maxDescription int) models.ProductCard {
	if maxDescription <= 0 {
		maxDescription = DefaultDescriptionLimit
	}

	name := p.Name
	if name == "" {
		name = "Untitled"
	}

	card := models.ProductCard{
		ID:          p.ID,
		Name:        name,
		Description: truncate(p.Description, maxDescription),
		Image:       p.ResolveImage(),
		Price:       p.Price,
		Discount:    p.Discount,
	}
	if p.Discount {
		card.DiscountedPrice = p.DiscountedPrice
		card.StruckPrice = p.Price
	}
	return card
}

// BuildProductCards projects a query result into card models, in the
// result's order.
func BuildProductCards(products []models.Product, maxDescription int) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, BuildProductCard(p, maxDescription))
	}
	return cards
}

// BuildCartView joins the cart against the catalog. Lines come out in
// catalog order so the rendering is deterministic. Entries whose
// product no longer exists are skipped silently and contribute nothing
// to the grand total; the badge counter still counts every persisted
// entry.
func BuildCartView(cart models.Cart, catalog []models.Product) models.CartView {
	view := models.CartView{
		Lines:     make([]models.CartLine, 0, len(cart)),
		ItemCount: cart.TotalItemCount(),
	}
	for _, p := range catalog {
		qty, ok := cart[p.ID]
		if !ok {
			continue
		}
		unit := p.EffectivePrice()
		line := models.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			UnitPrice: unit,
			LineTotal: unit * float64(qty),
		}
		view.Lines = append(view.Lines, line)
		view.GrandTotal += line.LineTotal
	}
	return view
}

// truncate cuts s to max runes, appending an ellipsis only when
// something was actually cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
