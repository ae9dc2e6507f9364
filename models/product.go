package models

import (
	"encoding/json"
	"strings"
)

// ProductImages is the structured media form: a primary image plus an
// ordered gallery. Older catalog entries carry a single "image" string
// instead; decoding accepts both.
type ProductImages struct {
	Primary string   `json:"primary"`
	Gallery []string `json:"gallery,omitempty"`
}

// Product is one catalog entry. The catalog is read-only for the
// session; products are never mutated after decode.
type Product struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	Category        string         `json:"category,omitempty"`
	Price           float64        `json:"price"`
	Discount        bool           `json:"discount,omitempty"`
	DiscountedPrice float64        `json:"discountedPrice,omitempty"`
	Images          *ProductImages `json:"images,omitempty"`
	LegacyImage     string         `json:"image,omitempty"`
}

// UnmarshalJSON tolerates the loose catalog encoding: ids may be
// numbers or strings, prices may be missing or non-numeric (both
// decode to 0), and media may be the structured object or the legacy
// single string.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              json.RawMessage `json:"id"`
		Name            string          `json:"name"`
		Description     string          `json:"description"`
		Category        string          `json:"category"`
		Price           json.RawMessage `json:"price"`
		Discount        bool            `json:"discount"`
		DiscountedPrice json.RawMessage `json:"discountedPrice"`
		Images          *ProductImages  `json:"images"`
		Image           string          `json:"image"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID, _ = CanonicalID(raw.ID)
	p.Name = raw.Name
	p.Description = raw.Description
	p.Category = raw.Category
	p.Price = coercePrice(raw.Price)
	p.Discount = raw.Discount
	p.DiscountedPrice = coercePrice(raw.DiscountedPrice)
	p.Images = raw.Images
	p.LegacyImage = raw.Image
	return nil
}

// EffectivePrice is the price the customer actually pays: the
// discounted price when the discount flag is set, the regular price
// otherwise. Never negative.
func (p Product) EffectivePrice() float64 {
	price := p.Price
	if p.Discount {
		price = p.DiscountedPrice
	}
	if price < 0 {
		return 0
	}
	return price
}

// ResolveImage walks the media fallback chain:
// images.primary -> first gallery entry -> legacy image -> "".
func (p Product) ResolveImage() string {
	if p.Images != nil {
		if p.Images.Primary != "" {
			return p.Images.Primary
		}
		if len(p.Images.Gallery) > 0 {
			return p.Images.Gallery[0]
		}
	}
	return p.LegacyImage
}

// CanonicalID converts a raw JSON id (string or number) to its
// canonical string form, so id 1 and id "1" address the same product.
func CanonicalID(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

// coercePrice reads a price field that may be absent, a number, or a
// numeric string. Anything unusable, including negatives, becomes 0.
func coercePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		var n json.Number
		if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &n); err != nil {
			return 0
		}
		f, err = n.Float64()
		if err != nil {
			return 0
		}
	}
	if f < 0 {
		return 0
	}
	return f
}
