package models

import "encoding/json"

// Cart maps canonical product ids to positive quantities. Entries
// never hold a quantity <= 0; they are deleted instead.
type Cart map[string]int

// DecodeCart normalizes the persisted cart payload. Two encodings are
// accepted: the legacy id-repetition array (each occurrence adds one)
// and the current id -> quantity map. Any parse failure or unexpected
// shape yields an empty cart; decoding never fails loudly.
func DecodeCart(raw []byte) Cart {
	if len(raw) == 0 {
		return Cart{}
	}

	// Legacy form: ["1", 2, "1"] -> {"1": 2, "2": 1}
	var ids []json.RawMessage
	if err := json.Unmarshal(raw, &ids); err == nil {
		cart := Cart{}
		for _, item := range ids {
			if id, ok := CanonicalID(item); ok && id != "" {
				cart[id]++
			}
		}
		return cart
	}

	// Current form: {"1": 2}
	var counts map[string]int
	if err := json.Unmarshal(raw, &counts); err != nil {
		return Cart{}
	}
	cart := Cart{}
	for id, qty := range counts {
		if id != "" && qty > 0 {
			cart[id] = qty
		}
	}
	return cart
}

// Encode serializes the cart in the current map form.
func (c Cart) Encode() ([]byte, error) {
	if c == nil {
		c = Cart{}
	}
	return json.Marshal(c)
}

// TotalItemCount is the sum of all quantities, i.e. the badge number,
// not the number of distinct products.
func (c Cart) TotalItemCount() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}
