package services

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/aboayman-oss/Sakr-Store/models"
)

// ErrEmptyCart signals a checkout attempt with nothing in the cart: a
// user-correctable validation failure, not a system error.
var ErrEmptyCart = errors.New("cart is empty")

// CustomerInfo is what the checkout form collects. Fields go into the
// summary verbatim.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Summarize renders the order as the WhatsApp message text: customer
// details, one line per distinct cart entry at its effective unit
// price, and a total. Entries whose product is gone from the catalog
// are omitted from both lines and total. The output is deterministic:
// lines follow catalog order.
func Summarize(cart models.Cart, catalog []models.Product, customer CustomerInfo) (string, error) {
	if len(cart) == 0 {
		return "", ErrEmptyCart
	}

	var lines []string
	total := 0.0
	for _, p := range catalog {
		qty, ok := cart[p.ID]
		if !ok {
			continue
		}
		lineTotal := p.EffectivePrice() * float64(qty)
		total += lineTotal
		lines = append(lines, fmt.Sprintf("- %dx %s - $%.2f", qty, p.Name, lineTotal))
	}

	parts := []string{
		"Hello! I'd like to place an order.",
		"",
		"*My Details:*",
		"Name: " + customer.Name,
		"Address: " + customer.Address,
		"Phone: " + customer.Phone,
		"",
		"*Order Summary:*",
	}
	parts = append(parts, lines...)
	parts = append(parts,
		"---------------------",
		fmt.Sprintf("*Total: $%.2f*", total),
		"",
		"Thank you!",
	)
	return strings.Join(parts, "\n"), nil
}

// HandoffURL builds the messaging deep link for the summary. Encoding
// is all this does; navigating there and whatever happens afterwards
// is the channel's concern (fire and forget, no retry).
func HandoffURL(recipient, summary string) string {
	return "https://wa.me/" + recipient + "?text=" + url.QueryEscape(summary)
}

// GenerateOrderPDF renders the current cart as an order summary PDF
// the customer can keep. Layout follows the store's invoice style.
func GenerateOrderPDF(lines []models.CartLine, grandTotal float64, customer CustomerInfo) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("ORDER SUMMARY", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("SAKR STORE", props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(8, func() {})

	// Customer block
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("CUSTOMER", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(customer.Name, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(customer.Address, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(customer.Phone, props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Items table header
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Product", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, line := range lines {
		line := line
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(line.Name, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", line.Quantity), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", line.UnitPrice), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", line.LineTotal), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", grandTotal), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Thank you for your order!", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[order.pdf] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}
	return &buf
}
