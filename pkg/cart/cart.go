// Package cart aggregates selected menu items into a WhatsApp order message.
// Carts live entirely on the ordering client; nothing here is persisted.
package cart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is one line of the cart: a product at a unit price with a quantity.
type Item struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal returns UnitPrice multiplied by Quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart accumulates items for one restaurant. Items keep insertion order so
// the generated message is deterministic.
type Cart struct {
	restaurantName string
	whatsapp       string
	items          []Item
}

// New creates an empty cart for the given restaurant. The whatsapp number
// may contain formatting characters; they are stripped when building the
// deep link.
func New(restaurantName, whatsapp string) *Cart {
	return &Cart{restaurantName: restaurantName, whatsapp: whatsapp}
}

// Add puts one unit of the product in the cart, incrementing the quantity
// if a line for it already exists.
func (c *Cart) Add(productID, name string, unitPrice decimal.Decimal) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{ProductID: productID, Name: name, UnitPrice: unitPrice, Quantity: 1})
}

// Remove takes one unit of the product out of the cart, dropping the line
// entirely when its quantity reaches zero. Removing an absent product is a
// no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		c.items[i].Quantity--
		if c.items[i].Quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return
	}
}

// Items returns the current cart lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total sums Subtotal over all lines using exact decimal arithmetic.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

const divider = "----------------------------"

// Message renders the order as the text sent over WhatsApp: a header with
// the restaurant name, one block per line item, an optional observations
// block, and the total footer.
func (c *Cart) Message(observations string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*\U0001F35F NOVO PEDIDO - %s*\n\n", c.restaurantName)
	b.WriteString(divider + "\n")
	for _, item := range c.items {
		fmt.Fprintf(&b, "• *%dx* %s\n", item.Quantity, item.Name)
		fmt.Fprintf(&b, "  R$ %s\n\n", item.Subtotal().StringFixed(2))
	}
	b.WriteString(divider + "\n")

	if obs := strings.TrimSpace(observations); obs != "" {
		fmt.Fprintf(&b, "*\U0001F4DD OBSERVAÇÕES:*\n%s\n\n", obs)
		b.WriteString(divider + "\n")
	}

	fmt.Fprintf(&b, "*\U0001F4B0 TOTAL: R$ %s*", c.Total().StringFixed(2))
	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens the order message in a
// chat with the restaurant. Fails when the restaurant has no usable phone
// number configured.
func (c *Cart) WhatsAppLink(observations string) (string, error) {
	number := digitsOnly(c.whatsapp)
	if number == "" {
		return "", fmt.Errorf("restaurant has no whatsapp number configured")
	}
	// QueryEscape encodes spaces as "+", which WhatsApp renders literally;
	// percent-encode them instead.
	text := strings.ReplaceAll(url.QueryEscape(c.Message(observations)), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, text), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
