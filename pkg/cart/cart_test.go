package cart_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/7pessoal-source/menu-noir-premium/pkg/cart"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCartAggregation(t *testing.T) {
	c := cart.New("Menu Noir", "+55 (11) 98765-4321")

	c.Add("p1", "X-Burguer", price("9.99"))
	c.Add("p1", "X-Burguer", price("9.99"))
	c.Add("p2", "Batata Frita", price("5.00"))

	items := c.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "X-Burguer", items[0].Name)
	assert.Equal(t, 1, items[1].Quantity)

	c.Remove("p1")
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.Remove("p1")
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "p2", c.Items()[0].ProductID)

	// Removing an absent product does nothing.
	c.Remove("p1")
	assert.Equal(t, 1, c.Len())
}

func TestCartTotalExact(t *testing.T) {
	c := cart.New("Menu Noir", "5511987654321")

	c.Add("p1", "X-Burguer", price("9.99"))
	c.Add("p1", "X-Burguer", price("9.99"))
	c.Add("p2", "Batata Frita", price("5.00"))

	assert.True(t, c.Total().Equal(price("24.98")), "got %s", c.Total())

	// Repeated add/remove cycles must not drift.
	for i := 0; i < 1000; i++ {
		c.Add("p1", "X-Burguer", price("9.99"))
		c.Remove("p1")
	}
	assert.Equal(t, "24.98", c.Total().StringFixed(2))
}

func TestCartMessage(t *testing.T) {
	c := cart.New("Menu Noir", "5511987654321")
	c.Add("p1", "X-Burguer", price("9.99"))
	c.Add("p1", "X-Burguer", price("9.99"))
	c.Add("p2", "Batata Frita", price("5.00"))

	msg := c.Message("Sem cebola")
	assert.Contains(t, msg, "NOVO PEDIDO - Menu Noir")
	assert.Contains(t, msg, "*2x* X-Burguer")
	assert.Contains(t, msg, "R$ 19.98")
	assert.Contains(t, msg, "*1x* Batata Frita")
	assert.Contains(t, msg, "R$ 5.00")
	assert.Contains(t, msg, "OBSERVAÇÕES")
	assert.Contains(t, msg, "Sem cebola")
	assert.Contains(t, msg, "TOTAL: R$ 24.98")

	// Deterministic: same cart, same message.
	assert.Equal(t, msg, c.Message("Sem cebola"))

	// No observations block when the text is blank.
	assert.NotContains(t, c.Message("   "), "OBSERVAÇÕES")
}

func TestWhatsAppLink(t *testing.T) {
	c := cart.New("Menu Noir", "+55 (11) 98765-4321")
	c.Add("p1", "X-Burguer", price("9.99"))

	link, err := c.WhatsAppLink("")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511987654321?text="), "got %s", link)
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+", "spaces must be percent-encoded, not plus-encoded")

	empty := cart.New("Menu Noir", "sem telefone")
	_, err = empty.WhatsAppLink("")
	assert.Error(t, err)
}
