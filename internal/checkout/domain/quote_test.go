package domain

import (
	"net/url"
	"strings"
	"testing"

	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines() []Line {
	return []Line{
		{ProductID: "p1", Name: "Classic Ajrak Shawl", Category: "Shawls", Color: "Red", Size: "Free",
			Quantity: 2, UnitPrice: money.FromRupees(2500), OriginalPrice: money.FromRupees(3000), LineTotal: money.FromRupees(5000)},
		{ProductID: "p2", Name: "Indigo Dupatta", Category: "Dupattas", Color: "Blue", Size: "Free",
			Quantity: 1, UnitPrice: money.FromRupees(1800), LineTotal: money.FromRupees(1800)},
	}
}

func TestSummarize(t *testing.T) {
	promo := &Promo{Code: "WELCOME10", Percent: decimal.NewFromInt(10)}
	s := Summarize(lines(), promo, money.FromRupees(300), 0)

	assert.Equal(t, money.FromRupees(6800), s.Subtotal)
	assert.Equal(t, money.FromRupees(1000), s.Savings)
	assert.Equal(t, money.FromRupees(680), s.PromoDiscount)
	assert.Equal(t, money.FromRupees(6420), s.Total)

	plain := Summarize(lines(), nil, money.FromRupees(300), money.FromRupees(50))
	assert.Zero(t, plain.PromoDiscount)
	assert.Empty(t, plain.PromoCode)
	assert.Equal(t, money.FromRupees(7150), plain.Total)
}

func TestPromoRoundsToPaisa(t *testing.T) {
	l := []Line{{Quantity: 1, UnitPrice: money.Amount(1999), LineTotal: money.Amount(1999)}}
	s := Summarize(l, &Promo{Code: "X", Percent: decimal.NewFromInt(10)}, 0, 0)
	assert.Equal(t, money.Amount(200), s.PromoDiscount)
}

func TestAddressValidate(t *testing.T) {
	a := Address{Name: " Ayesha ", Phone: "0300", Email: "a@b.c", Address: "x", City: "Karachi", PostalCode: "75600"}
	require.NoError(t, a.Validate())
	assert.Equal(t, "Ayesha", a.Normalize().Name)

	a.Email = "   "
	a.PostalCode = ""
	err := a.Validate()
	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"email", "postalCode"}, missing.Fields)
}

func TestWhatsAppMessage(t *testing.T) {
	s := Summarize(lines(), &Promo{Code: "WELCOME10", Percent: decimal.NewFromInt(10)}, money.FromRupees(300), 0)
	addr := Address{Name: "Ayesha", Phone: "0300", Email: "a@b.c", Address: "Clifton", City: "Karachi", PostalCode: "75600"}

	msg := WhatsAppMessage(lines(), s, addr)
	want := "*Order Summary*\n\n" +
		"*1. Classic Ajrak Shawl*\n" +
		"  - Category: Shawls\n" +
		"  - Color: Red\n" +
		"  - Size: Free\n" +
		"  - Price: Rs2,500.00 x 2 = 5,000.00\n" +
		"  - Original: Rs3,000.00\n\n" +
		"*2. Indigo Dupatta*\n" +
		"  - Category: Dupattas\n" +
		"  - Color: Blue\n" +
		"  - Size: Free\n" +
		"  - Price: Rs1,800.00 x 1 = 1,800.00\n\n" +
		"Subtotal: Rs6,800.00\n" +
		"You Save: -Rs1,000.00\n" +
		"Promo (WELCOME10): -Rs680.00\n" +
		"Shipping: Rs300.00\n" +
		"Tax: Rs0.00\n" +
		"*Total: Rs6,420.00*\n\n" +
		"*Customer Details:*\n" +
		"Name: Ayesha\n" +
		"Phone: 0300\n" +
		"Email: a@b.c\n" +
		"Address: Clifton\n" +
		"City: Karachi\n" +
		"Postal Code: 75600\n"
	assert.Equal(t, want, msg)
}

func TestWhatsAppURL(t *testing.T) {
	u := WhatsAppURL("+923051070920", "*Total: Rs 1+1*\n")
	require.True(t, strings.HasPrefix(u, "https://wa.me/923051070920?text="))
	assert.NotContains(t, u, "+")

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "*Total: Rs 1+1*\n", parsed.Query().Get("text"))

	assert.Equal(t, "https://wa.me/923051070920", WhatsAppURL("923051070920", ""))
}
