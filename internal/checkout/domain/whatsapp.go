package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

// WhatsAppMessage renders the order summary sent to the shop's WhatsApp.
func WhatsAppMessage(lines []Line, s Summary, addr Address) string {
	var b strings.Builder
	b.WriteString("*Order Summary*\n\n")
	for i, l := range lines {
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, l.Name)
		fmt.Fprintf(&b, "  - Category: %s\n", l.Category)
		fmt.Fprintf(&b, "  - Color: %s\n", l.Color)
		fmt.Fprintf(&b, "  - Size: %s\n", l.Size)
		fmt.Fprintf(&b, "  - Price: Rs%s x %d = %s\n", money.Plain(l.UnitPrice), l.Quantity, money.Plain(l.LineTotal))
		if l.OriginalPrice > 0 {
			fmt.Fprintf(&b, "  - Original: Rs%s\n", money.Plain(l.OriginalPrice))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Subtotal: Rs%s\n", money.Plain(s.Subtotal))
	if s.Savings > 0 {
		fmt.Fprintf(&b, "You Save: -Rs%s\n", money.Plain(s.Savings))
	}
	if s.PromoDiscount > 0 && s.PromoCode != "" {
		fmt.Fprintf(&b, "Promo (%s): -Rs%s\n", s.PromoCode, money.Plain(s.PromoDiscount))
	}
	fmt.Fprintf(&b, "Shipping: Rs%s\n", money.Plain(s.Shipping))
	fmt.Fprintf(&b, "Tax: Rs%s\n", money.Plain(s.Tax))
	fmt.Fprintf(&b, "*Total: Rs%s*\n\n", money.Plain(s.Total))

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", addr.Name)
	fmt.Fprintf(&b, "Phone: %s\n", addr.Phone)
	fmt.Fprintf(&b, "Email: %s\n", addr.Email)
	fmt.Fprintf(&b, "Address: %s\n", addr.Address)
	fmt.Fprintf(&b, "City: %s\n", addr.City)
	fmt.Fprintf(&b, "Postal Code: %s\n", addr.PostalCode)
	return b.String()
}

// WhatsAppURL is a wa.me deep link that opens a chat prefilled with text.
func WhatsAppURL(number, text string) string {
	u := "https://wa.me/" + strings.TrimPrefix(strings.TrimSpace(number), "+")
	if text == "" {
		return u
	}
	return u + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
