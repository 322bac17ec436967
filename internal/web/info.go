package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type infoSection struct {
	Title      string
	Paragraphs []string
}

type infoLink struct {
	Href  string
	Label string
}

type infoPage struct {
	Title    string
	Heading  string
	Intro    string
	Sections []infoSection
	Links    []infoLink
}

var serviceLinks = []infoLink{
	{"/customer-service/size-guide", "Size Guide"},
	{"/customer-service/shipping", "Shipping Info"},
	{"/customer-service/returns", "Returns & Exchanges"},
	{"/customer-service/faq", "FAQ"},
}

var infoPages = map[string]infoPage{
	"/about": {
		Title:   "About",
		Heading: "About JA Fashion",
		Intro:   "We are a fashion house creating timeless pieces that join contemporary design with traditional craftsmanship.",
		Sections: []infoSection{
			{"Our Story", []string{
				"JA Fashion began as a vision to make clothing that lets people express their tradition and their style.",
				"Every piece in our collection is made with care by skilled artisans from Sindh and Balochistan.",
			}},
			{"Our Mission", []string{
				"To create fashion that inspires confidence and celebrates individuality.",
				"We work with the finest materials and keep our practices responsible.",
			}},
		},
	},
	"/contact": {
		Title:   "Contact",
		Heading: "Get in Touch",
		Intro:   "Questions about an order, sizing or a custom piece? Message us on WhatsApp and we will reply during business hours.",
		Sections: []infoSection{
			{"Business Hours", []string{"Monday to Saturday, 10:00 to 19:00 PKT."}},
			{"Common Questions", []string{
				"Returns are accepted within 30 days for unworn items with tags.",
				"We currently deliver across Pakistan.",
				"Signed-in customers can follow order status from the My Orders page.",
			}},
		},
		Links: serviceLinks,
	},
	"/customer-service": {
		Title:   "Customer Service",
		Heading: "Customer Service",
		Intro:   "We are here to help with sizing, delivery and returns.",
		Links:   append([]infoLink{{"/orders", "Track your orders"}, {"/profile", "Manage your account"}}, serviceLinks...),
	},
	"/customer-service/size-guide": {
		Title:   "Size Guide",
		Heading: "Size Guide",
		Intro:   "Find your fit. Measurements are body measurements in inches.",
		Sections: []infoSection{
			{"Kurtas", []string{
				"S: chest 36-38, length 40.",
				"M: chest 38-40, length 41.",
				"L: chest 40-42, length 42.",
				"XL: chest 42-44, length 43.",
			}},
			{"Between sizes?", []string{"We recommend sizing up. Shawls and dupattas are one size."}},
		},
		Links: serviceLinks,
	},
	"/customer-service/shipping": {
		Title:   "Shipping",
		Heading: "Shipping Information",
		Intro:   "Delivery charges depend on your city and are shown at checkout.",
		Sections: []infoSection{
			{"Delivery Times", []string{
				"Major cities usually receive orders within 2 to 4 business days.",
				"Other locations may take up to 7 business days.",
			}},
			{"Order Confirmation", []string{"After you place an order we confirm the details with you on WhatsApp before dispatch."}},
		},
		Links: serviceLinks,
	},
	"/customer-service/returns": {
		Title:   "Returns",
		Heading: "Returns & Exchanges",
		Intro:   "Easy returns and exchanges within 30 days.",
		Sections: []infoSection{
			{"How it works", []string{
				"Message us on WhatsApp with your order number.",
				"Pack the items in their original packaging with all tags attached.",
				"Refunds are processed within 3 to 5 business days of receiving the return.",
			}},
			{"Eligible items", []string{"Unworn clothing with original tags, purchased within the last 30 days."}},
			{"Not eligible", []string{"Items without tags, altered items and purchases older than 30 days."}},
		},
		Links: serviceLinks,
	},
	"/customer-service/faq": {
		Title:   "FAQ",
		Heading: "Frequently Asked Questions",
		Sections: []infoSection{
			{"How can I track my order?", []string{"Sign in and open My Orders to see the status of every order."}},
			{"Can I modify or cancel my order?", []string{"Contact us on WhatsApp within an hour of placing the order."}},
			{"Do I need an account to order?", []string{"No, you can check out as a guest. An account lets you follow orders and keep a wishlist."}},
			{"How do I reset my password?", []string{"Use Forgot password on the login page and we will email you a reset link."}},
			{"Do you ship internationally?", []string{"Not yet. We deliver within Pakistan."}},
		},
		Links: serviceLinks,
	},
}

func (h *Handler) info(p infoPage) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, "info", p.Title, gin.H{
			"Heading":  p.Heading,
			"Intro":    p.Intro,
			"Sections": p.Sections,
			"Links":    p.Links,
		})
	}
}
