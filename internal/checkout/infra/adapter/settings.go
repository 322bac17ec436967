package adapter

import "github.com/dwikikusuma/ja-fashion/pkg/config"

// Settings reads the hot-reloaded storefront file, filling the WhatsApp
// number from the environment when the file leaves it blank.
type Settings struct {
	Store          *config.StorefrontStore
	WhatsAppNumber string
}

func (s Settings) Get() config.Storefront {
	sf := s.Store.Get()
	if sf.WhatsAppNumber == "" {
		sf.WhatsAppNumber = s.WhatsAppNumber
	}
	return sf
}
