package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Storefront holds the shop settings that merchandisers edit without a deploy.
type Storefront struct {
	FlatShipping   float64 `yaml:"flat_shipping"`
	Tax            float64 `yaml:"tax"`
	WhatsAppNumber string  `yaml:"whatsapp_number"`
	PromoCodes     []Promo `yaml:"promo_codes"`
}

type Promo struct {
	Code        string  `yaml:"code"`
	Percent     float64 `yaml:"percent"`
	Description string  `yaml:"description"`
}

func DefaultStorefront() Storefront {
	return Storefront{
		FlatShipping: 300,
		Tax:          0,
		PromoCodes: []Promo{
			{Code: "WELCOME10", Percent: 10, Description: "10% discount applied to your order."},
			{Code: "TRADITIONAL20", Percent: 20, Description: "20% discount applied to your order."},
		},
	}
}

// ParseStorefront decodes YAML on top of the defaults.
func ParseStorefront(data []byte) (Storefront, error) {
	sf := DefaultStorefront()
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return Storefront{}, fmt.Errorf("parse storefront settings: %w", err)
	}
	for i, p := range sf.PromoCodes {
		code := strings.ToUpper(strings.TrimSpace(p.Code))
		if code == "" {
			return Storefront{}, fmt.Errorf("promo_codes[%d]: empty code", i)
		}
		if p.Percent <= 0 || p.Percent > 100 {
			return Storefront{}, fmt.Errorf("promo_codes[%d] %s: percent must be in (0, 100], got %v", i, code, p.Percent)
		}
		sf.PromoCodes[i].Code = code
	}
	if sf.FlatShipping < 0 || sf.Tax < 0 {
		return Storefront{}, errors.New("flat_shipping and tax cannot be negative")
	}
	return sf, nil
}

// LoadStorefront reads path. A missing file yields the defaults.
func LoadStorefront(path string) (Storefront, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultStorefront(), nil
	}
	if err != nil {
		return Storefront{}, err
	}
	return ParseStorefront(data)
}

// StorefrontStore keeps the current settings and reloads them when the file changes.
type StorefrontStore struct {
	path string
	log  *slog.Logger

	mu  sync.RWMutex
	cur Storefront
}

func NewStorefrontStore(path string, log *slog.Logger) (*StorefrontStore, error) {
	sf, err := LoadStorefront(path)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &StorefrontStore{path: path, log: log, cur: sf}, nil
}

// NewStaticStorefront wraps fixed settings; Watch is a no-op for it.
func NewStaticStorefront(sf Storefront) *StorefrontStore {
	return &StorefrontStore{cur: sf, log: slog.Default()}
}

func (s *StorefrontStore) Get() Storefront {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *StorefrontStore) reload() {
	sf, err := LoadStorefront(s.path)
	if err != nil {
		s.log.Warn("storefront reload failed, keeping previous settings", slog.Any("err", err), slog.String("path", s.path))
		return
	}
	s.mu.Lock()
	s.cur = sf
	s.mu.Unlock()
	s.log.Info("storefront settings reloaded", slog.Int("promo_codes", len(sf.PromoCodes)))
}

// Watch blocks until ctx is done, reloading on writes to the settings file.
// The parent directory is watched so editors that replace the file are seen.
func (s *StorefrontStore) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				s.reload()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("storefront watcher error", slog.Any("err", err))
		}
	}
}
