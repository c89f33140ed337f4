// Package catalog owns the product list and the sales ledger. Every mutation
// is applied in memory and then the whole affected collection is written to
// the key-value store.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/01moynul/kashish-pos/internal/kv"
	"github.com/01moynul/kashish-pos/internal/metrics"
	"github.com/01moynul/kashish-pos/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SystemUser is recorded on price history entries when nobody is logged in.
const SystemUser = "System"

// Actor supplies the display name of whoever is operating the shop.
// An empty name means no session.
type Actor interface {
	ActorName() string
}

// Store is the catalog store. It is safe for concurrent use; mutations are
// serialized and each one finishes its snapshot write before the next starts.
type Store struct {
	mu       sync.RWMutex
	kv       kv.Store
	actor    Actor
	now      func() time.Time
	newID    func() string
	log      zerolog.Logger
	metrics  *metrics.Recorder
	products []models.Product // newest inserted first
	sales    []models.Sale    // newest first
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid product id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Store) { s.metrics = m }
}

// New hydrates a Store from kv. When no product collection has been saved the
// demo catalog is seeded; a missing sales collection starts empty.
func New(ctx context.Context, store kv.Store, actor Actor, opts ...Option) (*Store, error) {
	s := &Store{
		kv:    store,
		actor: actor,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	seeded, err := load(ctx, store, kv.KeyProducts, &s.products)
	if err != nil {
		return nil, err
	}
	if !seeded {
		s.products = seedProducts(s.now())
		s.log.Info().Int("count", len(s.products)).Msg("No saved catalog found, seeding demo products")
		if err := s.persistProducts(ctx); err != nil {
			s.log.Warn().Err(err).Msg("Could not save seed catalog")
		}
	}
	if _, err := load(ctx, store, kv.KeySales, &s.sales); err != nil {
		return nil, err
	}
	if s.sales == nil {
		s.sales = []models.Sale{}
	}
	for i := range s.products {
		if s.products[i].History == nil {
			s.products[i].History = []models.PriceHistoryEntry{}
		}
	}
	return s, nil
}

func load(ctx context.Context, store kv.Store, key string, dst any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("catalog: load %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("catalog: decode %s: %w", key, err)
	}
	return true, nil
}

//
// --- Products ---
//

// AddProduct inserts p at the front of the catalog. An empty id is replaced by
// a fresh one and an empty status becomes ACTIVE. A product that reuses an
// existing id replaces that record.
func (s *Store) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	p.IsDeleted = false
	p.History = []models.PriceHistoryEntry{}
	p.LastUpdated = s.now()

	if i := s.indexOf(p.ID); i >= 0 {
		s.log.Warn().Str("productId", p.ID).Msg("AddProduct overwrote an existing product")
		s.products = append(s.products[:i], s.products[i+1:]...)
	}
	s.products = append([]models.Product{p}, s.products...)

	s.metrics.Mutation("add_product", "ok")
	return p.Clone(), s.persistProducts(ctx)
}

// UpdateProduct merges patch into the stored product. When the buy or sell
// price changes, one history entry is prepended with the stored prices as old
// values. The product keeps its position.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.metrics.Mutation("update_product", "not_found")
		return models.Product{}, ErrProductNotFound
	}

	existing := s.products[i]
	updated := existing.Clone()
	patch.ApplyTo(&updated)
	now := s.now()

	if existing.BuyPrice != updated.BuyPrice || existing.SellPrice != updated.SellPrice {
		entry := models.PriceHistoryEntry{
			Timestamp:    now,
			OldBuyPrice:  existing.BuyPrice,
			NewBuyPrice:  updated.BuyPrice,
			OldSellPrice: existing.SellPrice,
			NewSellPrice: updated.SellPrice,
			User:         s.actorName(),
		}
		updated.History = append([]models.PriceHistoryEntry{entry}, existing.History...)
	}
	updated.LastUpdated = now
	s.products[i] = updated

	s.metrics.Mutation("update_product", "ok")
	return updated.Clone(), s.persistProducts(ctx)
}

// DeleteProduct moves a product to the recycle bin, or removes it for good
// when permanent is set. Permanent removal only applies to products already
// in the recycle bin.
func (s *Store) DeleteProduct(ctx context.Context, id string, permanent bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	op := "soft_delete"
	if permanent {
		op = "hard_delete"
	}

	i := s.indexOf(id)
	if i < 0 {
		s.metrics.Mutation(op, "not_found")
		return ErrProductNotFound
	}

	if permanent {
		if !s.products[i].IsDeleted {
			s.metrics.Mutation(op, "rejected")
			return ErrNotInRecycleBin
		}
		s.products = append(s.products[:i], s.products[i+1:]...)
	} else {
		s.products[i].IsDeleted = true
	}

	s.metrics.Mutation(op, "ok")
	return s.persistProducts(ctx)
}

// RestoreProduct takes a product out of the recycle bin.
func (s *Store) RestoreProduct(ctx context.Context, id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.metrics.Mutation("restore_product", "not_found")
		return models.Product{}, ErrProductNotFound
	}
	s.products[i].IsDeleted = false

	s.metrics.Mutation("restore_product", "ok")
	return s.products[i].Clone(), s.persistProducts(ctx)
}

// Product looks up a product by id, deleted or not.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, false
	}
	return s.products[i].Clone(), true
}

// Products returns a copy of every product in catalog order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

//
// --- Sales ---
//

// AddSale records a sale at the front of the ledger. Product ids are not
// checked and no product is modified.
func (s *Store) AddSale(ctx context.Context, sale models.Sale) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale = sale.Clone()
	if sale.ID == "" {
		sale.ID = NewSaleID(s.now())
	}
	if sale.Timestamp.IsZero() {
		sale.Timestamp = s.now()
	}
	if sale.PaymentMethod == "" {
		sale.PaymentMethod = models.PaymentCash
	}
	s.sales = append([]models.Sale{sale}, s.sales...)

	s.metrics.Mutation("add_sale", "ok")
	s.metrics.Sale(sale.Total)
	return sale.Clone(), s.persistSales(ctx)
}

// Sales returns a copy of the ledger, newest first.
func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Sale, len(s.sales))
	for i, sale := range s.sales {
		out[i] = sale.Clone()
	}
	return out
}

// NewSaleID builds an order number from the checkout time.
func NewSaleID(at time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", at.UnixMilli(), uuid.New().String()[:8])
}

//
// --- Helpers ---
//

func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) actorName() string {
	if s.actor != nil {
		if name := s.actor.ActorName(); name != "" {
			return name
		}
	}
	return SystemUser
}

func (s *Store) persistProducts(ctx context.Context) error {
	return s.persist(ctx, kv.KeyProducts, s.products)
}

func (s *Store) persistSales(ctx context.Context) error {
	return s.persist(ctx, kv.KeySales, s.sales)
}

// persist writes a full snapshot. Failures are logged, counted and returned
// wrapped in ErrPersistence; memory is never rolled back.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err == nil {
		err = s.kv.Set(ctx, key, raw)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Snapshot write failed")
		s.metrics.PersistFailure(key)
		return fmt.Errorf("%w: %s: %w", ErrPersistence, key, err)
	}
	return nil
}
