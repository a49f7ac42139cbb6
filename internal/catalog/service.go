// Package catalog holds the reusable product templates a budget can be
// filled from. The collection lives in memory and keeps a durable copy
// in the key/value storage collaborator.
package catalog

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/orcamento-api/internal/common"
	"github.com/noah-isme/orcamento-api/internal/kvstore"
)

// DefaultStorageKey is the single fixed key the catalog persists under.
const DefaultStorageKey = "orcamento:catalog"

// DefaultTTL keeps the persisted catalog effectively durable.
const DefaultTTL = 365 * 24 * time.Hour

// DefaultImageReference is applied when an entry is added without one.
const DefaultImageReference = "/assets/product-placeholder.png"

// Entry is a reusable named product template.
type Entry struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	ImageReference string          `json:"imageReference"`
}

// AddParams is the validated input for Add.
type AddParams struct {
	Name           string  `json:"name" validate:"required"`
	Price          float64 `json:"price" validate:"gt=0"`
	ImageReference string  `json:"imageReference"`
}

// Service owns the catalog collection and its persistence.
type Service struct {
	mu       sync.Mutex
	entries  []Entry
	store    kvstore.Store
	key      string
	ttl      time.Duration
	now      func() time.Time
	logger   zerolog.Logger
	validate *validator.Validate
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Store  kvstore.Store
	Key    string
	TTL    time.Duration
	Now    func() time.Time
	Logger zerolog.Logger
}

// NewService constructs a Service around the given storage collaborator.
func NewService(cfg ServiceConfig) *Service {
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = DefaultStorageKey
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	store := cfg.Store
	if store == nil {
		store = kvstore.NewMemory()
	}
	return &Service{
		store:    store,
		key:      key,
		ttl:      ttl,
		now:      now,
		logger:   cfg.Logger,
		validate: validator.New(),
	}
}

// Load restores the persisted catalog. A missing key or a corrupted
// payload degrades to an empty catalog; corruption is logged, never
// surfaced.
func (s *Service) Load(ctx context.Context) {
	raw, ok, err := s.store.Load(ctx, s.key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("catalog load failed, starting empty")
		return
	}
	if !ok {
		return
	}
	var entries []Entry
	if _, err := kvstore.Unwrap(raw, &entries); err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("discarding corrupted catalog payload")
		return
	}
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// List returns the catalog entries in insertion order.
func (s *Service) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get looks up one entry by id.
func (s *Service) Get(id string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return Entry{}, false
}

// Add validates and appends a new entry, then persists the catalog.
// Empty or whitespace-only names and non-positive prices are rejected
// without mutating anything.
func (s *Service) Add(ctx context.Context, params AddParams) (Entry, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := s.validate.Struct(params); err != nil {
		return Entry{}, &common.AppError{
			Code:       "VALIDATION",
			Message:    "name must be non-empty and price must be positive",
			HTTPStatus: http.StatusUnprocessableEntity,
			Err:        err,
		}
	}
	image := strings.TrimSpace(params.ImageReference)
	if image == "" {
		image = DefaultImageReference
	}
	entry := Entry{
		ID:             uuid.NewString(),
		Name:           params.Name,
		Price:          decimal.NewFromFloat(params.Price),
		ImageReference: image,
	}
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	s.persist(ctx)
	return entry, nil
}

// Remove deletes an entry and persists the catalog. Unknown ids are a
// no-op; confirmation is gated upstream.
func (s *Service) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.persist(ctx)
	}
	return removed
}

// persist writes the whole collection as one timestamped blob. A write
// failure loses durability, not the in-memory state, so it is only
// logged.
func (s *Service) persist(ctx context.Context) {
	s.mu.Lock()
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	s.mu.Unlock()
	payload, err := kvstore.Wrap(entries, s.now())
	if err != nil {
		s.logger.Error().Err(err).Msg("encode catalog payload")
		return
	}
	if err := s.store.Save(ctx, s.key, payload, s.ttl); err != nil {
		s.logger.Error().Err(err).Str("key", s.key).Msg("persist catalog")
	}
}
