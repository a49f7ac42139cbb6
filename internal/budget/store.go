package budget

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field names a mutable line-item attribute.
type Field string

// Updatable line-item fields.
const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldUnitPrice   Field = "unitPrice"
	FieldImage       Field = "imageReference"
)

// KnownField reports whether f names an updatable attribute.
func KnownField(f Field) bool {
	switch f {
	case FieldDescription, FieldQuantity, FieldUnitPrice, FieldImage:
		return true
	}
	return false
}

// Store is the ordered line-item collection of one budget session.
// Identifiers are monotonic and never reused within a session. The
// store is not safe for concurrent use; Service serialises access.
type Store struct {
	items  []LineItem
	nextID int64
}

// NewStore creates an empty store with identifiers seeded from the
// session creation instant.
func NewStore() *Store {
	return &Store{nextID: time.Now().UnixMilli()}
}

// Add appends a blank item: empty description, quantity 1, price 0.
func (s *Store) Add() LineItem {
	return s.Append(LineItem{Quantity: 1, UnitPrice: decimal.Zero, Total: decimal.Zero})
}

// Append assigns the next identifier to item and appends it.
func (s *Store) Append(item LineItem) LineItem {
	item.ID = s.nextID
	s.nextID++
	s.items = append(s.items, item)
	return item
}

// Update mutates a single field of the item with the given id, coercing
// invalid numeric input: quantity falls back to 1, unit price to 0.
// The derived total is recomputed after any quantity or price change.
// An unknown id is a no-op. An empty image value keeps the previous one.
func (s *Store) Update(id int64, field Field, raw string) (LineItem, bool) {
	idx := s.index(id)
	if idx < 0 {
		return LineItem{}, false
	}
	item := &s.items[idx]
	switch field {
	case FieldDescription:
		item.Description = raw
	case FieldQuantity:
		item.Quantity = coerceQuantity(raw)
		item.Total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	case FieldUnitPrice:
		item.UnitPrice = coercePrice(raw)
		item.Total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	case FieldImage:
		if strings.TrimSpace(raw) != "" {
			item.ImageReference = raw
		}
	default:
		return LineItem{}, false
	}
	return *item, true
}

// Remove deletes the item with the given id. Unknown ids are a no-op;
// confirmation is the caller's concern.
func (s *Store) Remove(id int64) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return true
}

// Items returns the line items in insertion order.
func (s *Store) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of line items.
func (s *Store) Len() int { return len(s.items) }

func (s *Store) index(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func coerceQuantity(raw string) int {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || q < 1 {
		return 1
	}
	return q
}

func coercePrice(raw string) decimal.Decimal {
	p, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || p.IsNegative() {
		return decimal.Zero
	}
	return p
}
