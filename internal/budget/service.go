package budget

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// State is a full snapshot of the budget session.
type State struct {
	Client  ClientInfo  `json:"client"`
	Company CompanyInfo `json:"company"`
	Meta    Meta        `json:"meta"`
	Items   []LineItem  `json:"items"`
}

// ClientPatch carries a partial ClientInfo update; nil fields are untouched.
type ClientPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CompanyPatch carries a partial CompanyInfo update.
type CompanyPatch struct {
	Name     *string `json:"name"`
	Subtitle *string `json:"subtitle"`
	Phone    *string `json:"phone"`
	TaxID    *string `json:"taxId"`
	Address  *string `json:"address"`
}

// MetaPatch carries a partial Meta update. Discount and tax are clamped
// on assignment.
type MetaPatch struct {
	Number     *string  `json:"number"`
	Date       *string  `json:"date"`
	ValidUntil *string  `json:"validUntil"`
	Discount   *float64 `json:"discount"`
	Tax        *float64 `json:"tax"`
}

// Service owns the single budget session of the process: client,
// company, metadata and the line-item store. Every operation runs under
// one mutex so mutations stay strictly sequential.
type Service struct {
	mu      sync.Mutex
	client  ClientInfo
	company CompanyInfo
	meta    Meta
	items   *Store
	now     func() time.Time
}

// NewService creates a pristine session with default company identity
// and generated budget metadata.
func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	s := &Service{now: now}
	s.reset()
	return s
}

func (s *Service) reset() {
	s.client = ClientInfo{}
	s.company = CompanyInfo{Name: DefaultCompanyName, Subtitle: DefaultCompanySubtitle}
	s.meta = NewMeta(s.now())
	s.items = NewStore()
}

// Reset discards all session state and starts a fresh budget.
func (s *Service) Reset() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return s.stateLocked()
}

// Snapshot returns the current session state and its totals.
func (s *Service) Snapshot() (State, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateLocked()
	return state, Compute(state.Items, state.Meta.Discount, state.Meta.Tax)
}

// Totals recomputes the totals for the current session.
func (s *Service) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Compute(s.items.Items(), s.meta.Discount, s.meta.Tax)
}

// UpdateClient applies a partial client update.
func (s *Service) UpdateClient(p ClientPatch) ClientInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.client.Name, p.Name)
	apply(&s.client.Email, p.Email)
	apply(&s.client.Phone, p.Phone)
	apply(&s.client.Address, p.Address)
	return s.client
}

// UpdateCompany applies a partial company update.
func (s *Service) UpdateCompany(p CompanyPatch) CompanyInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.company.Name, p.Name)
	apply(&s.company.Subtitle, p.Subtitle)
	apply(&s.company.Phone, p.Phone)
	apply(&s.company.TaxID, p.TaxID)
	apply(&s.company.Address, p.Address)
	return s.company
}

// UpdateMeta applies a partial metadata update, clamping the discount
// and tax percentages, and returns the recomputed totals alongside.
func (s *Service) UpdateMeta(p MetaPatch) (Meta, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.meta.Number, p.Number)
	apply(&s.meta.Date, p.Date)
	apply(&s.meta.ValidUntil, p.ValidUntil)
	if p.Discount != nil {
		s.meta.Discount = ClampPercent(*p.Discount)
	}
	if p.Tax != nil {
		s.meta.Tax = ClampPercent(*p.Tax)
	}
	return s.meta, Compute(s.items.Items(), s.meta.Discount, s.meta.Tax)
}

// AddItem appends a blank line item.
func (s *Service) AddItem() (LineItem, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items.Add()
	return item, Compute(s.items.Items(), s.meta.Discount, s.meta.Tax)
}

// AppendItem appends a pre-filled line item, used when instantiating a
// catalog entry. Quantity starts at 1 and the total equals the price.
func (s *Service) AppendItem(description string, price decimal.Decimal, imageRef string) (LineItem, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items.Append(LineItem{
		Description:    description,
		Quantity:       1,
		UnitPrice:      price,
		Total:          price,
		ImageReference: imageRef,
	})
	return item, Compute(s.items.Items(), s.meta.Discount, s.meta.Tax)
}

// UpdateItem mutates one field of one line item. Unknown ids report
// ok=false and change nothing.
func (s *Service) UpdateItem(id int64, field Field, raw string) (LineItem, Totals, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items.Update(id, field, raw)
	return item, Compute(s.items.Items(), s.meta.Discount, s.meta.Tax), ok
}

// RemoveItem deletes one line item. Unknown ids are a no-op.
func (s *Service) RemoveItem(id int64) (Totals, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.items.Remove(id)
	return Compute(s.items.Items(), s.meta.Discount, s.meta.Tax), ok
}

func (s *Service) stateLocked() State {
	return State{
		Client:  s.client,
		Company: s.company,
		Meta:    s.meta,
		Items:   s.items.Items(),
	}
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
