package quotation

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// Session holds the state of one editing session: the item ledger, the
// client fields, the company settings and the sequence counter. There is
// exactly one per running server; the mutex only guards against the HTTP
// layer delivering two requests at once.
type Session struct {
	mu         sync.Mutex
	items      []LineItem
	client     ClientInfo
	company    CompanyInfo
	nextNumber int
	editIndex  int
}

func NewSession(company CompanyInfo, nextNumber int) *Session {
	if nextNumber < 1 {
		nextNumber = 1
	}
	return &Session{company: company, nextNumber: nextNumber, editIndex: -1}
}

// AddOrUpdateItem validates the raw form values, computes the amount and
// either replaces the slot under edit or appends a new item. On a
// ValidationError the ledger is untouched.
func (s *Session) AddOrUpdateItem(description, unitCost, quantity string) (LineItem, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return LineItem{}, invalidInput("description cannot be empty")
	}
	cost, err := parseAmount("unit cost", unitCost)
	if err != nil {
		return LineItem{}, err
	}
	qty, err := parseAmount("quantity", quantity)
	if err != nil {
		return LineItem{}, err
	}

	item := LineItem{
		Description: desc,
		UnitCost:    cost,
		Quantity:    qty,
		Amount:      cost * qty,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editIndex >= 0 && s.editIndex < len(s.items) {
		s.items[s.editIndex] = item
		s.editIndex = -1
	} else {
		s.items = append(s.items, item)
	}
	return item, nil
}

// BeginEdit marks index as the active edit target and returns a copy of
// the item so the form can be pre-filled.
func (s *Session) BeginEdit(index int) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return LineItem{}, ErrIndexOutOfRange
	}
	s.editIndex = index
	return s.items[index], nil
}

func (s *Session) DeleteItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	if s.editIndex == index {
		s.editIndex = -1
	} else if s.editIndex > index {
		s.editIndex--
	}
	return nil
}

// Clear empties the ledger and resets the client fields. Company settings
// and the sequence counter are untouched.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.client = ClientInfo{}
	s.editIndex = -1
}

func (s *Session) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.items {
		total += it.Amount
	}
	return total
}

func (s *Session) Client() ClientInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

func (s *Session) SetClient(c ClientInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = c
}

func (s *Session) Company() CompanyInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company
}

// SetCompany replaces the text settings. The logo is uploaded separately,
// so an update without one keeps the current logo.
func (s *Session) SetCompany(c CompanyInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Logo == nil {
		c.Logo = s.company.Logo
	}
	s.company = c
}

func (s *Session) SetLogo(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company.Logo = data
}

func (s *Session) NextNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextNumber
}

// EditIndex returns the active edit target, or -1 when none.
func (s *Session) EditIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editIndex
}

// CommitNumber advances the sequence counter. Callers invoke it only
// after the record has been persisted.
func (s *Session) CommitNumber() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextNumber++
}

func parseAmount(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidInput(field + " must be a valid number")
	}
	if v < 0 {
		return 0, invalidInput(field + " must not be negative")
	}
	return v, nil
}
