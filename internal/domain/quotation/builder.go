package quotation

import (
	"fmt"
	"strings"
	"time"
)

// FormatNumber renders a sequence number as the zero-padded 6-digit
// string used in quote numbers and file names.
func FormatNumber(seq int) string {
	return fmt.Sprintf("%06d", seq)
}

// Build assembles an immutable record from the session data. It fails
// with a ValidationError when the client name is empty; nothing is
// written and the counter is not advanced.
func Build(client ClientInfo, items []LineItem, company CompanyInfo, seq int, now time.Time) (Record, error) {
	if strings.TrimSpace(client.Name) == "" {
		return Record{}, invalidInput("client name is required")
	}
	var total float64
	copied := make([]LineItem, len(items))
	copy(copied, items)
	for _, it := range copied {
		total += it.Amount
	}
	return Record{
		QuoteNumber: FormatNumber(seq),
		Date:        now.Format(DateFormat),
		ClientInfo:  client,
		Items:       copied,
		Total:       total,
		CompanyInfo: company,
	}, nil
}

// BuildRecord builds a record from the current session state without
// advancing the counter.
func (s *Session) BuildRecord(now time.Time) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Build(s.client, s.items, s.company, s.nextNumber, now)
}
