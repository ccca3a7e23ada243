package quotation

import (
	"strconv"
	"strings"
)

// DateFormat is the date layout stored in quotation records (day-month-year).
const DateFormat = "02-01-2006"

type LineItem struct {
	Description string  `json:"description"`
	UnitCost    float64 `json:"unit_cost"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
}

type ClientInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CompanyInfo is snapshotted into every saved record so historical
// documents keep the branding active at save time. The logo lives only
// in memory and in the rendered PDF, never in the JSON file.
type CompanyInfo struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	FooterText string `json:"footer_text"`
	ThemeColor string `json:"theme_color"`
	Logo       []byte `json:"-"`
}

type Record struct {
	QuoteNumber string      `json:"quote_number"`
	Date        string      `json:"date"`
	ClientInfo  ClientInfo  `json:"client_info"`
	Items       []LineItem  `json:"items"`
	Total       float64     `json:"total"`
	CompanyInfo CompanyInfo `json:"company_info"`
}

// SearchText concatenates every leaf field of the record for substring
// search over history.
func (r Record) SearchText() string {
	var b strings.Builder
	add := func(parts ...string) {
		for _, p := range parts {
			b.WriteString(p)
			b.WriteByte(' ')
		}
	}
	add(r.QuoteNumber, r.Date)
	add(r.ClientInfo.Name, r.ClientInfo.Phone, r.ClientInfo.Email, r.ClientInfo.Address)
	for _, it := range r.Items {
		add(it.Description, formatAmount(it.UnitCost), formatAmount(it.Quantity), formatAmount(it.Amount))
	}
	add(formatAmount(r.Total))
	c := r.CompanyInfo
	add(c.Name, c.Address, c.Phone, c.Email, c.FooterText, c.ThemeColor)
	return b.String()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
