package gofpdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"obiene/quotation_backend/internal/domain/quotation"
)

// money renders amounts with thousands separators and two decimals.
var money = message.NewPrinter(language.English)

const maxDescriptionChars = 50

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(rec quotation.Record) ([]byte, error) {
	company := rec.CompanyInfo

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Quotation "+rec.QuoteNumber, false)
	doc.SetAutoPageBreak(true, 30)

	logo := ""
	if len(company.Logo) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(company.Logo))
		if err := doc.Error(); err != nil {
			return nil, fmt.Errorf("register logo: %w", err)
		}
		logo = "company-logo"
	}

	doc.SetHeaderFunc(func() {
		startY := 8.0
		if logo != "" {
			doc.ImageOptions(logo, 10, 8, 33, 0, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			startY = 25
		}
		doc.SetFont("Arial", "B", 12)
		doc.SetXY(100, startY)
		doc.CellFormat(0, 6, company.Name, "", 1, "R", false, 0, "")
		doc.SetFont("Arial", "", 10)
		doc.SetX(100)
		block := fmt.Sprintf("%s\nTel: %s\nEmail: %s", company.Address, company.Phone, company.Email)
		doc.MultiCell(0, 5, block, "", "R", false)
		doc.Ln(20)
		doc.SetFont("Arial", "B", 15)
		doc.CellFormat(0, 10, "QUOTATION", "", 1, "C", false, 0, "")
	})

	doc.SetFooterFunc(func() {
		doc.SetY(-25)
		doc.SetFont("Arial", "", 8)
		doc.CellFormat(0, 5, company.FooterText, "", 1, "C", false, 0, "")
		doc.CellFormat(0, 5, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 10, "Quote Number: "+rec.QuoteNumber, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 10, "Date: "+rec.Date, "", 1, "L", false, 0, "")

	doc.Ln(5)
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 10, "CLIENT INFORMATION", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 10)
	client := rec.ClientInfo
	for _, f := range []struct{ label, value string }{
		{"Name", client.Name},
		{"Phone", client.Phone},
		{"Email", client.Email},
		{"Address", client.Address},
	} {
		if f.value == "" {
			continue
		}
		doc.CellFormat(0, 10, f.label+": "+f.value, "", 1, "L", false, 0, "")
	}

	doc.Ln(10)
	colWidths := [4]float64{100, 30, 30, 30}
	headers := [4]string{"Description", "Unit Cost", "Quantity", "Amount"}

	r, gc, b := hexToRGB(company.ThemeColor)
	doc.SetFillColor(r, gc, b)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Arial", "B", 10)
	for i, h := range headers {
		doc.CellFormat(colWidths[i], 10, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Arial", "", 10)
	for _, it := range rec.Items {
		doc.CellFormat(colWidths[0], 10, truncate(it.Description, maxDescriptionChars), "1", 0, "L", false, 0, "")
		doc.CellFormat(colWidths[1], 10, money.Sprintf("%.2f", it.UnitCost), "1", 0, "R", false, 0, "")
		doc.CellFormat(colWidths[2], 10, money.Sprintf("%.2f", it.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(colWidths[3], 10, money.Sprintf("%.2f", it.Amount), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 10, "Total:", "1", 0, "R", false, 0, "")
	doc.CellFormat(colWidths[3], 10, money.Sprintf("%.2f", rec.Total), "1", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quotation %s: %w", rec.QuoteNumber, err)
	}
	return buf.Bytes(), nil
}

// hexToRGB decodes a #RRGGBB theme color. Anything that is not exactly
// six hex digits after the optional # decodes to black.
func hexToRGB(s string) (int, int, int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
