package gofpdf

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obiene/quotation_backend/internal/domain/quotation"
)

func TestHexToRGB(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b int
	}{
		{"#4A90E2", 74, 144, 226},
		{"4A90E2", 74, 144, 226},
		{"#ffffff", 255, 255, 255},
		{"#000000", 0, 0, 0},
		{"notacolor", 0, 0, 0},
		{"#FFF", 0, 0, 0},
		{"zzzzzz", 0, 0, 0},
		{"", 0, 0, 0},
	}
	for _, tc := range cases {
		r, g, b := hexToRGB(tc.in)
		assert.Equal(t, []int{tc.r, tc.g, tc.b}, []int{r, g, b}, "input %q", tc.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	long := strings.Repeat("x", 80)
	assert.Equal(t, strings.Repeat("x", 50), truncate(long, 50))
	assert.Equal(t, "héllo", truncate("héllo", 5))
}

func sampleRecord() quotation.Record {
	return quotation.Record{
		QuoteNumber: "000001",
		Date:        "15-01-2026",
		ClientInfo:  quotation.ClientInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Items: []quotation.LineItem{
			{Description: "Consulting", UnitCost: 100, Quantity: 2, Amount: 200},
		},
		Total: 200,
		CompanyInfo: quotation.CompanyInfo{
			Name:       "Acme Ltd",
			Address:    "1 Main Street",
			Phone:      "+254 700 000 000",
			Email:      "info@acme.example",
			FooterText: "Thank you for your business!",
			ThemeColor: "#4A90E2",
		},
	}
}

func TestGenerateProducesPDF(t *testing.T) {
	out, err := New().Generate(sampleRecord())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateWithLogo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 120, 60))))

	rec := sampleRecord()
	rec.CompanyInfo.Logo = buf.Bytes()

	out, err := New().Generate(rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateManyItemsPaginates(t *testing.T) {
	rec := sampleRecord()
	rec.Items = nil
	for i := 0; i < 60; i++ {
		rec.Items = append(rec.Items, quotation.LineItem{
			Description: strings.Repeat("long description ", 5),
			UnitCost:    10,
			Quantity:    1,
			Amount:      10,
		})
	}
	out, err := New().Generate(rec)
	require.NoError(t, err)
	// "/Type /Pages" matches once; each page object adds another match,
	// so anything above 2 means the table overflowed onto a second page
	assert.Greater(t, bytes.Count(out, []byte("/Type /Page")), 2)
}

func TestGenerateBadThemeColorFallsBack(t *testing.T) {
	rec := sampleRecord()
	rec.CompanyInfo.ThemeColor = "notacolor"
	out, err := New().Generate(rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
