package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompany() CompanyInfo {
	return CompanyInfo{
		Name:       "Acme Ltd",
		FooterText: "Thank you for your business!",
		ThemeColor: "#4A90E2",
	}
}

func TestAddOrUpdateItemComputesAmount(t *testing.T) {
	cases := []struct {
		unitCost, quantity string
		amount             float64
	}{
		{"100", "2", 200},
		{"0", "5", 0},
		{"19.99", "3", 59.97},
		{" 10 ", "0.5", 5},
	}
	for _, tc := range cases {
		s := NewSession(testCompany(), 1)
		item, err := s.AddOrUpdateItem("Consulting", tc.unitCost, tc.quantity)
		require.NoError(t, err)
		assert.InDelta(t, tc.amount, item.Amount, 1e-9)
		assert.Len(t, s.Items(), 1)
	}
}

func TestAddOrUpdateItemEmptyDescription(t *testing.T) {
	s := NewSession(testCompany(), 1)
	_, err := s.AddOrUpdateItem("   ", "10", "1")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, s.Items())
}

func TestAddOrUpdateItemBadNumbers(t *testing.T) {
	s := NewSession(testCompany(), 1)
	for _, tc := range [][2]string{
		{"abc", "1"},
		{"10", "abc"},
		{"", "1"},
		{"-5", "1"},
		{"10", "-1"},
	} {
		_, err := s.AddOrUpdateItem("Widget", tc[0], tc[1])
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "unit_cost=%q quantity=%q", tc[0], tc[1])
	}
	assert.Empty(t, s.Items())
}

func TestBeginEditReplacesSlot(t *testing.T) {
	s := NewSession(testCompany(), 1)
	_, err := s.AddOrUpdateItem("First", "10", "1")
	require.NoError(t, err)
	_, err = s.AddOrUpdateItem("Second", "20", "1")
	require.NoError(t, err)

	item, err := s.BeginEdit(0)
	require.NoError(t, err)
	assert.Equal(t, "First", item.Description)
	assert.Equal(t, 0, s.EditIndex())

	_, err = s.AddOrUpdateItem("First revised", "15", "2")
	require.NoError(t, err)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "First revised", items[0].Description)
	assert.InDelta(t, 30, items[0].Amount, 1e-9)
	assert.Equal(t, "Second", items[1].Description)

	// edit target is consumed; the next add appends again
	assert.Equal(t, -1, s.EditIndex())
	_, err = s.AddOrUpdateItem("Third", "1", "1")
	require.NoError(t, err)
	assert.Len(t, s.Items(), 3)
}

func TestBeginEditOutOfRange(t *testing.T) {
	s := NewSession(testCompany(), 1)
	_, err := s.BeginEdit(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDeleteItemPreservesOrder(t *testing.T) {
	s := NewSession(testCompany(), 1)
	for _, d := range []string{"a", "b", "c"} {
		_, err := s.AddOrUpdateItem(d, "1", "1")
		require.NoError(t, err)
	}
	require.NoError(t, s.DeleteItem(1))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Description)
	assert.Equal(t, "c", items[1].Description)
}

func TestDeleteItemOutOfRange(t *testing.T) {
	s := NewSession(testCompany(), 1)
	_, err := s.AddOrUpdateItem("a", "1", "1")
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteItem(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.DeleteItem(-1), ErrIndexOutOfRange)
	assert.Len(t, s.Items(), 1)
}

func TestClearKeepsCompanyAndCounter(t *testing.T) {
	s := NewSession(testCompany(), 7)
	_, err := s.AddOrUpdateItem("a", "1", "1")
	require.NoError(t, err)
	s.SetClient(ClientInfo{Name: "Jane Doe", Phone: "123"})

	s.Clear()

	assert.Empty(t, s.Items())
	assert.Equal(t, ClientInfo{}, s.Client())
	assert.Equal(t, testCompany(), s.Company())
	assert.Equal(t, 7, s.NextNumber())
}

func TestSetCompanyKeepsLogo(t *testing.T) {
	s := NewSession(testCompany(), 1)
	s.SetLogo([]byte{1, 2, 3})

	updated := testCompany()
	updated.Name = "Acme Rebranded"
	s.SetCompany(updated)

	assert.Equal(t, "Acme Rebranded", s.Company().Name)
	assert.Equal(t, []byte{1, 2, 3}, s.Company().Logo)
}
