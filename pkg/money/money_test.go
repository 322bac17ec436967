package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRupees(t *testing.T) {
	assert.Equal(t, Amount(250000), FromRupees(2500))
	assert.Equal(t, Amount(1999), FromRupees(19.99))
	assert.Equal(t, Amount(1), FromRupees(0.005))
}

func TestFormat(t *testing.T) {
	cases := map[Amount]string{
		0:         "Rs 0.00",
		30000:     "Rs 300.00",
		123400:    "Rs 1,234.00",
		123456789: "Rs 1,234,567.89",
		-45050:    "Rs -450.50",
		100000000: "Rs 1,000,000.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, Format(in))
	}
}

func TestPercent(t *testing.T) {
	ten := decimal.NewFromInt(10)
	assert.Equal(t, FromRupees(350), FromRupees(3500).Percent(ten))
	// 10% of Rs 0.05 is half a paisa and rounds away from zero
	assert.Equal(t, Amount(1), Amount(5).Percent(ten))
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(struct {
		P Amount `json:"p"`
	}{P: FromRupees(1234.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":1234.50}`, string(b))

	var got struct {
		P Amount `json:"p"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"p":99.99}`), &got))
	assert.Equal(t, Amount(9999), got.P)
}
