package mask_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScarMeireles/JuntosMais/internal/mask"
)

func TestCPF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"letters only", "abc", ""},
		{"partial three", "123", "123"},
		{"partial five", "12345", "123.45"},
		{"partial eight", "12345678", "123.456.78"},
		{"full", "12345678901", "123.456.789-01"},
		{"truncates excess", "123456789019999", "123.456.789-01"},
		{"idempotent on masked input", "123.456.789-01", "123.456.789-01"},
		{"mixed noise", "12a34.5b678-901", "123.456.789-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mask.CPF(tt.in))
		})
	}
}

func TestCPFSeparatorOffsets(t *testing.T) {
	// Any 11+ digit input must end up with dots at offsets 3 and 7 and the
	// dash at offset 11.
	got := mask.CPF("99999999999999")
	require.Len(t, got, 14)
	assert.Equal(t, byte('.'), got[3])
	assert.Equal(t, byte('.'), got[7])
	assert.Equal(t, byte('-'), got[11])
}

func TestZipCode(t *testing.T) {
	assert.Equal(t, "", mask.ZipCode(""))
	assert.Equal(t, "12345", mask.ZipCode("12345"))
	assert.Equal(t, "12345-678", mask.ZipCode("12345678"))
	assert.Equal(t, "12345-678", mask.ZipCode("12345-6789999"))
}

func TestState(t *testing.T) {
	assert.Equal(t, "SP", mask.State("sp"))
	assert.Equal(t, "RJ", mask.State("Rj"))
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"5", "0,05"},
		{"50", "0,50"},
		{"1000", "10,00"},
		{"5000", "50,00"},
		{"123456", "1.234,56"},
		{"123456789", "1.234.567,89"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mask.Amount(tt.in), "input %q", tt.in)
	}
}

func TestAmountIdempotentThroughDigits(t *testing.T) {
	// Re-masking a masked value must not change it.
	masked := mask.Amount("5000")
	assert.Equal(t, masked, mask.Amount(masked))
}

func TestParseAmount(t *testing.T) {
	got, err := mask.ParseAmount("1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", got.String())

	got, err = mask.ParseAmount("50,00")
	require.NoError(t, err)
	assert.True(t, got.Equal(got.Truncate(2)))
	assert.Equal(t, "50", got.String())

	_, err = mask.ParseAmount("")
	assert.Error(t, err)

	_, err = mask.ParseAmount("abc")
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "50,00", mask.FormatAmount(decimal.RequireFromString("50")))
	assert.Equal(t, "1.234,56", mask.FormatAmount(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "0,05", mask.FormatAmount(decimal.RequireFromString("0.05")))
}

func TestFormatParseRoundTrip(t *testing.T) {
	display := mask.FormatAmount(decimal.RequireFromString("9876.54"))
	parsed, err := mask.ParseAmount(display)
	require.NoError(t, err)
	assert.Equal(t, "9876.54", parsed.String())
}
