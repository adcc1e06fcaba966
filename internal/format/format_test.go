package format

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R 0,00"},
		{"5", "R 5,00"},
		{"999.9", "R 999,90"},
		{"1234.56", "R 1 234,56"},
		{"1000000", "R 1 000 000,00"},
		{"12345.675", "R 12 345,68"},
		{"-2300", "-R 2 300,00"},
		{"-0.001", "R 0,00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Price(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, strings.ReplaceAll(got, "\u00a0", " "))
		})
	}

	assert.Equal(t, "R\u00a01\u00a0234,56", Price(decimal.RequireFromString("1234.56")))
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"iPhone 13 Pro":           "iphone-13-pro",
		"  Air Force 1 '07  ":     "air-force-1-07",
		"Crème Brûlée Édition":    "creme-brulee-edition",
		"Nike & Adidas -- Collab": "nike-adidas-collab",
		"USB-C Cable (1 m)":       "usb-c-cable-1-m",
		"!!!":                     "",
		// Tabs and newlines separate words too; edge hyphens are trimmed.
		"tab\tsep":    "tab-sep",
		"line\nbreak": "line-break",
		"-edge-":      "edge",
		"Café":        "cafe",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Slug(in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "Hello...", Truncate("Hello world", 5))
	assert.Equal(t, "Crè...", Truncate("Crème brûlée", 3))
	assert.Equal(t, "...", Truncate("abc", -1))
}

func TestMeta(t *testing.T) {
	assert.Equal(t, "Samba OG | The Jar Co", MetaTitle("Samba OG", "The Jar Co"))
	assert.Equal(t, "Samba OG", MetaTitle("Samba OG", ""))

	long := strings.Repeat("a", 200)
	assert.Equal(t, strings.Repeat("a", 160)+"...", MetaDescription(long, 0))
	assert.Equal(t, "abc...", MetaDescription("abcdef", 3))
	assert.Equal(t, "short", MetaDescription("short", 0))
}

func TestDates(t *testing.T) {
	ts := time.Date(2026, time.October, 14, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "14 October 2026", Date(ts))
	assert.Equal(t, "14 Oct 2026, 09:05", DateTime(ts))
	assert.Equal(t, "1 March 2026", Date(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidators(t *testing.T) {
	for _, s := range []string{"a@b.co", "first.last@shop.co.za"} {
		assert.True(t, IsValidEmail(s), s)
	}
	for _, s := range []string{"", "nobody", "a@b", "a b@c.d", "@b.co"} {
		assert.False(t, IsValidEmail(s), s)
	}

	for _, s := range []string{"0821234567", "+27 82 123 4567", "071 234 5678", "0612345678"} {
		assert.True(t, IsValidPhoneNumber(s), s)
	}
	for _, s := range []string{"0521234567", "082123456", "+2782123456789", "27821234567", "082-123-4567"} {
		assert.False(t, IsValidPhoneNumber(s), s)
	}

	assert.True(t, IsValidPostalCode("8001"))
	assert.True(t, IsValidPostalCode("0157"))
	assert.False(t, IsValidPostalCode("800"))
	assert.False(t, IsValidPostalCode("80012"))
	assert.False(t, IsValidPostalCode("80a1"))
}
