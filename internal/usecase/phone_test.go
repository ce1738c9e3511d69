package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhonesMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"country code on event side", "+55 11 99999-0000", "11999990000", true},
		{"country code on order side", "11999990000", "+55 11 99999-0000", true},
		{"identical formatted", "(11) 99999-0000", "11 999990000", true},
		{"different numbers", "+55 11 99999-0000", "11988880000", false},
		{"eight digit suffix accepted", "5511999990000", "99990000", true},
		{"short suffix rejected", "5511999990000", "0000", false},
		{"seven digit suffix rejected", "5511999990000", "9990000", false},
		{"empty side", "", "11999990000", false},
		{"no digits", "n/a", "n/a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phonesMatch(tt.a, tt.b))
		})
	}
}

func TestDigitsOnlyAndEmail(t *testing.T) {
	assert.Equal(t, "5511999990000", digitsOnly("+55 (11) 99999-0000"))
	assert.Equal(t, "a@b.com", normalizeEmail("  A@B.Com "))
}
