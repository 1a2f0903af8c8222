package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidNationalID tests the CPF checksum validator
func TestValidNationalID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"punctuated valid", "529.982.247-25", true},
		{"bare valid", "52998224725", true},
		{"another valid", "111.444.777-35", true},
		{"check digit zero", "123.456.789-09", true},
		{"wrong first check digit", "529.982.247-35", false},
		{"wrong second check digit", "529.982.247-26", false},
		{"repeated digits", "111.111.111-11", false},
		{"too short", "5299822472", false},
		{"too long", "529982247250", false},
		{"empty", "", false},
		{"letters only", "abc.def.ghi-jk", false},
		{"mixed noise", " 529-982/247.25 ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidNationalID(tt.input))
		})
	}
}

// TestValidNationalID_AllSameDigitsRejected tests that every repeated-digit CPF fails
func TestValidNationalID_AllSameDigitsRejected(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), NationalIDLength)
		assert.False(t, ValidNationalID(cpf), "expected %s to be rejected", cpf)
	}
}

// TestFormatNationalID tests the punctuated display form
func TestFormatNationalID(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatNationalID("52998224725"))
	assert.Equal(t, "529.982.247-25", FormatNationalID("529.982.247-25"))
	assert.Equal(t, "1234", FormatNationalID("1234"))
	assert.Equal(t, "12-34", FormatNationalID("12-34"))
	assert.Equal(t, "", FormatNationalID(""))
}

// TestFormatNationalID_RoundTrip tests that formatted CPFs validate again once stripped
func TestFormatNationalID_RoundTrip(t *testing.T) {
	for _, cpf := range []string{"52998224725", "11144477735", "12345678909"} {
		formatted := FormatNationalID(cpf)
		assert.True(t, ValidNationalID(StripNonDigits(formatted)), formatted)
		assert.Equal(t, cpf, StripNonDigits(formatted))
	}
}

// TestStripNonDigits tests removal of punctuation and non-ASCII digits
func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "52998224725", StripNonDigits("529.982.247-25"))
	assert.Equal(t, "", StripNonDigits("no digits"))
	assert.Equal(t, "12", StripNonDigits("1٣2"))
}
