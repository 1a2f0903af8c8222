package domain

import "strings"

// NationalIDLength is the number of digits in a CPF.
const NationalIDLength = 11

// StripNonDigits removes every character that is not an ASCII digit.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidNationalID reports whether s is a valid CPF once punctuation is
// stripped: exactly 11 digits, not all identical, and both trailing check
// digits correct.
func ValidNationalID(s string) bool {
	digits := StripNonDigits(s)
	if len(digits) != NationalIDLength || allSame(digits) {
		return false
	}

	d := make([]int, NationalIDLength)
	for i := range digits {
		d[i] = int(digits[i] - '0')
	}

	return checkDigit(d[:9], 10) == d[9] && checkDigit(d[:10], 11) == d[10]
}

// checkDigit weighs digits from firstWeight down to 2 and reduces the sum
// mod 11; remainders of 10 count as 0.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, v := range digits {
		sum += v * (firstWeight - i)
	}
	rem := (sum * 10) % 11
	if rem >= 10 {
		return 0
	}
	return rem
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// FormatNationalID renders an 11-digit CPF as XXX.XXX.XXX-XX. Input that
// is not 11 digits after stripping is returned unchanged. No checksum is
// verified.
func FormatNationalID(s string) string {
	digits := StripNonDigits(s)
	if len(digits) != NationalIDLength {
		return s
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}
