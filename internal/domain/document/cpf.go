// Package document validates Brazilian taxpayer identifiers.
package document

import "strings"

// CPFLength is the number of digits of a CPF, check digits included.
const CPFLength = 11

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether s holds a CPF with correct check digits.
// Punctuation is ignored. Sequences of a single repeated digit are rejected.
func ValidCPF(s string) bool {
	cpf := Digits(s)
	if len(cpf) != CPFLength {
		return false
	}

	d := make([]int, CPFLength)
	allEqual := true
	for i := 0; i < CPFLength; i++ {
		d[i] = int(cpf[i] - '0')
		if d[i] != d[0] {
			allEqual = false
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(d[:9], 10) == d[9] && checkDigit(d[:10], 11) == d[10]
}

// checkDigit weights digits from startWeight down to 2.
func checkDigit(digits []int, startWeight int) int {
	sum := 0
	for i, v := range digits {
		sum += v * (startWeight - i)
	}
	r := (sum * 10) % 11
	if r == 10 || r == 11 {
		return 0
	}
	return r
}
