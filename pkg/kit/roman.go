package kit

import "strings"

var romanSteps = []struct {
	symbol string
	value  int
}{
	{"M", 1000}, {"CM", 900}, {"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90}, {"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9}, {"V", 5}, {"IV", 4}, {"I", 1},
}

var romanDigits = map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}

// GenerateRoman converts n to Roman numerals. Non-positive input yields "".
func GenerateRoman(n int) string {
	var b strings.Builder
	for _, step := range romanSteps {
		for n >= step.value {
			b.WriteString(step.symbol)
			n -= step.value
		}
	}
	return b.String()
}

// GenerateNumeral converts a Roman numeral (any case) back to an integer.
// Unknown characters count as zero.
func GenerateNumeral(roman string) int {
	roman = strings.ToUpper(roman)
	total := 0
	for i := len(roman) - 1; i >= 0; i-- {
		value := romanDigits[roman[i]]
		if i+1 < len(roman) && value < romanDigits[roman[i+1]] {
			total -= value
		} else {
			total += value
		}
	}
	return total
}
