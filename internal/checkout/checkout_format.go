package checkout

import "strings"

// FormatCardNumber groups digits into 4-digit blocks and caps the result
// at 16 digits plus 3 spaces. Pure string transform for form echoing.
func FormatCardNumber(value string) string {
	cleaned := strings.ReplaceAll(value, " ", "")

	var blocks []string
	for i := 0; i < len(cleaned); i += 4 {
		end := i + 4
		if end > len(cleaned) {
			end = len(cleaned)
		}
		blocks = append(blocks, cleaned[i:end])
	}

	formatted := strings.Join(blocks, " ")
	if len(formatted) > 19 {
		formatted = formatted[:19]
	}
	return formatted
}

// FormatExpiryDate strips non-digits and reformats to MM/YY once two or
// more digits are present.
func FormatExpiryDate(value string) string {
	var cleaned strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			cleaned.WriteRune(r)
		}
	}

	digits := cleaned.String()
	if len(digits) >= 2 {
		month := digits[:2]
		year := digits[2:]
		if len(year) > 2 {
			year = year[:2]
		}
		return month + "/" + year
	}
	return digits
}
