package parse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount converts a raw amount string to a decimal, reconciling the number
// formats found in bank exports: French decimal commas ("1 234,56"),
// English decimals with comma thousands ("1,234.56"), mixed European
// thousands ("1.234,56") and accounting parentheses for negatives
// ("(12,30)"). Blank or unparseable input yields the absent value
// (Valid=false), never an error.
func Amount(raw string) decimal.NullDecimal {
	text := strings.TrimSpace(raw)
	if text == "" {
		return decimal.NullDecimal{}
	}

	negative := false
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		negative = true
		text = text[1 : len(text)-1]
	}

	// Spaces and non-breaking spaces are thousands separators.
	text = strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return -1
		}
		return r
	}, text)

	// Decimal-separator disambiguation. A lone comma with no period is a
	// decimal comma; a comma after the last period means periods are
	// thousands separators.
	if strings.Count(text, ",") == 1 && !strings.Contains(text, ".") {
		text = strings.Replace(text, ",", ".", 1)
	}
	if strings.Contains(text, ",") && strings.Contains(text, ".") &&
		strings.LastIndex(text, ",") > strings.LastIndex(text, ".") {
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	}

	// Drop currency symbols and any other decoration.
	text = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '+', r == '-':
			return r
		default:
			return -1
		}
	}, text)
	text = strings.TrimSuffix(text, ".")

	if text == "" || text == "+" || text == "-" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.NullDecimal{}
	}
	if negative {
		// The parentheses carry the sign; ignore any sign that survived
		// inside them so the value is not negated twice.
		d = d.Abs().Neg()
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
