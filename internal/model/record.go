package model

import (
	"github.com/shopspring/decimal"
)

// Record is one normalized bank transaction line, independent of the source
// file's headers, delimiter, or locale. Debit and Credit carry their own
// presence flag: an absent amount is not the same thing as 0.00.
type Record struct {
	BookingDate   string // ISO-8601 when parseable, otherwise the raw source string
	ShortLabel    string
	FullLabel     string
	Reference     string
	ExtraInfo     string
	OperationType string
	Category      string
	Subcategory   string
	Debit         decimal.NullDecimal // non-negative, money leaving the account
	Credit        decimal.NullDecimal // non-negative, money entering the account
}

// Amount returns Credit - Debit, treating absent sides as zero.
func (r Record) Amount() decimal.Decimal {
	var d, c decimal.Decimal
	if r.Debit.Valid {
		d = r.Debit.Decimal
	}
	if r.Credit.Valid {
		c = r.Credit.Decimal
	}
	return c.Sub(d)
}
