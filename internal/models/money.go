package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// ErrInvalidPrice is returned when a formatted price cannot be parsed.
var ErrInvalidPrice = errors.New("invalid price")

// Money is an amount in a single currency.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// NewMoney builds a Money value. A zero currency unit falls back to USD.
func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	if unit == (currency.Unit{}) {
		unit = currency.USD
	}
	return Money{Amount: amount, Currency: unit}
}

// String formats the amount with its currency symbol and two decimals, e.g. "$19.98".
func (m Money) String() string {
	sym := symbol(m.Currency)
	if m.Amount.IsNegative() {
		return "-" + sym + m.Amount.Neg().StringFixed(2)
	}
	return sym + m.Amount.StringFixed(2)
}

// FormatPrice formats a bare amount in the given currency.
func FormatPrice(amount decimal.Decimal, unit currency.Unit) string {
	return NewMoney(amount, unit).String()
}

func symbol(u currency.Unit) string {
	switch u {
	case currency.USD, currency.Unit{}:
		return "$"
	case currency.EUR:
		return "€"
	case currency.GBP:
		return "£"
	case currency.JPY:
		return "¥"
	default:
		return u.String() + " "
	}
}

// priceNumber is a single unsigned amount, optionally with comma thousands groups.
var priceNumber = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d+)(\.\d+)?$|^\.\d+$`)

// ParsePrice reads a currency-formatted string such as "$1,299.99" or "-$5.00" into a
// decimal. Currency symbols, codes and words around the amount are ignored; the rest
// must be exactly one number.
func ParsePrice(s string) (decimal.Decimal, error) {
	t := strings.TrimSpace(s)
	negative := strings.HasPrefix(t, "-")
	t = strings.TrimPrefix(t, "-")
	t = strings.TrimFunc(t, isPriceDecoration)
	if strings.HasPrefix(t, "-") {
		if negative {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
		}
		negative = true
		t = t[1:]
	}
	if !priceNumber.MatchString(t) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(t, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

func isPriceDecoration(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsLetter(r) || unicode.Is(unicode.Sc, r)
}
