package fleet

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used by a fleet when none is configured.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a new Money from any numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a decimal amount like "2500000.00" in the given currency.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// IsKnownCurrency reports whether code is an ISO currency known to the formatter.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "$2,500,000.00".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Truncate(0)
	if minor.LessThan(minMinor) || minor.GreaterThan(maxMinor) {
		return formatDecimal(cur.Formatter(), m.value)
	}
	return cur.Formatter().Format(minor.IntPart())
}

// bounds of an amount in minor units that the money formatter can handle.
var (
	minMinor = decimal.NewFromInt(math.MinInt64)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// formatDecimal lays out 'd' the way f.Format does, without the int64 limit.
func formatDecimal(f *money.Formatter, d decimal.Decimal) string {
	digits := d.Abs().Truncate(int32(f.Fraction)).StringFixed(int32(f.Fraction))
	units, fraction, _ := strings.Cut(digits, ".")
	for i := len(units) - 3; i > 0; i -= 3 {
		units = units[:i] + f.Thousand + units[i:]
	}
	amount := units
	if f.Fraction > 0 {
		amount += f.Decimal + fraction
	}
	result := strings.Replace(f.Template, "1", amount, 1)
	result = strings.Replace(result, "$", f.Grapheme, 1)
	if d.IsNegative() {
		result = "-" + result
	}
	return result
}

// Symbol returns the currency symbol, e.g. "$" or "€".
func (m Money) Symbol() string { return m.currency().Grapheme }

// Fixed returns the amount with two decimals and no currency symbol, e.g. "2500000.00".
func (m Money) Fixed() string { return m.value.StringFixed(2) }

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
