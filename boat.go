package fleet

import (
	"fmt"
	"strconv"
	"strings"
)

// Boat is one boat of the fleet with its purchase budget.
//
// The identity of a boat never changes after creation; only the amount
// spent on it grows, through AddExpense.
type Boat struct {
	category  Category
	name      string
	year      int
	makeModel string
	length    int // in feet
	price     Money
	spent     Money
}

// NewBoat creates a boat that has no expenses yet.
func NewBoat(category Category, name string, year int, makeModel string, length int, price Money) (*Boat, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativePrice, price.Fixed())
	}
	return &Boat{
		category:  category,
		name:      name,
		year:      year,
		makeModel: makeModel,
		length:    length,
		price:     price,
		spent:     M(0, price.Currency()),
	}, nil
}

// ParseBoat creates a boat from the textual fields
// category, name, year, make and model, length in feet and purchase price.
//
// Fields after the sixth are ignored. The boat has no expenses.
func ParseBoat(fields []string, currency string) (*Boat, error) {
	if len(fields) < 6 {
		return nil, &ParseError{Err: fmt.Errorf("%w: want 6 fields, got %d", ErrMalformedRecord, len(fields))}
	}
	category, err := ParseCategory(fields[0])
	if err != nil {
		return nil, &ParseError{Field: "category", Value: fields[0], Err: err}
	}
	year, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, &ParseError{Field: "year", Value: fields[2], Err: err}
	}
	length, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return nil, &ParseError{Field: "length", Value: fields[4], Err: err}
	}
	price, err := ParseMoney(fields[5], currency)
	if err != nil {
		return nil, &ParseError{Field: "price", Value: fields[5], Err: err}
	}
	b, err := NewBoat(category, strings.TrimSpace(fields[1]), year, strings.TrimSpace(fields[3]), length, price)
	if err != nil {
		return nil, &ParseError{Field: "price", Value: fields[5], Err: err}
	}
	return b, nil
}

func (b *Boat) Category() Category { return b.category }
func (b *Boat) Name() string       { return b.name }
func (b *Boat) Year() int          { return b.year }
func (b *Boat) MakeModel() string  { return b.makeModel }
func (b *Boat) Length() int        { return b.length }
func (b *Boat) Price() Money       { return b.price }
func (b *Boat) Spent() Money       { return b.spent }

// Remaining returns the budget left to spend on the boat.
func (b *Boat) Remaining() Money { return b.price.Sub(b.spent) }

// AddExpense spends amount on the boat if it fits in the remaining budget.
// It returns false, leaving the boat unchanged, otherwise.
func (b *Boat) AddExpense(amount Money) bool {
	if amount.GreaterThan(b.Remaining()) {
		return false
	}
	b.spent = b.spent.Add(amount)
	return true
}

// String returns a fixed width description of the boat, amounts prefixed
// with the currency symbol.
func (b *Boat) String() string {
	sym := b.price.Symbol()
	return fmt.Sprintf("%-7s %-20s %4d %-10s %3d' : Paid %s%10s : Spent %s%10s",
		b.category, b.name, b.year, b.makeModel, b.length, sym, b.price.Fixed(), sym, b.spent.Fixed())
}

// Used returns the share of the purchase price already spent.
func (b *Boat) Used() Percent { return PercentOf(b.spent, b.price) }
