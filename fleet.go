package fleet

import (
	"fmt"
	"slices"
	"strings"
)

// Fleet is an ordered collection of boats.
//
// Boats are kept in insertion order. Names are not unique, operations by
// name address the first boat whose name matches, ignoring case.
//
// A Fleet is not safe for concurrent use.
type Fleet struct {
	currency string
	boats    []*Boat
}

// NewFleet creates an empty fleet whose amounts are in currency.
func NewFleet(currency string) *Fleet {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Fleet{currency: currency, boats: make([]*Boat, 0)}
}

// Currency returns the currency of all amounts in the fleet.
func (f *Fleet) Currency() string { return f.currency }

// Len returns the number of boats.
func (f *Fleet) Len() int { return len(f.boats) }

// List returns the boats in insertion order.
//
// The returned slice is a copy, but the boats are the fleet's own.
func (f *Fleet) List() []*Boat { return slices.Clone(f.boats) }

// Boat returns the boat at index i.
func (f *Fleet) Boat(i int) *Boat { return f.boats[i] }

// Totals returns the sum of purchase prices and the sum of expenses.
func (f *Fleet) Totals() (paid, spent Money) {
	paid, spent = M(0, f.currency), M(0, f.currency)
	for _, b := range f.boats {
		paid = paid.Add(b.price)
		spent = spent.Add(b.spent)
	}
	return paid, spent
}

// Append adds a boat at the end of the fleet.
func (f *Fleet) Append(b *Boat) {
	f.boats = append(f.boats, b)
}

// AddRecord parses a new boat from its textual fields and appends it.
//
// Nothing is added if any field is invalid.
func (f *Fleet) AddRecord(category, name, year, makeModel, length, price string) error {
	b, err := ParseBoat([]string{category, name, year, makeModel, length, price}, f.currency)
	if err != nil {
		return err
	}
	f.Append(b)
	return nil
}

// IndexOf returns the index of the first boat named name, ignoring case, or -1.
func (f *Fleet) IndexOf(name string) int {
	return slices.IndexFunc(f.boats, func(b *Boat) bool {
		return strings.EqualFold(b.name, name)
	})
}

// FindByName returns the first boat named name, ignoring case.
//
// The boat is the fleet's own: expenses added to it are seen by the fleet.
func (f *Fleet) FindByName(name string) (*Boat, bool) {
	i := f.IndexOf(name)
	if i < 0 {
		return nil, false
	}
	return f.boats[i], true
}

// RemoveByName removes the first boat named name, ignoring case.
// It returns false if there is no such boat.
func (f *Fleet) RemoveByName(name string) bool {
	i := f.IndexOf(name)
	if i < 0 {
		return false
	}
	f.boats = slices.Delete(f.boats, i, i+1)
	return true
}

// Outcome is the result of spending on a boat.
type Outcome struct {
	Boat       *Boat
	Amount     Money
	Authorized bool  // false if the amount exceeded the remaining budget
	Remaining  Money // remaining budget after the operation
}

// SpendOn spends amount on the first boat named name.
//
// It returns ErrBoatNotFound if there is no such boat. A declined expense is
// not an error: the Outcome reports it with the remaining budget.
func (f *Fleet) SpendOn(name string, amount Money) (Outcome, error) {
	i := f.IndexOf(name)
	if i < 0 {
		return Outcome{}, fmt.Errorf("%w: %q", ErrBoatNotFound, name)
	}
	return f.SpendOnIndex(i, amount)
}

// SpendOnIndex spends amount on the boat at index i.
func (f *Fleet) SpendOnIndex(i int, amount Money) (Outcome, error) {
	if i < 0 || i >= len(f.boats) {
		return Outcome{}, fmt.Errorf("%w: no boat at index %d", ErrBoatNotFound, i)
	}
	if amount.IsNegative() {
		return Outcome{}, fmt.Errorf("%w: %s", ErrNegativeExpense, amount.Fixed())
	}
	b := f.boats[i]
	ok := b.AddExpense(amount)
	return Outcome{Boat: b, Amount: amount, Authorized: ok, Remaining: b.Remaining()}, nil
}

// replace swaps the fleet content with the boats of g.
func (f *Fleet) replace(g *Fleet) {
	f.currency = g.currency
	f.boats = g.boats
}
