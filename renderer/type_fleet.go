package renderer

import (
	"strings"

	"github.com/etnz/fleet"
)

// Fleet is the data of the fleet report.
// Numbers are handled using the exact decimal types (Money, Percent)
// So that they already contain basics renderers.
type Fleet struct {
	// Title of the report.
	Title string
	// Currency of all amounts.
	Currency string
	// Boats in fleet order.
	Boats []FleetBoat
	// TotalPaid is the sum of all purchase prices.
	TotalPaid fleet.Money
	// TotalSpent is the sum of all expenses.
	TotalSpent fleet.Money
	// TotalRemaining is the budget left over the whole fleet.
	TotalRemaining fleet.Money
	// Used is the share of the total budget already spent.
	Used fleet.Percent
}

// FleetBoat represents a single boat line of the report.
type FleetBoat struct {
	Category  string
	Name      string
	Year      int
	MakeModel string
	Length    int
	Price     fleet.Money
	Spent     fleet.Money
	Remaining fleet.Money
	Used      fleet.Percent
}

// NewFleet builds the report data of 'f'.
func NewFleet(f *fleet.Fleet) *Fleet {
	paid, spent := f.Totals()
	r := &Fleet{
		Title:          "Fleet report",
		Currency:       f.Currency(),
		Boats:          make([]FleetBoat, 0, f.Len()),
		TotalPaid:      paid,
		TotalSpent:     spent,
		TotalRemaining: paid.Sub(spent),
		Used:           fleet.PercentOf(spent, paid),
	}
	for _, b := range f.List() {
		r.Boats = append(r.Boats, FleetBoat{
			Category:  b.Category().String(),
			Name:      escapeCell(b.Name()),
			Year:      b.Year(),
			MakeModel: escapeCell(b.MakeModel()),
			Length:    b.Length(),
			Price:     b.Price(),
			Spent:     b.Spent(),
			Remaining: b.Remaining(),
			Used:      b.Used(),
		})
	}
	return r
}

// escapeCell makes 's' safe inside a markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
