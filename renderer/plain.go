package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fleet"
)

// FleetPlain renders the fleet report of 'f' as fixed width text, one boat per line
// followed by the totals.
func FleetPlain(f *fleet.Fleet) string {
	var b strings.Builder
	fmt.Fprintln(&b, "Fleet report:")
	for _, boat := range f.List() {
		fmt.Fprintf(&b, "\t%s\n", boat)
	}
	paid, spent := f.Totals()
	sym := paid.Symbol()
	fmt.Fprintf(&b, "\t%-49s : Paid %s%10s : Spent %s%10s\n", "Total", sym, paid.Fixed(), sym, spent.Fixed())
	return b.String()
}

// Outcome renders the result of an expense.
func Outcome(o fleet.Outcome) string {
	if o.Authorized {
		return fmt.Sprintf("Expense authorized, %s%s spent.", o.Amount.Symbol(), o.Amount.Fixed())
	}
	return fmt.Sprintf("Expense not permitted, only %s%s left to spend.", o.Remaining.Symbol(), o.Remaining.Fixed())
}
