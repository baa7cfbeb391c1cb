package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fleet"
	"github.com/etnz/fleet/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type spendCmd struct{}

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "spend an amount on a boat, within its remaining budget" }
func (*spendCmd) Usage() string {
	return `fms spend <name> <amount>

  Spends the amount on the first boat with this name, ignoring case.
  The expense is declined if it exceeds the remaining budget of the boat.
`
}

func (*spendCmd) SetFlags(*flag.FlagSet) {}

func (*spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a boat name and an amount")
		return subcommands.ExitUsageError
	}
	// the name may contain spaces, the amount is always last.
	name := strings.Join(f.Args()[:f.NArg()-1], " ")
	rawAmount := f.Arg(f.NArg() - 1)

	a, status := setup()
	if a == nil {
		return status
	}
	fl, err := a.DecodeFleet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fleet: %v\n", err)
		return subcommands.ExitFailure
	}

	amount, err := fleet.ParseMoney(rawAmount, fl.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	outcome, err := fl.SpendOn(name, amount)
	if errors.Is(err, fleet.ErrBoatNotFound) {
		fmt.Fprintf(os.Stderr, "Cannot find boat %s\n", name)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a.log.Debug("expense", zap.String("boat", outcome.Boat.Name()), zap.Stringer("amount", outcome.Amount), zap.Bool("authorized", outcome.Authorized))
	fmt.Println(renderer.Outcome(outcome))
	if !outcome.Authorized {
		return subcommands.ExitSuccess
	}

	if err := a.EncodeFleet(fl); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving fleet: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
