package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fleet"
	"github.com/google/subcommands"
)

type addCmd struct {
	csv string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a boat to the fleet" }
func (*addCmd) Usage() string {
	return `fms add <category> <name> <year> <make_model> <length_feet> <purchase_price>
fms add -csv <CATEGORY,NAME,YEAR,MAKE_MODEL,LENGTH_FEET,PURCHASE_PRICE>

  Adds a boat with no expenses at the end of the fleet.
  Categories are: SAIL, POWER (case insensitive).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csv, "csv", "", "the boat as a single line of the delimited import format")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fields := f.Args()
	if c.csv != "" {
		// extra fields are ignored, as in the delimited import format.
		fields = strings.Split(c.csv, ",")
	} else if len(fields) > 6 {
		fmt.Fprintf(os.Stderr, "Error: expected 6 arguments, got %d\n", len(fields))
		return subcommands.ExitUsageError
	}
	if len(fields) < 6 {
		fmt.Fprintf(os.Stderr, "Error: expected 6 fields, got %d\n", len(fields))
		return subcommands.ExitUsageError
	}

	a, status := setup()
	if a == nil {
		return status
	}
	fl, err := a.DecodeFleet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fleet: %v\n", err)
		return subcommands.ExitFailure
	}

	b, err := fleet.ParseBoat(fields, fl.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid input. Boat not added: %v\n", err)
		return subcommands.ExitUsageError
	}
	fl.Append(b)

	if err := a.EncodeFleet(fl); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving fleet: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Boat %s added.\n", b.Name())
	return subcommands.ExitSuccess
}
