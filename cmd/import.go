package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fleet"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type importCmd struct {
	force bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the fleet with boats from a delimited file" }
func (*importCmd) Usage() string {
	return `fms import [-f] <file.csv>

  Reads boats from a delimited file, one per line:

    CATEGORY,NAME,YEAR,MAKE_MODEL,LENGTH_FEET,PURCHASE_PRICE

  and saves them as the new fleet. Imported boats have no expenses.
  The import is all or nothing: the first invalid line aborts it.
  An existing non empty fleet is only replaced with -f.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "replace an existing non empty fleet")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file to import")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	a, status := setup()
	if a == nil {
		return status
	}

	current, err := a.DecodeFleet()
	if err != nil && !c.force {
		fmt.Fprintf(os.Stderr, "Error loading fleet: %v\n", err)
		return subcommands.ExitFailure
	}
	if current.Len() > 0 && !c.force {
		fmt.Fprintf(os.Stderr, "Error: the fleet has %d boats, use -f to replace it\n", current.Len())
		return subcommands.ExitFailure
	}

	fl := fleet.NewFleet(a.cfg.Currency)
	if err := fl.LoadDelimited(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading delimited file: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := a.EncodeFleet(fl); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving fleet: %v\n", err)
		return subcommands.ExitFailure
	}
	a.log.Info("fleet imported", zap.String("from", path), zap.Int("boats", fl.Len()))
	fmt.Printf("Imported %d boats from %s\n", fl.Len(), path)
	return subcommands.ExitSuccess
}
