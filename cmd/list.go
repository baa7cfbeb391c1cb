package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fleet/renderer"
	"github.com/google/subcommands"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	plain    bool
	markdown bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the fleet report with paid and spent totals" }
func (*listCmd) Usage() string {
	return `fms list [-plain | -md]

  Displays every boat of the fleet, in the order they were added, with the
  total paid and the total spent.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print the fixed width report instead of the styled one")
	f.BoolVar(&c.markdown, "md", false, "print the raw markdown report")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := setup()
	if a == nil {
		return status
	}

	fl, err := a.DecodeFleet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fleet: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.plain:
		fmt.Print(renderer.FleetPlain(fl))
	case c.markdown:
		fmt.Print(renderer.FleetMarkdown(fl))
	default:
		printMarkdown(renderer.FleetMarkdown(fl))
	}
	return subcommands.ExitSuccess
}
