package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a boat from the fleet" }
func (*removeCmd) Usage() string {
	return `fms remove <name>

  Removes the first boat with this name, ignoring case.
`
}

func (*removeCmd) SetFlags(*flag.FlagSet) {}

func (*removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: missing boat name")
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

	if !fl.RemoveByName(name) {
		fmt.Fprintf(os.Stderr, "Cannot find boat %s\n", name)
		return subcommands.ExitFailure
	}
	if err := a.EncodeFleet(fl); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving fleet: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Boat removed.")
	return subcommands.ExitSuccess
}
