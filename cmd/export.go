package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fleet"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the fleet in the delimited or JSONL format" }
func (*exportCmd) Usage() string {
	return `fms export [-format csv|jsonl] [-o <file>]

  Writes the fleet to stdout, or to a file with -o.
  The csv format is the import format, so expenses are not exported.
  The jsonl format has one object per boat with expenses and remaining budget.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "output format: csv or jsonl")
	f.StringVar(&c.output, "o", "-", "output file, '-' for stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var stdoutEncoder func(fl *fleet.Fleet) error
	var fileEncoder func(fl *fleet.Fleet, path string) error
	switch c.format {
	case "csv":
		stdoutEncoder = func(fl *fleet.Fleet) error { return fleet.EncodeDelimited(os.Stdout, fl) }
		fileEncoder = (*fleet.Fleet).ExportDelimited
	case "jsonl":
		stdoutEncoder = func(fl *fleet.Fleet) error { return fleet.EncodeJSONL(os.Stdout, fl) }
		fileEncoder = (*fleet.Fleet).ExportJSONL
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
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

	if c.output == "-" {
		err = stdoutEncoder(fl)
	} else {
		err = fileEncoder(fl, c.output)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting fleet: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
