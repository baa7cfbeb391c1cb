package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/fleet"
	"github.com/etnz/fleet/renderer"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

// Menu is the interactive shell over a fleet.
//
// It reads one command per line: (P)rint, (A)dd, (R)emove, (E)xpense, e(X)it.
type Menu struct {
	Fleet *fleet.Fleet
	In    io.Reader
	Out   io.Writer
	Log   *zap.Logger
}

// Run executes commands until exit or the end of the input.
func (m *Menu) Run() error {
	if m.Log == nil {
		m.Log = zap.NewNop()
	}
	scanner := bufio.NewScanner(m.In)
	for {
		fmt.Fprint(m.Out, "\n(P)rint, (A)dd, (R)emove, (E)xpense, e(X)it : ")
		line, ok := m.readLine(scanner)
		if !ok {
			fmt.Fprintln(m.Out)
			return scanner.Err()
		}

		switch strings.ToUpper(line) {
		case "P":
			fmt.Fprint(m.Out, "\n"+renderer.FleetPlain(m.Fleet))
		case "A":
			m.add(scanner)
		case "R":
			m.remove(scanner)
		case "E":
			m.spend(scanner)
		case "X":
			return nil
		default:
			fmt.Fprintln(m.Out, "Invalid menu option, try again.")
		}
	}
}

func (m *Menu) readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func (m *Menu) prompt(scanner *bufio.Scanner, question string) (string, bool) {
	fmt.Fprint(m.Out, question)
	return m.readLine(scanner)
}

func (m *Menu) add(scanner *bufio.Scanner) {
	line, ok := m.prompt(scanner, "Please enter the new boat CSV data: ")
	if !ok {
		return
	}
	b, err := fleet.ParseBoat(strings.Split(line, ","), m.Fleet.Currency())
	if err != nil {
		m.Log.Debug("boat rejected", zap.String("input", line), zap.Error(err))
		errColor.Fprintln(m.Out, "Invalid input. Boat not added.")
		return
	}
	m.Fleet.Append(b)
}

func (m *Menu) remove(scanner *bufio.Scanner) {
	name, ok := m.prompt(scanner, "Which boat do you want to remove? ")
	if !ok {
		return
	}
	if m.Fleet.RemoveByName(name) {
		fmt.Fprintln(m.Out, "Boat removed.")
		return
	}
	errColor.Fprintf(m.Out, "Cannot find boat %s\n", name)
}

func (m *Menu) spend(scanner *bufio.Scanner) {
	name, ok := m.prompt(scanner, "Which boat do you want to spend on? ")
	if !ok {
		return
	}
	i := m.Fleet.IndexOf(name)
	if i < 0 {
		errColor.Fprintf(m.Out, "Cannot find boat %s\n", name)
		return
	}

	raw, ok := m.prompt(scanner, "How much do you want to spend? ")
	if !ok {
		return
	}
	amount, err := fleet.ParseMoney(raw, m.Fleet.Currency())
	if err != nil {
		errColor.Fprintf(m.Out, "Invalid amount %q.\n", raw)
		return
	}
	outcome, err := m.Fleet.SpendOnIndex(i, amount)
	if err != nil {
		errColor.Fprintf(m.Out, "Expense not permitted, %v.\n", err)
		return
	}
	m.Log.Debug("expense", zap.String("boat", outcome.Boat.Name()), zap.Stringer("amount", amount), zap.Bool("authorized", outcome.Authorized))
	if outcome.Authorized {
		okColor.Fprintln(m.Out, renderer.Outcome(outcome))
	} else {
		warnColor.Fprintln(m.Out, renderer.Outcome(outcome))
	}
}

// menuCmd runs the interactive menu.
type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the fleet interactively" }
func (*menuCmd) Usage() string {
	return `fms menu [<file.csv>]

  Starts the interactive menu. The fleet is loaded from the snapshot, or
  imported from the delimited file if one is given. The fleet is saved to
  the snapshot on exit.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := setup()
	if a == nil {
		return status
	}
	return a.runMenu(f.Arg(0), os.Stdin, os.Stdout)
}

// runMenu loads the fleet, runs the menu and saves the fleet.
//
// Load errors are reported, the session then starts with an empty fleet.
func (a *app) runMenu(csvFile string, in io.Reader, out io.Writer) subcommands.ExitStatus {
	fmt.Fprintln(out, "Welcome to the Fleet Management System")
	fmt.Fprintln(out, "--------------------------------------")

	fl := fleet.NewFleet(a.cfg.Currency)
	if csvFile != "" {
		if err := fl.LoadDelimited(csvFile); err != nil {
			errColor.Fprintf(out, "Error reading CSV file: %v\n", err)
		}
	} else {
		err := fl.LoadSnapshot(a.cfg.DataFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintln(out, "No previous data found. Starting fresh.")
		case err != nil:
			errColor.Fprintf(out, "Error loading data: %v\n", err)
		}
	}

	m := &Menu{Fleet: fl, In: in, Out: out, Log: Named(a.log, "menu")}
	if err := m.Run(); err != nil {
		a.log.Warn("menu input failed", zap.Error(err))
	}

	status := subcommands.ExitSuccess
	if err := a.EncodeFleet(fl); err != nil {
		errColor.Fprintf(out, "Error saving data: %v\n", err)
		status = subcommands.ExitFailure
	}
	fmt.Fprintln(out, "\nExiting the Fleet Management System")
	return status
}
