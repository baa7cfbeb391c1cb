// Package cmd implements the CLI application to manage a fleet.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fleet"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "")
	c.Register(&topicCmd{}, "")

	c.Register(&listCmd{}, "fleet")
	c.Register(&addCmd{}, "fleet")
	c.Register(&removeCmd{}, "fleet")
	c.Register(&spendCmd{}, "fleet")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env-file", ".env", "Path to an optional env file with FLEET_* settings")
var dataFile = flag.String("data-file", "", "Path to the fleet snapshot (default $"+EnvDataFile+" or FleetData.db)")
var currency = flag.String("currency", "", "Currency of all amounts (default $"+EnvCurrency+" or USD)")

// app holds what every command needs.
type app struct {
	cfg *Config
	log *zap.Logger
}

// newApp loads and validates the configuration, global flags take precedence
// over the environment.
func newApp() (*app, error) {
	cfg, err := LoadConfig(*envFile)
	if err != nil {
		return nil, err
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log}, nil
}

// DecodeFleet loads the fleet from the app snapshot.
// A missing snapshot is not an error, an empty fleet is returned instead.
func (a *app) DecodeFleet() (*fleet.Fleet, error) {
	f := fleet.NewFleet(a.cfg.Currency)
	err := f.LoadSnapshot(a.cfg.DataFile)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Info("no previous data found, starting with an empty fleet", zap.String("file", a.cfg.DataFile))
		return f, nil
	}
	return f, err
}

// EncodeFleet saves the fleet into the app snapshot.
func (a *app) EncodeFleet(f *fleet.Fleet) error {
	if err := f.SaveSnapshot(a.cfg.DataFile); err != nil {
		return err
	}
	a.log.Debug("fleet saved", zap.String("file", a.cfg.DataFile), zap.Int("boats", f.Len()))
	return nil
}

// setup creates the app or reports why it cannot.
func setup() (*app, subcommands.ExitStatus) {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	return a, subcommands.ExitSuccess
}

// printMarkdown prints markdown styled for the terminal, or raw if it cannot be styled.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
