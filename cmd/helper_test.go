package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/google/subcommands"
)

// useTempFleet points the app to a snapshot in a temporary directory and returns its path.
func useTempFleet(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "FleetData.db")

	oldDataFile, oldEnvFile, oldCurrency := *dataFile, *envFile, *currency
	*dataFile, *envFile, *currency = path, "", ""
	t.Cleanup(func() { *dataFile, *envFile, *currency = oldDataFile, oldEnvFile, oldCurrency })

	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvLogLevel, "error")

	oldNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = oldNoColor })
	return path
}

// captureStdout returns what fn printed on stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("cannot create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()
	w.Close()
	return <-done
}

// execute parses args for the command and executes it, returning its status and stdout.
func execute(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse %v: %v", args, err)
	}
	var status subcommands.ExitStatus
	out := captureStdout(t, func() {
		status = c.Execute(context.Background(), f)
	})
	return status, out
}

// writeFile creates a file in a temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write %s: %v", path, err)
	}
	return path
}
