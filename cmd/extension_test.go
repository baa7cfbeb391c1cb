package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("hello", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are tested with a shell script")
	}
	snapshot := useTempFleet(t)

	bin := t.TempDir()
	script := `#!/bin/sh
echo "$FLEET_DATA_FILE" > "$1"
echo "$FLEET_CURRENCY" >> "$1"
exit 3
`
	if err := os.WriteFile(filepath.Join(bin, "fms-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("cannot write extension: %v", err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	output := filepath.Join(t.TempDir(), "env.txt")
	found, code := RunExtension("hello", []string{output})
	if !found {
		t.Fatalf("RunExtension() did not find fms-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension() exit code = %d, want 3", code)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("extension did not run: %v", err)
	}
	want := snapshot + "\nUSD"
	if strings.TrimSpace(string(got)) != want {
		t.Errorf("extension environment = %q, want %q", got, want)
	}
}
