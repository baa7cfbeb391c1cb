package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/etnz/fleet"
	"github.com/google/subcommands"
)

const sampleCSV = `SAIL,Alinghi,2004,Schnieder 80,80,2500000.00
POWER,Sea Ray,2010,Sundancer,40,150000
`

func loadSnapshot(t *testing.T, path string) *fleet.Fleet {
	t.Helper()
	f := fleet.NewFleet("USD")
	if err := f.LoadSnapshot(path); err != nil {
		t.Fatalf("cannot load snapshot: %v", err)
	}
	return f
}

func TestCommands_Session(t *testing.T) {
	snapshot := useTempFleet(t)
	csv := writeFile(t, "boats.csv", sampleCSV)

	if status, out := execute(t, &importCmd{}, csv); status != subcommands.ExitSuccess {
		t.Fatalf("import failed: %v %s", status, out)
	}
	if got := loadSnapshot(t, snapshot).Len(); got != 2 {
		t.Fatalf("fleet has %d boats after import, want 2", got)
	}

	status, out := execute(t, &spendCmd{}, "alinghi", "500000")
	if status != subcommands.ExitSuccess || strings.TrimSpace(out) != "Expense authorized, $500000.00 spent." {
		t.Errorf("spend = %v %q", status, out)
	}
	status, out = execute(t, &spendCmd{}, "Alinghi", "3000000")
	if status != subcommands.ExitSuccess || strings.TrimSpace(out) != "Expense not permitted, only $2000000.00 left to spend." {
		t.Errorf("spend = %v %q", status, out)
	}
	if status, _ := execute(t, &spendCmd{}, "Oracle", "1"); status != subcommands.ExitFailure {
		t.Errorf("spend on an unknown boat = %v, want failure", status)
	}

	if status, out := execute(t, &addCmd{}, "power", "Riva", "1962", "Aquarama", "27", "900000"); status != subcommands.ExitSuccess {
		t.Errorf("add failed: %v %s", status, out)
	}
	if status, _ := execute(t, &addCmd{}, "-csv", "ROW,Bad,2000,X,10,10"); status != subcommands.ExitUsageError {
		t.Errorf("add of an invalid boat = %v, want usage error", status)
	}

	if status, out := execute(t, &removeCmd{}, "SEA", "RAY"); status != subcommands.ExitSuccess || strings.TrimSpace(out) != "Boat removed." {
		t.Errorf("remove = %v %q", status, out)
	}
	if status, _ := execute(t, &removeCmd{}, "Sea Ray"); status != subcommands.ExitFailure {
		t.Errorf("remove of a removed boat = %v, want failure", status)
	}

	status, out = execute(t, &listCmd{}, "-plain")
	if status != subcommands.ExitSuccess {
		t.Fatalf("list failed: %v", status)
	}
	want := `Fleet report:
	SAIL    Alinghi              2004 Schnieder 80  80' : Paid $2500000.00 : Spent $ 500000.00
	POWER   Riva                 1962 Aquarama    27' : Paid $ 900000.00 : Spent $      0.00
	Total                                             : Paid $3400000.00 : Spent $ 500000.00`
	if strings.TrimSpace(out) != want {
		t.Errorf("list mismatch.\nGot:\n%s\nWant:\n%s", out, want)
	}
}

func TestImportCmd_Protection(t *testing.T) {
	useTempFleet(t)
	csv := writeFile(t, "boats.csv", sampleCSV)
	bad := writeFile(t, "bad.csv", "SAIL,Alinghi,2004,Schnieder 80,80,lots\n")

	if status, _ := execute(t, &importCmd{}, bad); status != subcommands.ExitFailure {
		t.Errorf("import of an invalid file = %v, want failure", status)
	}
	if status, _ := execute(t, &importCmd{}, csv); status != subcommands.ExitSuccess {
		t.Fatalf("import failed: %v", status)
	}
	if status, _ := execute(t, &importCmd{}, csv); status != subcommands.ExitFailure {
		t.Errorf("import over a non empty fleet = %v, want failure", status)
	}
	if status, _ := execute(t, &importCmd{}, "-f", csv); status != subcommands.ExitSuccess {
		t.Errorf("forced import = %v, want success", status)
	}
}

func TestExportCmd(t *testing.T) {
	useTempFleet(t)
	csv := writeFile(t, "boats.csv", sampleCSV)
	execute(t, &importCmd{}, csv)

	status, out := execute(t, &exportCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("export failed: %v", status)
	}
	wantCSV := "SAIL,Alinghi,2004,Schnieder 80,80,2500000.00\nPOWER,Sea Ray,2010,Sundancer,40,150000.00"
	if strings.TrimSpace(out) != wantCSV {
		t.Errorf("export mismatch.\nGot:\n%s\nWant:\n%s", out, wantCSV)
	}

	output := writeFile(t, "boats.jsonl", "")
	if status, _ := execute(t, &exportCmd{}, "-format", "jsonl", "-o", output); status != subcommands.ExitSuccess {
		t.Fatalf("export failed: %v", status)
	}
	content, _ := os.ReadFile(output)
	if lines := strings.Split(strings.TrimSpace(string(content)), "\n"); len(lines) != 2 {
		t.Errorf("jsonl export has %d lines, want 2", len(lines))
	}

	if status, _ := execute(t, &exportCmd{}, "-format", "xml"); status != subcommands.ExitUsageError {
		t.Errorf("export in an unknown format = %v, want usage error", status)
	}
}

func TestListCmd_CorruptedSnapshot(t *testing.T) {
	snapshot := useTempFleet(t)
	os.WriteFile(snapshot, []byte("not a snapshot"), 0644)

	if status, _ := execute(t, &listCmd{}, "-md"); status != subcommands.ExitFailure {
		t.Errorf("list on a corrupted snapshot = %v, want failure", status)
	}
}
