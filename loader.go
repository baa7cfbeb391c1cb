package fleet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadDelimited replaces the fleet content with the boats of the delimited
// file at path.
//
// The load is all or nothing: if any line is invalid the fleet is unchanged
// and the returned error reports the line and the cause.
func (f *Fleet) LoadDelimited(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open delimited file %q: %w", path, err)
	}
	defer file.Close()

	g, err := DecodeDelimited(file, f.currency)
	if err != nil {
		return fmt.Errorf("could not import %q: %w", path, err)
	}
	f.replace(g)
	return nil
}

// LoadSnapshot replaces the fleet content with the snapshot at path.
//
// If there is no snapshot the error satisfies errors.Is(err, fs.ErrNotExist).
// On any error the fleet is left empty.
func (f *Fleet) LoadSnapshot(path string) error {
	f.boats = make([]*Boat, 0)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open snapshot %q: %w", path, err)
	}
	defer file.Close()

	g, err := DecodeSnapshot(file, f.currency)
	if err != nil {
		return fmt.Errorf("could not load snapshot %q: %w", path, err)
	}
	f.replace(g)
	return nil
}

// SaveSnapshot writes the fleet to path, replacing any previous snapshot.
//
// The snapshot is first written next to path then renamed, so a failed save
// leaves the previous snapshot in place.
func (f *Fleet) SaveSnapshot(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for snapshot %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create snapshot %q: %w", path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := EncodeSnapshot(tmp, f); err != nil {
		tmp.Close()
		return fmt.Errorf("could not save snapshot %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not save snapshot %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not save snapshot %q: %w", path, err)
	}
	return nil
}

// ExportDelimited writes the fleet to the delimited file at path.
func (f *Fleet) ExportDelimited(path string) error {
	return f.export(path, EncodeDelimited)
}

// ExportJSONL writes the fleet to the JSONL file at path.
func (f *Fleet) ExportJSONL(path string) error {
	return f.export(path, EncodeJSONL)
}

func (f *Fleet) export(path string, encode func(io.Writer, *Fleet) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	defer file.Close()

	if err := encode(file, f); err != nil {
		return err
	}
	return file.Close()
}
