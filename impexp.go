package fleet

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file contains functions to handle the import/export formats.
// They should remain human readable and easy to edit in a spreadsheet.

// DecodeDelimited reads boats from 'r' in the delimited import format.
//
// Each line is a boat: CATEGORY,NAME,YEAR,MAKE_MODEL,LENGTH_FEET,PURCHASE_PRICE.
// There is no header and no quoting. Blank lines are skipped, fields after the
// sixth are ignored and imported boats have no expenses.
//
// The first invalid line aborts the decoding with a *ParseError.
func DecodeDelimited(r io.Reader, currency string) (*Fleet, error) {
	f := NewFleet(currency)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		b, err := ParseBoat(strings.Split(text, ","), currency)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = line
				return nil, perr
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		f.Append(b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read delimited format: %w", err)
	}
	return f, nil
}

// EncodeDelimited writes the boats of 'f' to 'w' in the delimited import format.
//
// Expenses are not part of the format and are lost.
func EncodeDelimited(w io.Writer, f *Fleet) error {
	bw := bufio.NewWriter(w)
	for _, b := range f.boats {
		fields := []string{
			b.category.String(),
			b.name,
			strconv.Itoa(b.year),
			b.makeModel,
			strconv.Itoa(b.length),
			b.price.Fixed(),
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return fmt.Errorf("cannot write delimited format: %w", err)
		}
	}
	return bw.Flush()
}

// MarshalJSON writes the boat as a json object with a stable field order.
func (b *Boat) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", b.category.String())
	w.Append("name", b.name)
	w.Optional("year", b.year)
	w.Optional("makeModel", b.makeModel)
	w.Optional("length", b.length)
	w.Append("currency", b.price.Currency())
	w.Append("price", b.price.Decimal())
	w.Append("spent", b.spent.Decimal())
	w.Append("remaining", b.Remaining().Decimal())
	return w.MarshalJSON()
}

// EncodeJSONL writes the boats of 'f' to 'w', one json object per line.
func EncodeJSONL(w io.Writer, f *Fleet) error {
	for _, b := range f.boats {
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("cannot marshal boat %q: %w", b.name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write JSONL format: %w", err)
		}
	}
	return nil
}
