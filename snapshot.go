package fleet

import (
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/shopspring/decimal"
)

// The snapshot format is the fleet persisted between two sessions.
//
// It is a zstd frame containing a CBOR array of boats, in fleet order. Amounts
// are stored as decimal strings so that a snapshot round trip is exact. It is
// not meant to be read by other tools.

// snapshotBoat is the persisted form of a Boat.
type snapshotBoat struct {
	Category  string `cbor:"category"`
	Name      string `cbor:"name"`
	Year      int    `cbor:"year"`
	MakeModel string `cbor:"make_model"`
	Length    int    `cbor:"length"`
	Currency  string `cbor:"currency"`
	Price     string `cbor:"price"`
	Spent     string `cbor:"spent"`
}

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding: the same fleet always produces identical bytes.
var encMode cbor.EncMode

// decMode rejects duplicate map keys, a snapshot is never written with any.
// It accepts as many boats as the encoder can write.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("fleet: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic("fleet: CBOR decoder initialization failed: " + err.Error())
	}
}

// EncodeSnapshot writes the whole fleet, expenses included, to 'w'.
func EncodeSnapshot(w io.Writer, f *Fleet) error {
	records := make([]snapshotBoat, 0, len(f.boats))
	for _, b := range f.boats {
		records = append(records, snapshotBoat{
			Category:  b.category.String(),
			Name:      b.name,
			Year:      b.year,
			MakeModel: b.makeModel,
			Length:    b.length,
			Currency:  b.price.Currency(),
			Price:     b.price.Decimal().String(),
			Spent:     b.spent.Decimal().String(),
		})
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("cannot create snapshot compressor: %w", err)
	}
	if err := encMode.NewEncoder(zw).Encode(records); err != nil {
		zw.Close()
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a fleet written by EncodeSnapshot.
//
// Expenses are restored as they were saved, without checking them against
// the purchase price.
func DecodeSnapshot(r io.Reader, currency string) (*Fleet, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot create snapshot decompressor: %w", err)
	}
	defer zr.Close()

	var records []snapshotBoat
	if err := decMode.NewDecoder(zr).Decode(&records); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}

	f := NewFleet(currency)
	for i, rec := range records {
		b, err := rec.boat()
		if err != nil {
			return nil, fmt.Errorf("corrupted snapshot record %d (%q): %w", i, rec.Name, err)
		}
		if i == 0 {
			f.currency = b.price.Currency()
		} else if b.price.Currency() != f.currency {
			return nil, fmt.Errorf("corrupted snapshot record %d (%q): currency %q, want %q", i, rec.Name, b.price.Currency(), f.currency)
		}
		f.Append(b)
	}
	return f, nil
}

func (rec snapshotBoat) boat() (*Boat, error) {
	category, err := ParseCategory(rec.Category)
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(rec.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %w", err)
	}
	spent, err := decimal.NewFromString(rec.Spent)
	if err != nil {
		return nil, fmt.Errorf("invalid expenses: %w", err)
	}
	return &Boat{
		category:  category,
		name:      rec.Name,
		year:      rec.Year,
		makeModel: rec.MakeModel,
		length:    rec.Length,
		price:     M(price, rec.Currency),
		spent:     M(spent, rec.Currency),
	}, nil
}
