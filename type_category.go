package fleet

import (
	"fmt"
	"strings"
)

// Category is the type of a boat.
type Category int

const (
	// Sail is a sailing boat.
	Sail Category = iota + 1
	// Power is a motor boat.
	Power
)

// Categories lists every valid category in display order.
var Categories = []Category{Sail, Power}

func (c Category) String() string {
	switch c {
	case Sail:
		return "SAIL"
	case Power:
		return "POWER"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category token, ignoring case.
func ParseCategory(s string) (Category, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for _, c := range Categories {
		if c.String() == token {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
