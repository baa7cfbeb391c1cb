package fleet

import "fmt"

// Percent is a ratio expressed in percent.
type Percent float64

// PercentOf returns part as a percentage of whole, or 0 if whole is zero.
func PercentOf(part, whole Money) Percent {
	if whole.IsZero() {
		return 0
	}
	p, _ := part.value.Div(whole.value).Shift(2).Float64()
	return Percent(p)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
