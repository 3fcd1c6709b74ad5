package scoring

import "github.com/okian/proctor/internal/domain/tables"

// Classification is the class earned by a combined score.
type Classification string

const (
	FirstClass  Classification = "First"
	SecondClass Classification = "Second"
	ThirdClass  Classification = "Third"
	Fail        Classification = "Fail"
)

// Grade returns the letter grade printed next to the class.
func (c Classification) Grade() string {
	switch c {
	case FirstClass:
		return "A"
	case SecondClass:
		return "B"
	case ThirdClass:
		return "C"
	default:
		return "Fail"
	}
}

// Classify maps a point total onto a class. It does not look at individual
// events; see the minimum-event rule in ComputeFullTest.
func Classify(total int, th tables.Thresholds) Classification {
	switch {
	case total >= th.FirstClass:
		return FirstClass
	case total >= th.SecondClass:
		return SecondClass
	case total >= th.ThirdClass:
		return ThirdClass
	default:
		return Fail
	}
}
