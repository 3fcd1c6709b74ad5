package bodycomp

import "github.com/okian/proctor/internal/domain/tables"

// Instruction tells the measurer where to place the tape for one site.
type Instruction struct {
	Site string `json:"site" yaml:"site"`
	Text string `json:"text" yaml:"text"`
}

// Instructions lists the tape sites for g in measuring order.
func Instructions(g tables.Gender) []Instruction {
	out := []Instruction{
		{Site: "neck", Text: "Measure at Adam's apple level. Round UP to nearest 0.5 inch."},
		{Site: "abdomen", Text: "Measure at navel level (belly button). Round DOWN to nearest 0.5 inch."},
	}
	if g == tables.Female {
		out = append(out, Instruction{Site: "hips", Text: "Measure at widest point of hips/buttocks. Round DOWN to nearest 0.5 inch."})
	}
	return out
}
