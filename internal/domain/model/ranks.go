package model

// Ranks lists the grades accepted on a roster, junior to senior.
var Ranks = []string{
	"Pvt", "PFC", "LCpl", "Cpl", "Sgt", "SSgt", "GySgt", "MSgt", "1stSgt",
	"MGySgt", "SgtMaj", "WO", "CWO2", "CWO3", "CWO4", "CWO5",
	"2ndLt", "1stLt", "Capt", "Maj", "LtCol", "Col", "BGen", "MajGen", "LtGen", "Gen",
}

var rankSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Ranks))
	for _, r := range Ranks {
		m[r] = struct{}{}
	}
	return m
}()

// ValidRank reports whether r is one of Ranks. Matching is exact.
func ValidRank(r string) bool {
	_, ok := rankSet[r]
	return ok
}
