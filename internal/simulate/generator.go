package simulate

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/okian/proctor/internal/domain/bodycomp"
	"github.com/okian/proctor/internal/domain/model"
	"github.com/okian/proctor/internal/domain/scoring"
)

var (
	lastNames  = []string{"Alvarez", "Brooks", "Chen", "Diaz", "Evans", "Foster", "Garcia", "Hughes", "Ito", "Jensen", "Kim", "Lopez", "Murphy", "Nguyen", "Okafor", "Patel"}
	firstNames = []string{"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery", "Quinn", "Drew", "Sam", "Jesse"}
	initials   = "ABCDEFGHJKLMNPRSTW"
)

// rowMinAge is the youngest age the 5k row is tabulated for.
const rowMinAge = 46

// Generator produces random but table-valid roster submissions.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator. A zero seed is replaced by the clock.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

// Generate returns n submissions with unique submission and marine ids.
func (g *Generator) Generate(n int) []model.Submission {
	out := make([]model.Submission, n)
	for i := range out {
		out[i] = g.Submission()
	}
	return out
}

// Submission returns one random submission.
func (g *Generator) Submission() model.Submission {
	m := g.marine()
	sub := model.Submission{
		SubmissionID: uuid.NewString(),
		Marine:       m,
		PFT:          g.pft(m),
		TS:           g.now().UTC(),
	}
	// Most Marines also have a CFT on file; some need a body check.
	if g.rng.IntN(4) != 0 {
		sub.CFT = g.cft()
	}
	if g.rng.IntN(3) == 0 {
		sub.Body = g.body(m)
	}
	return sub
}

func (g *Generator) marine() model.Marine {
	gender := "male"
	if g.rng.IntN(10) < 3 {
		gender = "female"
	}
	mi := initials[g.rng.IntN(len(initials))]
	return model.Marine{
		ID:            uuid.NewString(),
		Rank:          model.Ranks[g.rng.IntN(len(model.Ranks))],
		LastName:      lastNames[g.rng.IntN(len(lastNames))],
		FirstName:     firstNames[g.rng.IntN(len(firstNames))],
		MiddleInitial: string(mi),
		Gender:        gender,
		Age:           g.between(model.MinAge, 55),
	}
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) pft(m model.Marine) *scoring.Input {
	in := &scoring.Input{PlankSeconds: g.between(60, 230)}
	female := m.Gender == "female"

	if g.rng.IntN(2) == 0 {
		reps := g.between(3, 23)
		if female {
			reps = g.between(0, 12)
		}
		in.PullUps = &reps
	} else {
		reps := g.between(30, 87)
		if female {
			reps = g.between(15, 50)
		}
		in.PushUps = &reps
	}

	secs := g.between(1080, 1900)
	if female {
		secs = g.between(1260, 2100)
	}
	if m.Age >= rowMinAge && g.rng.IntN(2) == 0 {
		in.CardioEvent = "row"
		in.RowSeconds = &secs
	} else {
		in.RunSeconds = &secs
	}
	return in
}

func (g *Generator) cft() *scoring.Input {
	return &scoring.Input{
		MTCSeconds:      g.between(150, 300),
		AmmoLiftReps:    g.between(30, 120),
		ManeuverSeconds: g.between(120, 330),
	}
}

func (g *Generator) body(m model.Marine) *bodycomp.Input {
	height := float64(g.between(62, 76))
	in := &bodycomp.Input{
		Height:  height,
		Weight:  height*2.6 + float64(g.between(-10, 45)),
		Neck:    float64(g.between(26, 34)) / 2,
		Abdomen: float64(g.between(56, 80)) / 2,
	}
	if m.Gender == "female" {
		in.Neck = float64(g.between(22, 30)) / 2
		in.Abdomen = float64(g.between(52, 70)) / 2
		in.Hips = float64(g.between(66, 86)) / 2
	}
	return in
}
