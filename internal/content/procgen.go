package content

import (
	"fmt"
	"math/rand"
	"sort"
)

// Random-persona question counts.
const (
	MinProcgenQuestions = 4
	MaxProcgenQuestions = 8
)

var procgenArchetypes = []string{
	"Adaptive Teacher",
	"Thoughtful Guide",
	"Questioning Coach",
	"Engaged Mentor",
	"Learning Facilitator",
}

// ProcgenGenerator produces random personas by sampling constitutional
// question combinations from a deck. Seeded, so a generator with the same
// seed and deck yields the same persona sequence.
type ProcgenGenerator struct {
	deck QuestionDeck
	keys []string
	rng  *rand.Rand
}

// NewProcgenGenerator creates a generator over the deck with the given
// seed.
func NewProcgenGenerator(deck QuestionDeck, seed int64) *ProcgenGenerator {
	keys := make([]string, 0, len(deck))
	for k := range deck {
		keys = append(keys, k)
	}
	// Map iteration order varies; sort so the seed fully determines output.
	sort.Strings(keys)

	return &ProcgenGenerator{
		deck: deck,
		keys: keys,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// RandomPersona generates a persona from a random question selection.
// numQuestions <= 0 picks a random count in [MinProcgenQuestions,
// MaxProcgenQuestions].
func (g *ProcgenGenerator) RandomPersona(numQuestions int) Persona {
	if numQuestions <= 0 {
		numQuestions = MinProcgenQuestions + g.rng.Intn(MaxProcgenQuestions-MinProcgenQuestions+1)
	}
	if numQuestions > len(g.keys) {
		numQuestions = len(g.keys)
	}

	perm := g.rng.Perm(len(g.keys))
	selected := make([]string, numQuestions)
	for i := 0; i < numQuestions; i++ {
		selected[i] = g.keys[perm[i]]
	}

	archetype := procgenArchetypes[g.rng.Intn(len(procgenArchetypes))]

	return Persona{
		Name:         fmt.Sprintf("Procgen_%dq", numQuestions),
		Archetype:    archetype,
		Description:  fmt.Sprintf("Randomly generated persona with %d constitutional questions", numQuestions),
		QuestionKeys: selected,
	}
}
