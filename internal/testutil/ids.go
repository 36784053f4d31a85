package testutil

// FixedIDGenerator returns the same game id every time.
//
// Unlike engine.FixedGenerator which returns ids in sequence, this one never
// runs out, for tests that start an unknown number of games.
//
// Implements engine.IDGenerator.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator that always returns id.
// If id is empty, Generate returns "test-game".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-game"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
