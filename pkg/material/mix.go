package material

import (
	"math/rand"

	"github.com/pathband/go-path-tracer/pkg/core"
)

// Mix blends materials stochastically: each sample call is delegated whole
// to one uniformly chosen sub-material, never averaged across them
type Mix struct {
	Materials []core.Material
}

// NewMix creates a mix of the given sub-materials
func NewMix(materials ...core.Material) *Mix {
	return &Mix{Materials: materials}
}

// Sample implements the Material interface by delegating to one sub-material
func (m *Mix) Sample(inter *core.Interaction, random *rand.Rand) {
	m.Materials[random.Intn(len(m.Materials))].Sample(inter, random)
}
