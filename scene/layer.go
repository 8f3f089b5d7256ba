package scene

import (
	"fmt"

	"github.com/google/uuid"
)

// Layer is one drawable layer. Layers are ordered by Z, lowest first; among
// layers with the same Z, the most recently pushed one is drawn first.
//
// Layer values are compared with ==, so the ID keeps two layers with the same
// name and depth distinct.
type Layer struct {
	ID     uuid.UUID
	Name   string
	Z      int
	Hidden bool
}

// NewLayer returns a visible layer with a fresh random ID.
func NewLayer(name string, z int) Layer {
	return Layer{
		ID:   uuid.New(),
		Name: name,
		Z:    z,
	}
}

// String renders the layer as name@z, with a "(hidden)" suffix for hidden layers.
func (l Layer) String() string {
	if l.Hidden {
		return fmt.Sprintf("%s@%d(hidden)", l.Name, l.Z)
	}

	return fmt.Sprintf("%s@%d", l.Name, l.Z)
}

func depth(l Layer) int {
	return l.Z
}
