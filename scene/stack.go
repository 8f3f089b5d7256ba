// Package scene keeps render layers in z-order on top of a sorted.Array and
// loads layer stacks from YAML scene documents.
package scene

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"facette.io/natsort"
	"github.com/amp-labs/zorder/logger"
	"github.com/amp-labs/zorder/sorted"
	"github.com/google/uuid"
)

// ErrUnknownLayer is returned when a layer is addressed by a name the stack
// does not hold.
var ErrUnknownLayer = errors.New("unknown layer")

// Option configures a Stack.
type Option func(*stackOptions)

type stackOptions struct {
	logger *slog.Logger
}

// WithLogger sends the stack's debug logs to l instead of the context logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *stackOptions) {
		o.logger = l
	}
}

// Stack is a z-ordered set of layers. It is not safe for concurrent use.
type Stack struct {
	name   string
	layers *sorted.Array[Layer, int]
	log    *slog.Logger
}

// NewStack creates an empty stack. The name labels the stack's logs and
// metrics.
func NewStack(ctx context.Context, name string, opts ...Option) *Stack {
	o := &stackOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = logger.Get(ctx)
	}

	return &Stack{
		name:   name,
		layers: sorted.New(depth, sorted.WithMetrics(name)),
		log:    o.logger.With("stack", name),
	}
}

// Name returns the name the stack was created with.
func (s *Stack) Name() string {
	return s.name
}

// Push adds a layer below every existing layer of the same Z and above all
// layers with a lower Z. A layer with a nil ID is given a fresh one; the layer
// as stored is returned.
func (s *Stack) Push(layer Layer) Layer {
	if layer.ID == uuid.Nil {
		layer.ID = uuid.New()
	}

	s.layers.Insert(layer)
	s.log.Debug("pushed layer", "layer", layer.Name, "z", layer.Z, "size", s.layers.Size())

	return layer
}

// Remove deletes the given layer value. It reports whether it was present.
func (s *Stack) Remove(layer Layer) bool {
	removed := s.layers.Delete(layer)
	if removed {
		s.log.Debug("removed layer", "layer", layer.Name, "z", layer.Z, "size", s.layers.Size())
	}

	return removed
}

// Lookup returns the lowest layer with the given name.
func (s *Stack) Lookup(name string) (Layer, bool) {
	for layer := range s.layers.Seq() {
		if layer.Name == name {
			return layer, true
		}
	}

	return Layer{}, false
}

// RemoveNamed deletes the lowest layer with the given name and returns it.
func (s *Stack) RemoveNamed(name string) (Layer, error) {
	layer, ok := s.Lookup(name)
	if !ok {
		return Layer{}, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}

	s.Remove(layer)

	return layer, nil
}

// Move changes the Z of the named layer. Keys are never changed in place: the
// layer is removed and pushed again, so it lands first among layers at z.
func (s *Stack) Move(name string, z int) (Layer, error) {
	layer, err := s.RemoveNamed(name)
	if err != nil {
		return Layer{}, err
	}

	from := layer.Z
	layer.Z = z
	layer = s.Push(layer)

	s.log.Debug("moved layer", "layer", name, "from", from, "to", z)

	return layer, nil
}

// Contains reports whether the exact layer value is in the stack.
func (s *Stack) Contains(layer Layer) bool {
	return s.layers.Contains(layer)
}

// Len returns the number of layers, hidden ones included.
func (s *Stack) Len() int {
	return s.layers.Size()
}

// Topmost returns the layer drawn last.
func (s *Stack) Topmost() (Layer, bool) {
	return s.layers.Last()
}

// RenderOrder yields visible layers bottom to top.
func (s *Stack) RenderOrder() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for layer := range s.layers.Seq() {
			if layer.Hidden {
				continue
			}

			if !yield(layer) {
				return
			}
		}
	}
}

// Layers returns every layer, hidden ones included, bottom to top.
func (s *Stack) Layers() []Layer {
	return s.layers.Entries()
}

// Names returns the layer names in natural order ("layer2" before "layer10"),
// independent of Z.
func (s *Stack) Names() []string {
	names := make([]string, 0, s.layers.Size())
	for layer := range s.layers.Seq() {
		names = append(names, layer.Name)
	}

	natsort.Sort(names)

	return names
}

// String renders the stack bottom to top, e.g. "[sky@0, hud@10]".
func (s *Stack) String() string {
	return s.layers.String()
}
