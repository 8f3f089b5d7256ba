package scene

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	zerrors "github.com/amp-labs/zorder/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDecode is returned when a scene document cannot be parsed.
	ErrDecode = errors.New("cannot decode scene document")

	// ErrInvalidLayer is returned for a layer declaration that cannot be built.
	ErrInvalidLayer = errors.New("invalid layer")

	// ErrDuplicateLayer is returned when two layers share a name.
	ErrDuplicateLayer = errors.New("duplicate layer")
)

// DefaultName names stacks built from documents that do not set one.
const DefaultName = "scene"

// Document is the YAML form of a stack:
//
//	name: hud
//	layers:
//	  - {name: background, z: 0}
//	  - {name: map, z: 10}
//	  - {name: debug, z: 99, hidden: true}
//	remove: [map]
//
// Layers are pushed in the order listed, then the names in Remove are removed.
//
// The same document can be written as TOML, see DecodeTOML.
type Document struct {
	Name   string      `toml:"name"   yaml:"name"`
	Layers []LayerSpec `toml:"layers" yaml:"layers"`
	Remove []string    `toml:"remove" yaml:"remove"`
}

// LayerSpec declares one layer of a Document.
type LayerSpec struct {
	Name   string `toml:"name"   yaml:"name"`
	Z      int    `toml:"z"      yaml:"z"`
	Hidden bool   `toml:"hidden" yaml:"hidden"`
}

// Decode reads a single YAML document. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}

		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &doc, nil
}

// DecodeTOML reads a TOML document, with layers as an array of tables:
//
//	name = "hud"
//	remove = ["map"]
//
//	[[layers]]
//	name = "background"
//	z = 0
//
// Unknown keys are rejected.
func DecodeTOML(r io.Reader) (*Document, error) {
	var doc Document

	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrDecode, undecoded[0].String())
	}

	return &doc, nil
}

// Validate checks that every layer has a unique, non-empty name and that every
// removal names a declared layer. All problems are reported together.
func (d *Document) Validate() error {
	var errs zerrors.Collection

	seen := make(map[string]struct{}, len(d.Layers))

	for i, spec := range d.Layers {
		if spec.Name == "" {
			errs.Add(fmt.Errorf("%w: layer %d has no name", ErrInvalidLayer, i))

			continue
		}

		if _, dup := seen[spec.Name]; dup {
			errs.Add(fmt.Errorf("%w: %q", ErrDuplicateLayer, spec.Name))

			continue
		}

		seen[spec.Name] = struct{}{}
	}

	for _, name := range d.Remove {
		if _, ok := seen[name]; !ok {
			errs.Add(fmt.Errorf("%w: cannot remove %q", ErrUnknownLayer, name))
		}
	}

	return errs.GetError()
}

// Build validates d and returns the stack it describes.
func Build(ctx context.Context, d *Document, opts ...Option) (*Stack, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	name := d.Name
	if name == "" {
		name = DefaultName
	}

	stack := NewStack(ctx, name, opts...)

	for _, spec := range d.Layers {
		layer := NewLayer(spec.Name, spec.Z)
		layer.Hidden = spec.Hidden

		stack.Push(layer)
	}

	for _, removal := range d.Remove {
		if _, err := stack.RemoveNamed(removal); err != nil {
			return nil, err
		}
	}

	stack.log.Info("built scene", "layers", stack.Len(), "removed", len(d.Remove))

	return stack, nil
}

// LoadFile decodes and builds the scene document at path. Files ending in
// .toml are read with DecodeTOML, everything else as YAML.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Stack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene %s: %w", path, err)
	}

	defer f.Close() //nolint:errcheck

	decode := Decode
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		decode = DecodeTOML
	}

	doc, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	stack, err := Build(ctx, doc, opts...)
	if err != nil {
		return nil, fmt.Errorf("building scene %s: %w", path, err)
	}

	return stack, nil
}
