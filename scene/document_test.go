package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("parses layers and removals", func(t *testing.T) {
		t.Parallel()

		doc, err := Decode(strings.NewReader(`
name: demo
layers:
  - name: sky
    z: 0
  - name: debug
    z: 9
    hidden: true
remove: [sky]
`))
		require.NoError(t, err)
		assert.Equal(t, "demo", doc.Name)
		assert.Equal(t, []LayerSpec{
			{Name: "sky", Z: 0},
			{Name: "debug", Z: 9, Hidden: true},
		}, doc.Layers)
		assert.Equal(t, []string{"sky"}, doc.Remove)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(strings.NewReader("layers:\n  - {name: a, depth: 3}\n"))
		require.ErrorIs(t, err, ErrDecode)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(strings.NewReader(""))
		require.ErrorIs(t, err, ErrDecode)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := Decode(strings.NewReader("layers: [unclosed"))
		require.ErrorIs(t, err, ErrDecode)
	})
}

func TestDecodeTOML(t *testing.T) {
	t.Parallel()

	t.Run("parses layers and removals", func(t *testing.T) {
		t.Parallel()

		doc, err := DecodeTOML(strings.NewReader(`
name = "demo"
remove = ["sky"]

[[layers]]
name = "sky"
z = 0

[[layers]]
name = "debug"
z = 9
hidden = true
`))
		require.NoError(t, err)
		assert.Equal(t, "demo", doc.Name)
		assert.Equal(t, []LayerSpec{
			{Name: "sky", Z: 0},
			{Name: "debug", Z: 9, Hidden: true},
		}, doc.Layers)
		assert.Equal(t, []string{"sky"}, doc.Remove)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeTOML(strings.NewReader("[[layers]]\nname = \"a\"\ndepth = 3\n"))
		require.ErrorIs(t, err, ErrDecode)
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeTOML(strings.NewReader("name = "))
		require.ErrorIs(t, err, ErrDecode)
	})
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		doc := &Document{
			Layers: []LayerSpec{{Name: "a"}, {Name: "b", Z: 1}},
			Remove: []string{"a"},
		}

		require.NoError(t, doc.Validate())
	})

	t.Run("reports every problem", func(t *testing.T) {
		t.Parallel()

		doc := &Document{
			Layers: []LayerSpec{{Name: ""}, {Name: "a"}, {Name: "a"}},
			Remove: []string{"ghost"},
		}

		err := doc.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidLayer)
		require.ErrorIs(t, err, ErrDuplicateLayer)
		require.ErrorIs(t, err, ErrUnknownLayer)
	})
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("pushes then removes", func(t *testing.T) {
		t.Parallel()

		doc := &Document{
			Name: "build-" + t.Name(),
			Layers: []LayerSpec{
				{Name: "hud", Z: 10},
				{Name: "sky", Z: 0},
				{Name: "clouds", Z: 0},
			},
			Remove: []string{"sky"},
		}

		stack, err := Build(t.Context(), doc, WithLogger(slogt.New(t)))
		require.NoError(t, err)
		assert.Equal(t, doc.Name, stack.Name())
		assert.Equal(t, "[clouds@0, hud@10]", stack.String())
	})

	t.Run("default name", func(t *testing.T) {
		t.Parallel()

		stack, err := Build(t.Context(), &Document{}, WithLogger(slogt.New(t)))
		require.NoError(t, err)
		assert.Equal(t, DefaultName, stack.Name())
		assert.Equal(t, 0, stack.Len())
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()

		_, err := Build(t.Context(), &Document{Remove: []string{"x"}}, WithLogger(slogt.New(t)))
		require.ErrorIs(t, err, ErrUnknownLayer)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("testdata scene", func(t *testing.T) {
		t.Parallel()

		stack, err := LoadFile(t.Context(), filepath.Join("testdata", "hud.yaml"), WithLogger(slogt.New(t)))
		require.NoError(t, err)

		assert.Equal(t, "hud", stack.Name())
		assert.Equal(t, "[background@0, units@10, minimap@20, debug@99(hidden)]", stack.String())
	})

	t.Run("toml scene", func(t *testing.T) {
		t.Parallel()

		stack, err := LoadFile(t.Context(), filepath.Join("testdata", "hud.toml"), WithLogger(slogt.New(t)))
		require.NoError(t, err)

		assert.Equal(t, "hud", stack.Name())
		assert.Equal(t, "[background@0, units@10, minimap@20, debug@99(hidden)]", stack.String())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFile(t.Context(), filepath.Join(t.TempDir(), "none.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("layers: {}\n"), 0o600))

		_, err := LoadFile(t.Context(), path, WithLogger(slogt.New(t)))
		require.ErrorIs(t, err, ErrDecode)
	})
}
