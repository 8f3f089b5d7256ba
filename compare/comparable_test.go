package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ticket compares on ID only; Note is ignored.
type ticket struct {
	ID   int
	Note string
}

func (t ticket) Equals(other ticket) bool {
	return t.ID == other.ID
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        ticket
		b        ticket
		expected bool
	}{
		{
			name:     "same id same note",
			a:        ticket{ID: 1, Note: "x"},
			b:        ticket{ID: 1, Note: "x"},
			expected: true,
		},
		{
			name:     "same id different note",
			a:        ticket{ID: 1, Note: "x"},
			b:        ticket{ID: 1, Note: "y"},
			expected: true,
		},
		{
			name:     "different id",
			a:        ticket{ID: 1},
			b:        ticket{ID: 2},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals(tt.a, tt.b))
			assert.Equal(t, tt.expected, EqualFunc[ticket]()(tt.a, tt.b))
		})
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	eq := Identity[ticket]()

	assert.True(t, eq(ticket{ID: 1, Note: "x"}, ticket{ID: 1, Note: "x"}))
	assert.False(t, eq(ticket{ID: 1, Note: "x"}, ticket{ID: 1, Note: "y"}))
}
