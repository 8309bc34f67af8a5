package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(entities []Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

func TestEntityStoreEmpty(t *testing.T) {
	s := NewEntityStore()
	assert.Empty(t, s.All())
	assert.Equal(t, 0, s.Len())

	s.Add(Entity{ID: "a", X: 0, Y: 0})
	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "a", all[0].ID)
}

func TestEntityStoreAddOverwrites(t *testing.T) {
	s := NewEntityStore()
	s.Add(Entity{ID: "a", X: 1, Y: 1})
	s.Add(Entity{ID: "b", X: 2, Y: 2})
	s.Add(Entity{ID: "a", X: 5, Y: 6})

	assert.Equal(t, []string{"a", "b"}, ids(s.All()), "overwrite keeps position")

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, Entity{ID: "a", X: 5, Y: 6}, got)
}

func TestEntityStoreAddIdempotent(t *testing.T) {
	once := NewEntityStore()
	once.Add(Entity{ID: "a", X: 1, Y: 2})

	twice := NewEntityStore()
	twice.Add(Entity{ID: "a", X: 1, Y: 2})
	twice.Add(Entity{ID: "a", X: 1, Y: 2})

	assert.Equal(t, once.All(), twice.All())
}

func TestEntityStoreRemove(t *testing.T) {
	s := NewEntityStore()
	s.Add(Entity{ID: "a"})
	s.Add(Entity{ID: "b"})
	s.Add(Entity{ID: "c"})

	s.Remove("b")
	assert.Equal(t, []string{"a", "c"}, ids(s.All()))

	_, ok := s.Get("b")
	assert.False(t, ok)

	// Index of "c" must follow the shift
	c, ok := s.Get("c")
	require.True(t, ok)
	assert.Equal(t, "c", c.ID)

	before := s.All()
	s.Remove("missing")
	s.Remove("b")
	assert.Equal(t, before, s.All())

	// Re-adding appends at the end
	s.Add(Entity{ID: "b"})
	assert.Equal(t, []string{"a", "c", "b"}, ids(s.All()))
}

func TestEntityStoreGetMissing(t *testing.T) {
	s := NewEntityStore()
	got, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, Entity{}, got)
}

func TestEntityStoreSnapshotIsolation(t *testing.T) {
	s := NewEntityStore()
	s.Add(Entity{ID: "a", X: 1, Y: 1})

	snap := s.All()
	snap[0].X = 100

	s.Update(1000)
	s.Add(Entity{ID: "b"})

	assert.Len(t, snap, 1)
	assert.Equal(t, 100.0, snap[0].X)

	got, _ := s.Get("a")
	assert.InDelta(t, 11.0, got.X, 1e-9)

	// Copies returned by Get do not alias the store either
	got.X = -1
	again, _ := s.Get("a")
	assert.InDelta(t, 11.0, again.X, 1e-9)
}

func TestEntityStoreUpdate(t *testing.T) {
	tests := []struct {
		name  string
		start Entity
		delta float64
		wantX float64
		wantY float64
	}{
		{"zero delta", Entity{ID: "a", X: 1, Y: 2}, 0, 1, 2},
		{"one frame", Entity{ID: "a", X: 0, Y: 0}, 20, 0.2, 0.2},
		{"offset origin", Entity{ID: "a", X: 3, Y: -4}, 100, 4, -3},
		{"fractional delta", Entity{ID: "a", X: 0, Y: 0}, 16.5, 0.165, 0.165},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewEntityStore()
			s.Add(tc.start)
			s.Update(tc.delta)

			got, ok := s.Get(tc.start.ID)
			require.True(t, ok)
			assert.Equal(t, tc.start.X+tc.delta*Rate, got.X)
			assert.Equal(t, tc.start.Y+tc.delta*Rate, got.Y)
			assert.InDelta(t, tc.wantX, got.X, 1e-9)
			assert.InDelta(t, tc.wantY, got.Y, 1e-9)
		})
	}
}

func TestEntityStoreUpdateLinear(t *testing.T) {
	split := NewEntityStore()
	split.Add(Entity{ID: "a", X: 1, Y: 1})
	split.Update(7)
	split.Update(13)

	whole := NewEntityStore()
	whole.Add(Entity{ID: "a", X: 1, Y: 1})
	whole.Update(20)

	a, _ := split.Get("a")
	b, _ := whole.Get("a")
	assert.InDelta(t, b.X, a.X, 1e-9)
	assert.InDelta(t, b.Y, a.Y, 1e-9)
}

func TestEntityStoreSequence(t *testing.T) {
	s := NewEntityStore()
	s.Add(Entity{ID: "a", X: 1})
	s.Add(Entity{ID: "b", X: 2})
	s.Remove("a")
	s.Add(Entity{ID: "c", X: 3})
	s.Add(Entity{ID: "b", X: 4})
	s.Remove("zzz")
	s.Add(Entity{ID: "a", X: 5})

	assert.Equal(t, []Entity{
		{ID: "b", X: 4},
		{ID: "c", X: 3},
		{ID: "a", X: 5},
	}, s.All())
}
