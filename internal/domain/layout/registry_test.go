package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRegistryLookup(t *testing.T) {
	registry := NewFormatRegistry()

	t.Run("known format", func(t *testing.T) {
		f, err := registry.Lookup(FormatA4)
		require.NoError(t, err)
		assert.Equal(t, FormatA4, f.ID)
		assert.Equal(t, 210.0, f.WidthMM)
		assert.Equal(t, 297.0, f.HeightMM)
		assert.Equal(t, ClassPaper, f.Classification)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := registry.Lookup("B5")
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func TestFormatRegistryList(t *testing.T) {
	registry := NewFormatRegistry()

	var thermal []FormatID
	for f := range registry.List(ClassThermal) {
		assert.Equal(t, ClassThermal, f.Classification)
		thermal = append(thermal, f.ID)
	}
	assert.Equal(t, []FormatID{FormatThermal57, FormatThermal58, FormatThermal76, FormatThermal80}, thermal)

	paper := 0
	for range registry.List(ClassPaper) {
		paper++
	}
	assert.Equal(t, len(registry.All())-len(thermal), paper)
}

func TestFormatRegistryListIsRestartable(t *testing.T) {
	registry := NewFormatRegistry()
	seq := registry.List(ClassThermal)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second)
}

func TestFormatRegistryNearest(t *testing.T) {
	registry := NewFormatRegistry()

	lookup := func(id FormatID) FormatDescriptor {
		f, err := registry.Lookup(id)
		require.NoError(t, err)
		return f
	}

	tests := []struct {
		name       string
		target     FormatID
		candidates []FormatID
		want       FormatID
		wantFound  bool
	}{
		{
			name:   "A3 prefers A4 over A5",
			target: FormatA3, candidates: []FormatID{FormatA4, FormatA5},
			want: FormatA4, wantFound: true,
		},
		{
			name:   "thermal matches by width",
			target: FormatThermal80, candidates: []FormatID{FormatThermal57, FormatThermal76},
			want: FormatThermal76, wantFound: true,
		},
		{
			name:   "cross-classification candidates are skipped",
			target: FormatThermal80, candidates: []FormatID{FormatA4, FormatLetter},
			wantFound: false,
		},
		{
			name:   "unknown candidate ids are ignored",
			target: FormatA4, candidates: []FormatID{"B5", FormatLetter},
			want: FormatLetter, wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := registry.Nearest(lookup(tt.target), tt.candidates)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got.ID)
			}
		})
	}
}

func TestStyleRegistry(t *testing.T) {
	registry := NewStyleRegistry()

	t.Run("known style", func(t *testing.T) {
		s, err := registry.Lookup(StyleClassic)
		require.NoError(t, err)
		assert.True(t, s.ShowBorders)
		assert.False(t, s.ShowDescription)
		assert.InDelta(t, 0.40, s.Columns.Item, 1e-9)
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := registry.Lookup("fancy")
		assert.ErrorIs(t, err, ErrUnknownStyle)
	})

	t.Run("detailed shows description column", func(t *testing.T) {
		s, err := registry.Lookup(StyleDetailed)
		require.NoError(t, err)
		assert.True(t, s.ShowDescription)
		assert.Greater(t, s.Columns.Description, 0.0)
	})

	t.Run("column fractions sum to one", func(t *testing.T) {
		for _, s := range registry.All() {
			sum := s.Columns.Item + s.Columns.Description + s.Columns.Qty + s.Columns.Price + s.Columns.Total
			assert.InDelta(t, 1.0, sum, 1e-9, "style %s", s.ID)
		}
	})

	t.Run("resolve forces borders off for thermal", func(t *testing.T) {
		s, err := registry.Resolve(StyleClassic, ClassThermal)
		require.NoError(t, err)
		assert.False(t, s.ShowBorders)

		s, err = registry.Resolve(StyleClassic, ClassPaper)
		require.NoError(t, err)
		assert.True(t, s.ShowBorders)
	})
}
