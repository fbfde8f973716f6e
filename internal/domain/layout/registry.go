package layout

import (
	"iter"
	"math"
	"sort"
)

// FormatRegistry is the immutable catalog of physical format descriptors.
// It is populated once at construction and read-only thereafter, so it is
// safe to share across any number of concurrent readers without locking.
type FormatRegistry struct {
	byID    map[FormatID]FormatDescriptor
	ordered []FormatDescriptor
}

// NewFormatRegistry builds the registry from the fixed format catalog
func NewFormatRegistry() *FormatRegistry {
	r := &FormatRegistry{
		byID:    make(map[FormatID]FormatDescriptor, len(formatCatalog)),
		ordered: make([]FormatDescriptor, len(formatCatalog)),
	}
	copy(r.ordered, formatCatalog)
	for _, f := range r.ordered {
		r.byID[f.ID] = f
	}
	return r
}

// Lookup returns the descriptor for the given format id.
// Returns ErrUnknownFormat if the id is not in the catalog.
func (r *FormatRegistry) Lookup(id FormatID) (FormatDescriptor, error) {
	f, ok := r.byID[id]
	if !ok {
		return FormatDescriptor{}, ErrUnknownFormat
	}
	return f, nil
}

// List returns a lazy, restartable sequence of descriptors filtered by
// classification, in catalog order.
func (r *FormatRegistry) List(class Classification) iter.Seq[FormatDescriptor] {
	return func(yield func(FormatDescriptor) bool) {
		for _, f := range r.ordered {
			if f.Classification != class {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// All returns every descriptor in catalog order
func (r *FormatRegistry) All() []FormatDescriptor {
	out := make([]FormatDescriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Nearest selects, among the candidate ids, the descriptor closest to the
// target under the classification's distance metric: Euclidean distance over
// (width, height) for paper, absolute width difference for thermal.
// Candidates of a different classification than the target are skipped.
// Ties prefer the larger printable area (paper) or larger width (thermal),
// then the ascending format id for determinism.
func (r *FormatRegistry) Nearest(target FormatDescriptor, candidates []FormatID) (FormatDescriptor, bool) {
	ids := make([]FormatID, len(candidates))
	copy(ids, candidates)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var best FormatDescriptor
	bestDist := math.Inf(1)
	found := false

	for _, id := range ids {
		c, ok := r.byID[id]
		if !ok || c.Classification != target.Classification {
			continue
		}
		d := formatDistance(target, c)
		switch {
		case d < bestDist:
			best, bestDist, found = c, d, true
		case d == bestDist && found && largerTarget(c, best):
			best = c
		}
	}
	return best, found
}

// formatDistance computes the substitution distance between two descriptors
// of the same classification.
func formatDistance(a, b FormatDescriptor) float64 {
	if a.Classification == ClassThermal {
		return math.Abs(a.WidthMM - b.WidthMM)
	}
	dw := a.WidthMM - b.WidthMM
	dh := a.HeightMM - b.HeightMM
	return math.Sqrt(dw*dw + dh*dh)
}

// largerTarget reports whether a is the preferred tie-break winner over b
func largerTarget(a, b FormatDescriptor) bool {
	if a.Classification == ClassThermal {
		return a.WidthMM > b.WidthMM
	}
	return a.WidthMM*a.HeightMM > b.WidthMM*b.HeightMM
}

// StyleRegistry is the immutable catalog of layout style rule sets
type StyleRegistry struct {
	byID    map[StyleID]StyleDescriptor
	ordered []StyleDescriptor
}

// NewStyleRegistry builds the registry from the fixed style catalog
func NewStyleRegistry() *StyleRegistry {
	r := &StyleRegistry{
		byID:    make(map[StyleID]StyleDescriptor, len(styleCatalog)),
		ordered: make([]StyleDescriptor, len(styleCatalog)),
	}
	copy(r.ordered, styleCatalog)
	for _, s := range r.ordered {
		r.byID[s.ID] = s
	}
	return r
}

// Lookup returns the descriptor for the given style id.
// Returns ErrUnknownStyle if the id is not in the catalog.
func (r *StyleRegistry) Lookup(id StyleID) (StyleDescriptor, error) {
	s, ok := r.byID[id]
	if !ok {
		return StyleDescriptor{}, ErrUnknownStyle
	}
	return s, nil
}

// All returns every style descriptor in catalog order
func (r *StyleRegistry) All() []StyleDescriptor {
	out := make([]StyleDescriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Resolve returns the style adjusted for the target classification.
// Thermal stock cannot render box drawing reliably, so borders are forced
// off for thermal targets regardless of the style's normal default.
func (r *StyleRegistry) Resolve(id StyleID, class Classification) (StyleDescriptor, error) {
	s, err := r.Lookup(id)
	if err != nil {
		return StyleDescriptor{}, err
	}
	if class == ClassThermal {
		s.ShowBorders = false
	}
	return s, nil
}
