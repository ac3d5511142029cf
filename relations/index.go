package relations

import (
	"cmp"
	"maps"
	"slices"
)

type Light[ID comparable] struct {
	ID          ID
	CullingMask Mask
}

type Renderer[ID comparable] struct {
	ID    ID
	Layer Layer
}

// SelectionMask collects the layers touched by the selected renderers.
func SelectionMask[ID comparable](selected []Renderer[ID]) Mask {
	var m Mask
	for _, r := range selected {
		m |= r.Layer.Mask()
	}
	return m
}

// SelectionIndex maps the lights that can reach the current selection to every
// renderer each of them can reach.
type SelectionIndex[ID comparable] struct {
	Mask     Mask
	Lights   []ID
	Affected map[ID][]ID
}

// BuildSelectionIndex rebuilds the index from scratch. Lights and affected renderers
// keep the order they were passed in.
func BuildSelectionIndex[ID comparable](selected []Renderer[ID], lights []Light[ID], renderers []Renderer[ID]) SelectionIndex[ID] {
	idx := SelectionIndex[ID]{
		Mask:     SelectionMask(selected),
		Affected: make(map[ID][]ID),
	}

	for _, l := range lights {
		if !l.CullingMask.Intersects(idx.Mask) {
			continue
		}
		idx.Lights = append(idx.Lights, l.ID)

		affected := []ID{}
		for _, r := range renderers {
			if l.CullingMask.Contains(r.Layer) {
				affected = append(affected, r.ID)
			}
		}
		idx.Affected[l.ID] = affected
	}
	return idx
}

type set[T comparable] = map[T]struct{}

// Groups buckets every light by culling mask, and for each of those masks every
// renderer the mask reaches.
type Groups[ID comparable] struct {
	Lights    map[Mask]set[ID]
	Renderers map[Mask]set[ID]
}

func BuildGroups[ID comparable](lights []Light[ID], renderers []Renderer[ID]) Groups[ID] {
	g := Groups[ID]{
		Lights:    make(map[Mask]set[ID]),
		Renderers: make(map[Mask]set[ID]),
	}

	for _, l := range lights {
		group, ok := g.Lights[l.CullingMask]
		if !ok {
			group = make(set[ID])
			g.Lights[l.CullingMask] = group
		}
		group[l.ID] = struct{}{}
	}

	for mask := range g.Lights {
		for _, r := range renderers {
			if !mask.Contains(r.Layer) {
				continue
			}
			group, ok := g.Renderers[mask]
			if !ok {
				group = make(set[ID])
				g.Renderers[mask] = group
			}
			group[r.ID] = struct{}{}
		}
	}
	return g
}

// Masks returns the group keys in ascending order.
func (g Groups[ID]) Masks() []Mask {
	return slices.Sorted(maps.Keys(g.Lights))
}

// Members returns the ids of a group in ascending order.
func Members[ID cmp.Ordered](s map[ID]struct{}) []ID {
	return slices.Sorted(maps.Keys(s))
}
