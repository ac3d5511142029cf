// Package relations works out which lights can reach which renderers by comparing a
// light's culling mask against a renderer's layer.
package relations

import (
	"fmt"
	"math/bits"
	"strings"
)

// Layer is one of the 32 rendering layers an object can belong to.
type Layer uint8

// Mask is a set of layers, one bit per layer.
type Mask uint32

const (
	MaxLayers = 32

	Nothing    Mask = 0
	Everything Mask = 0xFFFFFFFF
)

func (l Layer) Mask() Mask { return 1 << (l % MaxLayers) }

func (m Mask) Contains(l Layer) bool  { return m&l.Mask() != 0 }
func (m Mask) Intersects(o Mask) bool { return m&o != 0 }
func (m Mask) Count() int             { return bits.OnesCount32(uint32(m)) }

// MaskOf builds a mask from individual layers.
func MaskOf(layers ...Layer) Mask {
	var m Mask
	for _, l := range layers {
		m |= l.Mask()
	}
	return m
}

// Layers lists the set layers in ascending order.
func (m Mask) Layers() []Layer {
	res := make([]Layer, 0, m.Count())
	for i := 0; i < MaxLayers; i++ {
		if m.Contains(Layer(i)) {
			res = append(res, Layer(i))
		}
	}
	return res
}

// LayerNames holds the user facing name of every layer. Empty entries are unnamed.
type LayerNames [MaxLayers]string

func DefaultLayerNames() LayerNames {
	var n LayerNames
	n[0] = "Default"
	n[1] = "TransparentFX"
	n[2] = "Ignore Raycast"
	n[4] = "Water"
	n[5] = "UI"
	return n
}

// NewLayerNames copies names over the defaults; extra entries are ignored.
func NewLayerNames(names []string) LayerNames {
	n := DefaultLayerNames()
	for i, name := range names {
		if i >= MaxLayers {
			break
		}
		if name != "" {
			n[i] = name
		}
	}
	return n
}

func (n LayerNames) Name(l Layer) string {
	if name := n[l%MaxLayers]; name != "" {
		return name
	}
	return fmt.Sprintf("Layer %d", l)
}

// Describe renders a mask for display.
func (n LayerNames) Describe(m Mask) string {
	switch m {
	case Nothing:
		return "Nothing"
	case Everything:
		return "Everything"
	}
	var names []string
	for _, l := range m.Layers() {
		names = append(names, n.Name(l))
	}
	return strings.Join(names, ", ")
}
