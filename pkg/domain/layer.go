package domain

import "sort"

// DefaultLayerID is the layer that always exists.
const DefaultLayerID uint64 = 0

type Layer struct {
	ID        uint64   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Color     [4]uint8 `json:"color" yaml:"color"`
	IsVisible bool     `json:"is_visible" yaml:"is_visible"`
}

// LayerManager keeps the drawing layers and the active one. New entities
// are placed on the active layer.
type LayerManager struct {
	Layers map[uint64]*Layer `json:"layers" yaml:"layers"`
	Active uint64            `json:"active" yaml:"active"`
	NextID uint64            `json:"next_id" yaml:"next_id"`
}

func NewLayerManager() *LayerManager {
	return &LayerManager{
		Layers: map[uint64]*Layer{
			DefaultLayerID: {ID: DefaultLayerID, Name: "Default", Color: [4]uint8{255, 255, 255, 255}, IsVisible: true},
		},
		Active: DefaultLayerID,
		NextID: 1,
	}
}

// Add creates a visible layer and returns its id.
func (m *LayerManager) Add(name string, color [4]uint8) uint64 {
	id := m.NextID
	m.NextID++
	m.Layers[id] = &Layer{ID: id, Name: name, Color: color, IsVisible: true}
	return id
}

// Remove deletes a layer. The default layer cannot be removed; removing the
// active layer makes the default layer active.
func (m *LayerManager) Remove(id uint64) bool {
	if id == DefaultLayerID {
		return false
	}
	if _, ok := m.Layers[id]; !ok {
		return false
	}
	delete(m.Layers, id)
	if m.Active == id {
		m.Active = DefaultLayerID
	}
	return true
}

// SetActive switches the active layer if it exists.
func (m *LayerManager) SetActive(id uint64) bool {
	if _, ok := m.Layers[id]; !ok {
		return false
	}
	m.Active = id
	return true
}

func (m *LayerManager) Get(id uint64) (*Layer, bool) {
	l, ok := m.Layers[id]
	return l, ok
}

// ByName finds a layer case-sensitively.
func (m *LayerManager) ByName(name string) (*Layer, bool) {
	for _, l := range m.Sorted() {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Sorted lists the layers by id.
func (m *LayerManager) Sorted() []*Layer {
	out := make([]*Layer, 0, len(m.Layers))
	for _, l := range m.Layers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *LayerManager) Clone() *LayerManager {
	cp := &LayerManager{Layers: make(map[uint64]*Layer, len(m.Layers)), Active: m.Active, NextID: m.NextID}
	for id, l := range m.Layers {
		c := *l
		cp.Layers[id] = &c
	}
	return cp
}
