package domain

import (
	"strconv"

	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
)

type AxisOrientation string

const (
	AxisVertical   AxisOrientation = "vertical"
	AxisHorizontal AxisOrientation = "horizontal"
)

// Axis is an infinite construction line. Position is X for a vertical axis
// and Y for a horizontal one.
type Axis struct {
	Position    float32         `json:"position" yaml:"position"`
	Orientation AxisOrientation `json:"orientation" yaml:"orientation"`
	Label       string          `json:"label" yaml:"label"`
}

// Span returns the two endpoints of the axis clipped to a viewport.
func (a Axis) Span(lo, hi geom.Vector2) (geom.Vector2, geom.Vector2) {
	if a.Orientation == AxisVertical {
		return geom.Vec(a.Position, lo.Y), geom.Vec(a.Position, hi.Y)
	}
	return geom.Vec(lo.X, a.Position), geom.Vec(hi.X, a.Position)
}

// AxisManager owns the axes and hands out labels: A, B, ..., Z, AA, AB for
// vertical axes and 1, 2, 3 for horizontal ones.
type AxisManager struct {
	Axes           []Axis `json:"axes" yaml:"axes"`
	NextVertical   int    `json:"next_vertical" yaml:"next_vertical"`
	NextHorizontal int    `json:"next_horizontal" yaml:"next_horizontal"`
}

func NewAxisManager() *AxisManager {
	return &AxisManager{NextHorizontal: 1}
}

// AxisLetter converts a zero-based index to a spreadsheet-style label.
func AxisLetter(index int) string {
	if index < 26 {
		return string(rune('A' + index))
	}
	first := index/26 - 1
	second := index % 26
	return string([]rune{rune('A' + first), rune('A' + second)})
}

func (m *AxisManager) AddVertical(x float32) Axis {
	a := Axis{Position: x, Orientation: AxisVertical, Label: AxisLetter(m.NextVertical)}
	m.NextVertical++
	m.Axes = append(m.Axes, a)
	return a
}

func (m *AxisManager) AddHorizontal(y float32) Axis {
	a := Axis{Position: y, Orientation: AxisHorizontal, Label: strconv.Itoa(m.NextHorizontal)}
	m.NextHorizontal++
	m.Axes = append(m.Axes, a)
	return a
}

// Clear removes every axis and restarts labelling.
func (m *AxisManager) Clear() {
	m.Axes = nil
	m.NextVertical = 0
	m.NextHorizontal = 1
}

// Remove deletes the axis at index; out-of-range indexes are ignored.
// Labels are not reused.
func (m *AxisManager) Remove(index int) {
	if index < 0 || index >= len(m.Axes) {
		return
	}
	m.Axes = append(m.Axes[:index], m.Axes[index+1:]...)
}

func (m *AxisManager) Len() int { return len(m.Axes) }

func (m *AxisManager) Clone() *AxisManager {
	cp := *m
	cp.Axes = append([]Axis(nil), m.Axes...)
	return &cp
}
