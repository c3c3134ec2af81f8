package runner

import "github.com/Hakkology/MuginCAD-sub000/pkg/domain"

// EntityRow is one line of a drawing outline.
type EntityRow struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Layer uint64 `json:"layer"`
	Depth int    `json:"depth"`
}

// Outline flattens the entity tree depth first.
func Outline(m *domain.Model) []EntityRow {
	rows := []EntityRow{}
	m.Walk(func(e *domain.Entity, depth int) bool {
		rows = append(rows, EntityRow{
			ID:    e.ID,
			Name:  e.Name,
			Type:  e.TypeName(),
			Layer: e.LayerID,
			Depth: depth,
		})
		return true
	})
	return rows
}
