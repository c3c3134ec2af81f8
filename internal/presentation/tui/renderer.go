package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Report describes a drawing as markdown: entity counts per kind, the entity
// tree, layers, axes and the structural type library.
func Report(name string, m *domain.Model) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)

	counts := map[string]int{}
	total := 0
	m.Walk(func(e *domain.Entity, _ int) bool {
		counts[e.TypeName()]++
		total++
		return true
	})
	lo, hi := m.Bounds()
	fmt.Fprintf(&sb, "%d entities, bounds (%.2f, %.2f) - (%.2f, %.2f)\n\n", total, lo.X, lo.Y, hi.X, hi.Y)

	if total > 0 {
		kinds := make([]string, 0, len(counts))
		for k := range counts {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		sb.WriteString("| Kind | Count |\n|---|---|\n")
		for _, k := range kinds {
			fmt.Fprintf(&sb, "| %s | %d |\n", k, counts[k])
		}

		sb.WriteString("\n## Entities\n\n")
		m.Walk(func(e *domain.Entity, depth int) bool {
			layer := "?"
			if l, ok := m.Layers.Get(e.LayerID); ok {
				layer = l.Name
			}
			fmt.Fprintf(&sb, "%s- `#%d` **%s** (%s)\n", strings.Repeat("  ", depth), e.ID, e.Name, layer)
			return true
		})
	}

	sb.WriteString("\n## Layers\n\n")
	for _, l := range m.Layers.Sorted() {
		active := ""
		if l.ID == m.Layers.Active {
			active = " *(active)*"
		}
		fmt.Fprintf(&sb, "- %d: %s%s\n", l.ID, l.Name, active)
	}

	if m.Axes.Len() > 0 {
		sb.WriteString("\n## Axes\n\n")
		for _, a := range m.Axes.Axes {
			fmt.Fprintf(&sb, "- %s: %s at %.2f\n", a.Label, a.Orientation, a.Position)
		}
	}

	cols, beams := m.Definitions.SortedColumnTypes(), m.Definitions.SortedBeamTypes()
	if len(cols)+len(beams) > 0 {
		sb.WriteString("\n## Structural types\n\n")
		for _, t := range cols {
			fmt.Fprintf(&sb, "- Column %s: %gx%g\n", t.Name, t.Width, t.Depth)
		}
		for _, t := range beams {
			fmt.Fprintf(&sb, "- Beam %s: %gx%g\n", t.Name, t.Width, t.Height)
		}
	}
	return sb.String()
}
