package graph

import (
	"fmt"
	"strings"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
)

// GraphOverlay contains session state to highlight on the graph.
type GraphOverlay struct {
	Selected []uint64
	Active   string // name of the running command, shown on the root node
}

// GenerateMermaid produces a Mermaid flowchart of the entity tree.
// It applies semantic styling:
//   - Root (drawing): ((Circle))
//   - Group: [[Subroutine]]
//   - Closed shape: [Rectangle]
//   - Open shape: ([Stadium])
//   - Text: [/Parallelogram/]
//
// Entities on a layer other than the default one get a dotted edge.
func GenerateMermaid(name string, m *domain.Model, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	root := "drawing"
	label := escape(name)
	if overlay != nil && overlay.Active != "" {
		label = fmt.Sprintf("%s <br/> %s", label, escape(overlay.Active))
	}
	fmt.Fprintf(&sb, "    %s((\"%s\"))\n", root, label)

	for _, e := range m.Entities() {
		writeEntity(&sb, root, e)
	}

	if m.Axes.Len() > 0 {
		sb.WriteString("    axes{{\"axes\"}}\n")
		fmt.Fprintf(&sb, "    %s --- axes\n", root)
		for _, a := range m.Axes.Axes {
			id := "axis_" + sanitizeMermaidID(a.Label)
			fmt.Fprintf(&sb, "    %s>\"%s %s %.2f\"]\n", id, a.Label, a.Orientation, a.Position)
			fmt.Fprintf(&sb, "    axes --- %s\n", id)
		}
	}

	if overlay != nil && len(overlay.Selected) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef selected fill:#ffeb3b,stroke:#fbc02d,stroke-width:3px,color:#000;\n")
		seen := make(map[uint64]bool)
		for _, id := range overlay.Selected {
			if seen[id] || m.Find(id) == nil {
				continue
			}
			seen[id] = true
			fmt.Fprintf(&sb, "    class %s selected;\n", nodeID(id))
		}
	}

	return sb.String()
}

func writeEntity(sb *strings.Builder, parent string, e *domain.Entity) {
	id := nodeID(e.ID)
	opener, closer := "[", "]"
	switch {
	case e.IsContainer():
		opener, closer = "[[", "]]"
	case e.Kind() == domain.ShapeText:
		opener, closer = "[/", "/]"
	case !e.IsClosed():
		opener, closer = "([", "])"
	}
	fmt.Fprintf(sb, "    %s%s\"#%d %s\"%s\n", id, opener, e.ID, escape(e.Name), closer)

	arrow := "-->"
	if e.LayerID != domain.DefaultLayerID {
		arrow = fmt.Sprintf("-. L%d .->", e.LayerID)
	}
	fmt.Fprintf(sb, "    %s %s %s\n", parent, arrow, id)

	for _, c := range e.Children {
		writeEntity(sb, id, c)
	}
}

func nodeID(id uint64) string { return fmt.Sprintf("e%d", id) }

func escape(s string) string { return strings.ReplaceAll(s, "\"", "'") }

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(id)
}
