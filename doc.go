/*
Package mugincad is an interactive 2D drafting engine: multi-step drawing
commands driven by clicks and typed tokens, on top of a small computational
geometry kernel.

It separates the drawing model (entities, layers, axes, structural types)
from the command state machines that edit it and from the host that owns
input and rendering. The host feeds points and tokens to a Drawing and reads
back a status line after every call, so the same engine runs behind a
terminal REPL, an HTTP API or an MCP tool server.

# Key Features

  - Multi-step Commands: line, circle, arc, trim, offset, area and more, each a
    small state machine with its own prompts.
  - Geometry Kernel: hit-testing, intersections, closed-region extraction and
    polygon measures.
  - Snapshot Undo: every step that reaches a command can be undone.
  - Plain Data Projects: a Drawing exports and imports domain.Project values;
    stores decide the format.

# Usage

	d := mugincad.New()
	d.Submit("circle")
	d.Click(geom.Vec(0, 0))
	d.Submit("25")
	fmt.Println(d.Status()) // Command:

	p := d.Project() // hand to a ports.ProjectStore
*/
package mugincad
