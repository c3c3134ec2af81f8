/*
Package domain contains the drawing model of the MuginCAD engine.

It defines the shape primitives, the entity tree that groups them, and the
Model that owns an ordered list of top-level entities together with the
construction axes, layers and structural definitions of a drawing. This
package is kept pure: no I/O, no persistence, no goroutines.

# Key Entities

  - Shape: a closed set of primitives (Line, Circle, Rectangle, Arc, Text, Column, Beam).
  - Entity: a node of the drawing tree; either wraps a Shape or groups children.
  - Model: the top-level entity list plus an id counter that never rolls back.
  - Selection: a set of entity ids.
  - Project: the serialisable snapshot handed to persistence adapters.
*/
package domain
