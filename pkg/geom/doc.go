/*
Package geom holds the 2D math the drafting engine is built on.

Everything here is a pure function over Vector2 values: segment, circle,
arc and ray intersections, angle normalisation and polygon measures.
Nothing in this package knows about entities or commands; the
entity-aware algorithms live in package kernel.

Coordinates are float32 to match the persisted drawing format. Tolerances
are absolute drawing units.
*/
package geom
