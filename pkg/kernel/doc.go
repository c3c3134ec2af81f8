// Package kernel holds the geometry algorithms that need to see entities:
// closed-region extraction, line intersections against every shape kind,
// trimming and offsetting. The pure vector math lives in package geom.
package kernel
