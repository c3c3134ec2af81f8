/*
Package session serialises access to live drawings.

A Manager keeps one mugincad.Drawing per session id in memory, guards each
id with a reference-counted mutex (and optionally a distributed lock), and
writes the drawing's project to a ports.ProjectStore after every change.
Drawings evicted from memory are rebuilt from the store on next use, so
several replicas can share one Redis store.
*/
package session
