/*
Package ports defines the driven ports (interfaces) of the drafting engine.

These interfaces keep the drawing core free of storage and coordination
details, so the same session code runs against memory, files or Redis.

# Key Interfaces

  - ProjectStore: Persists and loads drawings as domain.Project values.
  - DistributedLocker: Provides distributed locking for concurrent session access.
*/
package ports
