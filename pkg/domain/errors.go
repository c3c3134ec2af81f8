package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrProjectNotFound is returned when a project key cannot be found in the store.
var ErrProjectNotFound = errors.New("project not found")

// ErrInvalidProject is returned when a project document cannot be decoded.
var ErrInvalidProject = errors.New("invalid project")

// ErrUnknownCommand is returned when a name is not registered.
var ErrUnknownCommand = errors.New("unknown command")

// ErrLockNotAcquired is returned when a distributed lock is held by someone else.
var ErrLockNotAcquired = errors.New("lock not acquired")

// ErrUnknownShape is returned when an entity document carries an unknown kind.
var ErrUnknownShape = errors.New("unknown shape kind")
