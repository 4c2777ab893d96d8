// internal/types/types.go
package types

// EntityID identifies a simulated entity for diagnostics and events.
type EntityID uint32
