// Package engine defines the call boundary between the typed value layer
// and the IR engine that owns all values and types.
//
// Handles are opaque references into engine-owned storage. This layer never
// frees a handle; lifetime is scoped to the engine instance that produced
// it, and using a handle after its engine is gone is a caller error that
// cannot be detected here.
package engine
