// Package ir is a typed object model over engine-owned IR value handles.
//
// Every wrapper holds an opaque handle into an engine and delegates all
// computation to it; arithmetic on constants folds at construction time.
// The concrete wrapper set is closed: Wrap classifies a handle by its
// TypeKind tag through an exhaustive table, and metadata-kind handles are
// rejected rather than misclassified.
//
// The model is single threaded. No call blocks or spawns work, and no
// wrapper owns its handle; handle lifetime is scoped to the engine that
// produced it, and using a wrapper after that engine is torn down is a
// caller error this package cannot detect. AttrSet keeps the only
// client-side cache and is correct only while all attribute mutation for a
// value goes through one AttrSet instance.
package ir
