package engine

import "github.com/arkadyan/novablast/core"

// AnyStore provides type-erased operations for lifecycle management
// It lets the World purge an entity from every store on destruction
// without knowing the concrete component types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the operations the query builder
// needs to intersect component sets
type QueryableStore interface {
	AnyStore

	// All returns an owned snapshot of entities holding this component type
	All() []core.Entity
}
