package engine

import (
	"sort"

	"github.com/arkadyan/novablast/core"
)

// QueryBuilder provides a fluent interface for querying entities based on
// component intersection. Execute returns an owned snapshot evaluated at
// call time, never a live view: systems routinely destroy entities while
// iterating a previous query's results, and a borrowed view would
// invalidate mid-iteration
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}
// Query creates a new QueryBuilder
//
// Example:
//
//	entities := world.Query().
//	    With(world.Transforms).
//	    With(world.Colliders).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// The query returns only entities present in ALL specified stores
// Panics if called after Execute
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns the snapshot of matching entities
// Stores are intersected smallest-first to minimize membership checks
// Calling Execute again returns the cached snapshot
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	if len(qb.stores) == 1 {
		// Store.All already returns an owned copy
		qb.results = qb.stores[0].All()
		return qb.results
	}

	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	// The smallest store's snapshot is owned, so it can be filtered in place
	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered

		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
