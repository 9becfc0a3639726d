package core

// Entity is an opaque handle identifying a simulation object
// IDs are allocated monotonically per world and never reused,
// so a destroyed handle can never resolve to another entity's data
type Entity uint64

// NoEntity is the zero handle; it is never alive
const NoEntity Entity = 0

// Layer is a collision-group bitmask tag
// A collider carries the layer it belongs to and a mask of the
// layers it is willing to test against
type Layer uint32
