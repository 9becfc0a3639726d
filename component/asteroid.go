package component

// AsteroidComponent marks an asteroid and its size class
// Sizes above 1 split into two smaller asteroids on destruction
type AsteroidComponent struct {
	Size int
}
