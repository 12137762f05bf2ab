package core

// Size describes the dimensions of a world grid.
type Size struct {
	W int
	H int
}
