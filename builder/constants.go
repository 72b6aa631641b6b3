// Package builder defines shared constants used by graph builders.
package builder

// Method names used to prefix errors with the constructor name for context.
const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodMesh is the canonical name for the Mesh constructor.
	MethodMesh = "Mesh"
)

// DefaultEdgeWeight is the weight assigned to each edge of a weighted graph
// when no WithWeightFn option is provided.
const DefaultEdgeWeight = 1.0
