// Package builder provides deterministic topology constructors that operate on
// explicit vertex-ID lists: Complete (K_n over a segment's points), Star
// (spokes from segment centers to a hub) and Mesh (ordered-pair insertion over
// segment centers).
//
// Constructors are closures of type Constructor and are run either against a
// fresh graph (BuildGraph) or an existing one (Apply). Functional options
// (BuilderOption) configure pair weights and duplicate handling:
//
//	builder.Apply(g, []builder.BuilderOption{builder.WithWeightFn(dist)},
//	    builder.Complete(ids))
//
// Guarantees:
//
//   - Stable emission order, documented per constructor.
//   - Option constructors panic on nil functions; constructors return sentinel
//     errors (ErrEmptyID, ErrDuplicateID, ErrNilGraph, ErrConstructFailed) wrapped
//     with the method name.
//   - Core mode flags (directed, weighted, multigraph, loops) are honoured.
package builder
