// Package slicer extracts minimal single-operation slices from a loaded
// OpenAPI specification document.
//
// A Slicer holds at most one document at a time. Loading replaces the held
// document wholesale; extraction and listing are pure reads. All operations
// are safe for concurrent use: a load is an exclusive atomic swap and
// readers always observe either the previous or the next document, never a
// half-replaced state.
//
// Extraction computes the transitive closure of schema references reachable
// from the requested operation: a recursive walk collects every
// #/components/schemas/<Name> pointer in the operation subtree, then a
// fixed-point loop rescans the definitions of collected schemas until no new
// names appear. Mutually recursive schemas terminate because the loop tests
// set growth, not name novelty.
//
// The resulting slice contains the requested operation, exactly the schemas
// in the closure, and a verbatim copy of every non-schema component category
// present in the source. Non-schema categories are not reference-filtered;
// the slice is never missing a dependency of those types at the cost of
// carrying unused entries.
package slicer
