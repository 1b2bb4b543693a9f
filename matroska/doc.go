// Package matroska binds the Matroska element schema onto the ebml
// framing layer: one Go type per element, master records with typed
// child slots, and a metadata-only view that leaves cluster bodies on
// disk.
//
// Leaf element types are transparent newtypes over their primitive
// value; construct them directly (matroska.TrackNumber(1)) and convert
// back with a plain conversion. Masters are plain structs: pointer
// fields are optional children, slices are repeated children, and value
// fields are required (schema defaults applied when the stream omits
// them).
package matroska

//go:generate go run ./internal/gen -schema ebml_matroska.xml -out .
