// Package unitgraph converts numeric values between units of measurement of
// one physical dimension, discovering conversion paths over a weighted graph
// when no direct factor is registered, and tracking numerical precision so
// the most accurate available path wins.
//
// 🚀 What is unitgraph?
//
//	An in-memory, thread-safe unit-conversion library that brings together:
//		• Tracked floats: values paired with propagated error bounds
//		• Affine conversions: y = m·x + k edges with four composition operators
//		• Per-dimension conversion graphs with min-error path discovery
//		• Prefix-aware resolution: metric (km, µs) and binary (KiB) prefixes
//		• Compound-unit rewriting: expansion to base units and merging of
//		  like-dimension terms
//
// ✨ Why choose unitgraph?
//
//   - Precision-first – candidate paths are ranked by accumulated error,
//     not hop count alone
//   - Rock-solid guarantees – R/W locks, single-flighted discovery,
//     memoized composite edges
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	tfloat/    — error-tracked float64 arithmetic (the precision bookkeeping)
//	dim/       — canonical dimension codes ("L1M1T-2" for force)
//	affine/    — the conversion edge algebra and its combination operators
//	unit/      — units, prefixes, compound products, and the built-in catalogs
//	convgraph/ — the per-dimension converter: graph, cache, expand/merge
//
// Quick example:
//
//	length, _ := convgraph.ByDimension("L1")
//	metres, _ := length.Convert(100, "ft", "m") // 30.48
//
//	go get github.com/katalvlaran/unitgraph
package unitgraph
