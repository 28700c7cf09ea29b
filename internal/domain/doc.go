// Package domain contains the core domain entities and value objects for timsdf.
//
// This package represents the innermost layer of the reader. It has no
// dependencies on infrastructure concerns (SQLite, file system, logging) and
// contains only pure data and the rules that hold it together.
//
// # Entities
//
//   - [FrameMeta]: One catalogue row per acquisition frame (id, retention
//     time, ms-type code, byte offset into the raw container, peak count)
//   - [Frame]: A decoded frame with five equal-length peak columns
//   - [MsType]: The acquisition-type classification of a frame
//   - [RawColumns]: The decoder's output before frame materialization
//   - [Calibration]: Axis conversion parameters from the global metadata
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Safe to share between goroutines once constructed
//   - Testable without mocks or external systems
package domain
