// Package ports defines the interfaces (ports) that connect the reader core
// to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// core needs from external systems without specifying how those needs are
// fulfilled.
//
// # Port Interfaces
//
//   - [Catalogue]: Reads frame rows and global metadata from the store's
//     relational catalogue
//   - [FrameDecoder]: Decodes one frame's raw bytes into typed columns
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The handle layer (pkg/timsdf) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (SQLite, the raw container codec, zerolog).
//
// This separation enables:
//   - Testing the handle with counting doubles instead of real stores
//   - Swapping the decoder (native codec vs. vendor bridge) without
//     touching the pipeline
//   - Clear boundaries and dependency direction
package ports
