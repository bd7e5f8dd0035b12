// Package singleton implements the Singleton pattern: a lazy, process-wide
// Database instance with a single access point.
//
// Contract:
//
//   - Instance is the only construction path; the Database type has no
//     exported constructor and its zero value is unusable by design.
//   - The first Instance call constructs the database; every later call
//     returns the same pointer for the life of the process.
//   - Construction is exactly-once even under simultaneous first calls from
//     many goroutines: initialization is guarded by sync.Once, not by a
//     bare nil-check (which would race).
//   - Lifecycle: created on first access, torn down only at process exit.
//     There is no destroy path.
//
// The instance carries a small in-memory key/value store (Put/Get) guarded
// by an RWMutex, so the shared state is observable and safe to exercise
// from multiple goroutines.
package singleton
