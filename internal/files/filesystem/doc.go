// Package filesystem abstracts file access behind a small Provider
// interface so the report scanner and exporter can run against either the
// OS filesystem or an in-memory filesystem in tests.
//
// Two implementations are provided:
//   - OSFileSystem: production use against the real filesystem
//   - MemoryFileSystem: deterministic in-memory trees for unit tests
//
// MemoryFileSystem walks entries in sorted path order, which tests rely on
// when asserting deterministic pipeline output.
package filesystem
