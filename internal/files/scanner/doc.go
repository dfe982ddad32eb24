// Package scanner provides report discovery for the signature pipeline.
//
// The scanner is responsible for:
//   - Recursively discovering registry export XML reports in a directory tree
//   - Capturing content, size, timestamps and checksums per report
//   - Normalizing report paths to Unix style for stable diagnostics
//
// The scanner is filesystem-agnostic through filesystem.Provider, enabling
// production use with the OS filesystem and testing with in-memory trees.
package scanner
