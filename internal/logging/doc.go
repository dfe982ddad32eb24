// Package logging implements the simplesig.Logger interface for the build
// pipeline.
//
// ConsoleLogger writes to stderr so stdout stays machine-readable;
// NullLogger discards everything and backs the pipeline tests. Both are
// safe for concurrent use.
package logging
