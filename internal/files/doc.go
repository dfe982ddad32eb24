// Package files provides file-related functionality organized into sub-packages.
//
// This package is organized into the following sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Report discovery and metadata extraction
//
// # Usage
//
//	import (
//	    "github.com/jrh-151/simplesig/internal/files/filesystem"
//	    "github.com/jrh-151/simplesig/internal/files/scanner"
//	)
//
//	// Create scanner
//	reportScanner := scanner.NewScanner(checksum.New())
//	result, err := reportScanner.ScanDirectory("./pronom")
//
// # Organization
//
// Each sub-package is focused on a specific concern:
//   - filesystem: Provides filesystem abstraction for testability
//   - scanner: Handles report discovery and checksum calculation
package files
