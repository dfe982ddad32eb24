// Package aggregate merges parsed format records into a single signature
// set, resolving cross-references between formats.
//
// Reference resolution is an explicit two-pass process: all records are
// collected first, then priority edges are resolved against the complete
// set. This keeps the outcome independent of the order the filesystem
// enumerated the input reports.
//
// Priority relations in registry exports reference the registry-internal
// FormatID of the target format, while the aggregated model keys records
// by PUID; resolution maps the former to the latter. Dangling references,
// self-references and cycle-closing edges are dropped, each with exactly
// one recorded warning, and never reach the output.
package aggregate
