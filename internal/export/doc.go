// Package export orchestrates a full signature file build: scanning the
// input directory, parsing and normalizing each registry export report,
// aggregating the results and writing the simplified signature file.
// Record-level problems are accumulated on a RunReport and never abort
// the run; only missing input, denied approval or a failed write do.
package export
