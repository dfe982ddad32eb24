package aggregate

import (
	"fmt"
	"sort"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// Aggregator combines normalized records into a SignatureSet. Problems
// encountered along the way are recorded on the RunReport rather than
// raised: a broken reference must never abort the run.
type Aggregator struct {
	report *simplesig.RunReport
}

// New creates an Aggregator that records warnings on rep.
// Panics if rep is nil.
func New(rep *simplesig.RunReport) *Aggregator {
	if rep == nil {
		panic("run report cannot be nil")
	}
	return &Aggregator{report: rep}
}

// Build merges records into a SignatureSet and resolves every priority
// relation. Records arrive in enumeration order; the resulting set orders
// itself by ascending PUID, so output is stable regardless.
func (a *Aggregator) Build(records []*simplesig.Record) *simplesig.SignatureSet {
	set := simplesig.NewSignatureSet()

	// Pass one: collect all nodes. On a duplicate PUID the later record
	// wins and the superseded report is recorded as excluded.
	pending := make(map[string]*simplesig.Record, len(records))
	for _, rec := range records {
		if prev, dup := pending[rec.PUID]; dup {
			a.report.AddFailure(prev.Source, fmt.Errorf(
				"duplicate format identifier %s: superseded by %s", prev.PUID, rec.Source))
		}
		set.Put(rec.FormatRecord)
		pending[rec.PUID] = rec
	}

	// FormatID index over the winning records, built in enumeration order
	// so a FormatID claimed by two formats maps the same way on every run:
	// later record wins, mirroring the duplicate-PUID policy.
	byFormatID := make(map[string]string, len(pending))
	for _, rec := range records {
		if pending[rec.PUID] != rec {
			continue
		}
		if prev, claimed := byFormatID[rec.FormatID]; claimed && prev != rec.PUID {
			a.report.AddWarning(simplesig.WarnDuplicateFormatID, rec.PUID,
				"registry format id %q already claimed by %s, later record wins", rec.FormatID, prev)
		}
		byFormatID[rec.FormatID] = rec.PUID
	}

	// Pass two: resolve edges against the complete node set, in ascending
	// PUID order so recorded warnings line up run-to-run.
	adjacency := make(map[string][]string, len(pending))
	for _, puid := range set.PUIDs() {
		adjacency[puid] = a.resolveEdges(puid, pending[puid].PriorityOverIDs, byFormatID)
	}

	a.breakCycles(adjacency)

	for _, puid := range set.PUIDs() {
		rec, _ := set.Get(puid)
		rec.PriorityOver = adjacency[puid]
		set.Put(rec)
	}

	return set
}

// resolveEdges maps registry FormatID references to PUIDs, dropping
// dangling and self references with one warning each. The result is
// sorted and de-duplicated.
func (a *Aggregator) resolveEdges(puid string, targets []string, byFormatID map[string]string) []string {
	var resolved []string
	seen := make(map[string]bool, len(targets))

	for _, formatID := range targets {
		target, ok := byFormatID[formatID]
		if !ok {
			a.report.AddWarning(simplesig.WarnDanglingPriority, puid,
				"priority relation to unknown format id %q dropped", formatID)
			continue
		}
		if target == puid {
			a.report.AddWarning(simplesig.WarnSelfPriority, puid,
				"priority relation to itself dropped")
			continue
		}
		if seen[target] {
			continue
		}
		seen[target] = true
		resolved = append(resolved, target)
	}

	sort.Strings(resolved)
	return resolved
}

// Depth-first search colors.
const (
	colorWhite = iota
	colorGray
	colorBlack
)

// breakCycles removes priority edges that close a cycle. The traversal
// visits nodes and edges in ascending PUID order, so the same edges are
// dropped for the same input set no matter how it was enumerated.
func (a *Aggregator) breakCycles(adjacency map[string][]string) {
	roots := make([]string, 0, len(adjacency))
	for puid := range adjacency {
		roots = append(roots, puid)
	}
	sort.Strings(roots)

	color := make(map[string]int, len(adjacency))

	var visit func(string)
	visit = func(node string) {
		color[node] = colorGray

		kept := adjacency[node][:0:0]
		for _, target := range adjacency[node] {
			if color[target] == colorGray {
				// Edge back into the active path closes a cycle.
				a.report.AddWarning(simplesig.WarnPriorityCycle, node,
					"priority relation to %q dropped to break a cycle", target)
				continue
			}
			if color[target] == colorWhite {
				visit(target)
			}
			kept = append(kept, target)
		}
		if len(kept) == 0 {
			kept = nil
		}
		adjacency[node] = kept

		color[node] = colorBlack
	}

	for _, root := range roots {
		if color[root] == colorWhite {
			visit(root)
		}
	}
}
