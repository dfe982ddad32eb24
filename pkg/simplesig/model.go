package simplesig

import "sort"

// Position describes where a byte-sequence pattern anchors within a file.
type Position string

const (
	// PositionBOF anchors a pattern at the beginning of the file.
	PositionBOF Position = "BOF"

	// PositionEOF anchors a pattern at the end of the file.
	PositionEOF Position = "EOF"

	// PositionVar describes a pattern that may occur anywhere.
	PositionVar Position = "VAR"
)

// SignaturePattern is one byte-matching rule in canonical form.
//
// Pattern holds the normalized token string: upper-case hex literals,
// `??` single-byte wildcards, `{n}`/`{n-m}`/`{n-*}` gaps, `*` unbounded
// gaps, `[XX:YY]` ranges and `(A|B)` alternations. Variable offsets for
// BOF/EOF sequences are folded into the pattern as a leading or trailing
// gap; the raw offsets are preserved alongside for readers that apply
// them separately.
type SignaturePattern struct {
	Position  Position `yaml:"position"`
	Pattern   string   `yaml:"pattern"`
	Offset    int      `yaml:"offset,omitempty"`
	MaxOffset int      `yaml:"maxoffset,omitempty"`
}

// FormatRecord is one file format definition in the aggregated model.
//
// PUID is the canonical identifier and the key under which the record is
// stored in a SignatureSet. FormatID is the registry-internal numeric
// identifier; it is retained because priority relations in the upstream
// export reference it rather than the PUID.
type FormatRecord struct {
	FormatID     string             `yaml:"-"`
	PUID         string             `yaml:"puid"`
	Name         string             `yaml:"name"`
	Version      string             `yaml:"version,omitempty"`
	MIME         string             `yaml:"mime,omitempty"`
	Extensions   []string           `yaml:"extensions,omitempty"`
	Signatures   []SignaturePattern `yaml:"signatures,omitempty"`
	PriorityOver []string           `yaml:"priority_over,omitempty"`
}

// ByteSequence is one raw byte-sequence expression as extracted from a
// registry export report, before normalization.
type ByteSequence struct {
	Position  string // upstream PositionType value, verbatim
	MinOffset string // empty when unset
	MaxOffset string // empty when unset
	Value     string // raw sequence expression
}

// Record is the output of parsing one registry export report. The embedded
// FormatRecord carries the fields that survive into the aggregated model;
// Sequences and PriorityOverIDs hold raw material consumed by the
// normalizer and the aggregator respectively.
type Record struct {
	FormatRecord

	// Sequences are the raw byte-sequence expressions awaiting
	// normalization into FormatRecord.Signatures.
	Sequences []ByteSequence

	// PriorityOverIDs are registry-internal format identifiers this format
	// has priority over, awaiting resolution to PUIDs.
	PriorityOverIDs []string

	// Source is the report path the record was parsed from, kept for
	// diagnostics only.
	Source string
}

// SignatureSet is the aggregated, de-duplicated collection of format
// records, keyed by PUID. It is built once per run by the aggregator and
// consumed once by the serializer.
type SignatureSet struct {
	records map[string]FormatRecord
}

// NewSignatureSet creates an empty SignatureSet.
func NewSignatureSet() *SignatureSet {
	return &SignatureSet{records: make(map[string]FormatRecord)}
}

// Put inserts a record keyed by its PUID, replacing any record already
// stored under that key. It reports whether a record was replaced.
func (s *SignatureSet) Put(rec FormatRecord) bool {
	_, replaced := s.records[rec.PUID]
	s.records[rec.PUID] = rec
	return replaced
}

// Get returns the record stored under the given PUID.
func (s *SignatureSet) Get(puid string) (FormatRecord, bool) {
	rec, ok := s.records[puid]
	return rec, ok
}

// Len returns the number of records in the set.
func (s *SignatureSet) Len() int {
	return len(s.records)
}

// PUIDs returns all keys in ascending lexical order. The same ordering is
// used for serialization so output is stable across runs regardless of
// input enumeration order.
func (s *SignatureSet) PUIDs() []string {
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns all records in ascending PUID order.
func (s *SignatureSet) Records() []FormatRecord {
	out := make([]FormatRecord, 0, len(s.records))
	for _, puid := range s.PUIDs() {
		out = append(out, s.records[puid])
	}
	return out
}
