package sigfile

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// Metadata describes the provenance recorded in a signature file header.
type Metadata struct {
	// Version is the generator version string.
	Version string

	// Fingerprint identifies the input set the file was built from.
	Fingerprint uuid.UUID

	// GeneratedAt is the generation time. The zero value omits the
	// Created header line, which keeps repeated runs byte-identical.
	GeneratedAt time.Time
}

// document is the YAML body of a signature file.
type document struct {
	Formats []simplesig.FormatRecord `yaml:"formats"`
}

// Render serializes the set as a simplified signature file: a commented
// header followed by a YAML document listing formats in ascending PUID
// order. Priority relations reference PUIDs, so a relation may point at a
// format that appears later in the file.
func Render(set *simplesig.SignatureSet, meta Metadata) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Simplified signature file\n")
	fmt.Fprintf(&buf, "# Generated by simplesig %s\n", meta.Version)
	fmt.Fprintf(&buf, "# Formats: %d  Fingerprint: %s\n", set.Len(), meta.Fingerprint)
	if !meta.GeneratedAt.IsZero() {
		fmt.Fprintf(&buf, "# Created: %s\n", meta.GeneratedAt.UTC().Format(simplesig.UTCTimeFormat))
	}
	buf.WriteString("# priority_over lists identifiers, not positions in this file.\n")
	buf.WriteString("---\n")

	body, err := yaml.Marshal(document{Formats: set.Records()})
	if err != nil {
		return nil, fmt.Errorf("render signature file: %w", err)
	}
	buf.Write(body)

	return buf.Bytes(), nil
}
