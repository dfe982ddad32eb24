package sigfile

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// NamespaceSignatureFile is the fixed UUID namespace for signature file
// fingerprints, derived from the canonical project string using UUID v5
// with the standard URL namespace.
var NamespaceSignatureFile = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/jrh-151/simplesig/signature-file/v1"))

// Fingerprint derives a deterministic UUID v5 identifying the input set a
// signature file was built from. The input is one "puid:checksum" line per
// source report, sorted by PUID, so the fingerprint does not depend on the
// order reports were enumerated in.
func Fingerprint(checksums map[string]string) uuid.UUID {
	puids := make([]string, 0, len(checksums))
	for puid := range checksums {
		puids = append(puids, puid)
	}
	sort.Strings(puids)

	var b strings.Builder
	for _, puid := range puids {
		b.WriteString(puid)
		b.WriteByte(':')
		b.WriteString(checksums[puid])
		b.WriteByte('\n')
	}
	return uuid.NewSHA1(NamespaceSignatureFile, []byte(b.String()))
}
