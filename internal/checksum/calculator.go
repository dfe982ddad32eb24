// Package checksum computes content checksums for registry export reports.
//
// Two digests are offered: a raw digest of the bytes on disk, and a
// normalized digest that is resilient to whitespace-only reformatting of
// the XML (pretty-printing, indentation changes, line-ending conversion).
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator is an interface for computing report checksums.
// This abstraction allows for different checksum strategies and algorithms.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256. Normalization
// collapses runs of whitespace between XML tags and trims the document.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple
// goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// normalize collapses whitespace runs to a single space and drops
// whitespace adjacent to tag boundaries, so indentation and line endings
// do not affect the digest. Text content inside elements keeps single
// spaces between words.
func (c SHA256) normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	pendingSpace := false
	for _, r := range content {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace {
			// Whitespace touching a tag boundary is formatting, not data.
			if r != '<' && lastByte(&b) != '>' && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

func lastByte(b *strings.Builder) byte {
	s := b.String()
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}
