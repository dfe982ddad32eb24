package signature

import (
	"fmt"
	"strconv"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// Upstream PositionType values that anchor a sequence absolutely.
const (
	positionTypeBOF = "Absolute from BOF"
	positionTypeEOF = "Absolute from EOF"
)

// MapPosition converts an upstream PositionType value to the simplified
// grammar's anchor kind. Anything that is not absolutely anchored is
// treated as variable.
func MapPosition(positionType string) simplesig.Position {
	switch positionType {
	case positionTypeBOF:
		return simplesig.PositionBOF
	case positionTypeEOF:
		return simplesig.PositionEOF
	default:
		return simplesig.PositionVar
	}
}

// Normalize validates one raw byte sequence and produces its canonical
// SignaturePattern. It is purely functional: the result depends only on
// the given sequence.
func Normalize(seq simplesig.ByteSequence) (simplesig.SignaturePattern, error) {
	pattern, err := Canonicalize(seq.Value)
	if err != nil {
		return simplesig.SignaturePattern{}, err
	}

	minOff, err := parseOffset(seq.MinOffset)
	if err != nil {
		return simplesig.SignaturePattern{}, fmt.Errorf("minimum offset: %w", err)
	}
	maxOff, err := parseOffset(seq.MaxOffset)
	if err != nil {
		return simplesig.SignaturePattern{}, fmt.Errorf("maximum offset: %w", err)
	}

	position := MapPosition(seq.Position)

	return simplesig.SignaturePattern{
		Position:  position,
		Pattern:   foldOffsets(pattern, position, minOff, maxOff),
		Offset:    minOff,
		MaxOffset: maxOff,
	}, nil
}

// NormalizeRecord converts every raw sequence on the record into its
// canonical pattern. The first invalid sequence fails the whole record:
// a format with a broken signature is excluded rather than emitted with
// some rules silently missing.
func NormalizeRecord(rec *simplesig.Record) error {
	for _, seq := range rec.Sequences {
		pattern, err := Normalize(seq)
		if err != nil {
			return fmt.Errorf("format %s: %w", rec.PUID, err)
		}
		rec.Signatures = append(rec.Signatures, pattern)
	}
	return nil
}

// parseOffset parses an upstream offset field. Empty means unset.
func parseOffset(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}

// foldOffsets folds a variable offset into the pattern itself, as a
// leading gap for BOF-anchored sequences and a trailing gap for
// EOF-anchored ones. A sequence at minimum offset m with slack x may
// start anywhere in [m, m+x], hence the folded bounds.
func foldOffsets(pattern string, position simplesig.Position, minOff, maxOff int) string {
	var gap string
	switch {
	case minOff > 0 && maxOff > 0:
		gap = fmt.Sprintf("{%d-%d}", minOff, minOff+maxOff)
	case maxOff > 0:
		gap = fmt.Sprintf("{0-%d}", maxOff)
	case minOff > 0:
		gap = fmt.Sprintf("{%d}", minOff)
	default:
		return pattern
	}

	switch position {
	case simplesig.PositionBOF:
		return gap + pattern
	case simplesig.PositionEOF:
		return pattern + gap
	default:
		return pattern
	}
}
