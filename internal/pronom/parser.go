package pronom

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

// Parse converts one registry export report into a Record. The source
// path is attached for diagnostics. Failures are per-report: the caller
// collects them and moves on to the next document.
func Parse(content []byte, source string) (*simplesig.Record, error) {
	format, err := findFileFormat(content)
	if err != nil {
		if err == ErrNoFileFormat {
			return nil, &ReportError{
				FilePath: source,
				Message:  "no FileFormat element found",
				Hint:     "The document parsed as XML but does not look like a registry export report.",
			}
		}
		return nil, wrapXMLError(err, source)
	}

	formatID := strings.TrimSpace(format.FormatID)
	if formatID == "" {
		return nil, missingFieldError(source, "FormatID")
	}

	puid, mime := identifiers(format.Identifiers)
	if puid == "" {
		return nil, missingFieldError(source, "PUID")
	}

	rec := &simplesig.Record{
		FormatRecord: simplesig.FormatRecord{
			FormatID: formatID,
			PUID:     puid,
			Name:     strings.TrimSpace(format.FormatName),
			Version:  strings.TrimSpace(format.FormatVersion),
			MIME:     mime,
		},
		Source: source,
	}

	for _, ext := range format.ExternalSignatures {
		if strings.TrimSpace(ext.SignatureType) != signatureTypeExtension {
			continue
		}
		if sig := strings.TrimSpace(ext.Signature); sig != "" {
			rec.Extensions = append(rec.Extensions, sig)
		}
	}

	// Byte sequences are flattened across internal signatures in document
	// order; the simplified model has no signature grouping level.
	for _, internal := range format.InternalSignatures {
		for _, seq := range internal.ByteSequences {
			rec.Sequences = append(rec.Sequences, simplesig.ByteSequence{
				Position:  strings.TrimSpace(seq.PositionType),
				MinOffset: strings.TrimSpace(seq.Offset),
				MaxOffset: strings.TrimSpace(seq.MaxOffset),
				Value:     strings.TrimSpace(seq.ByteSequenceValue),
			})
		}
	}

	for _, related := range format.RelatedFormats {
		if strings.TrimSpace(related.RelationshipType) != relationshipPriorityOver {
			continue
		}
		if id := strings.TrimSpace(related.RelatedFormatID); id != "" {
			rec.PriorityOverIDs = append(rec.PriorityOverIDs, id)
		}
	}

	return rec, nil
}

// findFileFormat locates the first FileFormat element in the document,
// wherever wrapper elements put it, and decodes it. Returns
// ErrNoFileFormat when the document holds none.
func findFileFormat(content []byte) (*fileFormat, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, ErrNoFileFormat
		}
		if err != nil {
			return nil, err
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "FileFormat" {
			continue
		}

		var format fileFormat
		if err := decoder.DecodeElement(&format, &start); err != nil {
			return nil, err
		}
		return &format, nil
	}
}

// identifiers extracts the PUID and MIME type from a report's identifier
// list. Missing entries yield empty strings.
func identifiers(ids []fileFormatIdentifier) (puid, mime string) {
	for _, id := range ids {
		value := strings.TrimSpace(id.Identifier)
		switch strings.TrimSpace(id.IdentifierType) {
		case identifierTypePUID:
			puid = value
		case identifierTypeMIME:
			mime = value
		}
	}
	return puid, mime
}
