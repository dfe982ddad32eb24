package pronom

// XML schema mapping for registry export reports. These structs carry the
// subset of the upstream schema the converter consumes; unknown elements
// are ignored by encoding/xml.

type fileFormat struct {
	FormatID           string                 `xml:"FormatID"`
	FormatName         string                 `xml:"FormatName"`
	FormatVersion      string                 `xml:"FormatVersion"`
	FormatTypes        string                 `xml:"FormatTypes"`
	Identifiers        []fileFormatIdentifier `xml:"FileFormatIdentifier"`
	ExternalSignatures []externalSignature    `xml:"ExternalSignature"`
	InternalSignatures []internalSignature    `xml:"InternalSignature"`
	RelatedFormats     []relatedFormat        `xml:"RelatedFormat"`
}

type fileFormatIdentifier struct {
	Identifier     string `xml:"Identifier"`
	IdentifierType string `xml:"IdentifierType"`
}

type externalSignature struct {
	ExternalSignatureID string `xml:"ExternalSignatureID"`
	Signature           string `xml:"Signature"`
	SignatureType       string `xml:"SignatureType"`
}

type internalSignature struct {
	SignatureID   string         `xml:"SignatureID"`
	SignatureName string         `xml:"SignatureName"`
	ByteSequences []byteSequence `xml:"ByteSequence"`
}

type byteSequence struct {
	ByteSequenceID    string `xml:"ByteSequenceID"`
	PositionType      string `xml:"PositionType"`
	Offset            string `xml:"Offset"`
	MaxOffset         string `xml:"MaxOffset"`
	Endianness        string `xml:"Endianness"`
	ByteSequenceValue string `xml:"ByteSequenceValue"`
}

type relatedFormat struct {
	RelationshipType string `xml:"RelationshipType"`
	RelatedFormatID  string `xml:"RelatedFormatID"`
}

// Discriminator values used by the upstream schema.
const (
	identifierTypePUID = "PUID"
	identifierTypeMIME = "MIME"

	signatureTypeExtension = "File extension"

	relationshipPriorityOver = "Has priority over"
)
