// Package pronom parses registry export reports into format records.
//
// # Overview
//
// Each report is one XML document describing a single file format: its
// registry identifiers, external signatures (file extensions), internal
// byte signatures, and relationships to other formats. This package maps
// that schema onto named, typed fields so that schema drift surfaces as
// construction-time errors instead of silently missing data.
//
// # Report shape
//
// The fields consumed from a report:
//
//	<FileFormat>
//	  <FormatID>1022</FormatID>
//	  <FormatName>TrueType Font</FormatName>
//	  <FormatVersion/>
//	  <FileFormatIdentifier>
//	    <Identifier>x-fmt/453</Identifier>
//	    <IdentifierType>PUID</IdentifierType>
//	  </FileFormatIdentifier>
//	  <ExternalSignature>
//	    <Signature>ttf</Signature>
//	    <SignatureType>File extension</SignatureType>
//	  </ExternalSignature>
//	  <InternalSignature>
//	    <ByteSequence>
//	      <PositionType>Absolute from BOF</PositionType>
//	      <Offset>12</Offset>
//	      <MaxOffset>128</MaxOffset>
//	      <ByteSequenceValue>4F532F32...</ByteSequenceValue>
//	    </ByteSequence>
//	  </InternalSignature>
//	  <RelatedFormat>
//	    <RelationshipType>Has priority over</RelationshipType>
//	    <RelatedFormatID>613</RelatedFormatID>
//	  </RelatedFormat>
//	</FileFormat>
//
// The FileFormat element may be nested inside wrapper elements; the
// parser locates it wherever it sits in the document.
//
// # Failure semantics
//
// A report missing its FormatID or PUID, or containing malformed XML, is
// a per-report failure carried as a ReportError with the file path, line
// number where available, and a hint. One bad report never aborts the
// run; the orchestrator collects the failure and continues.
package pronom
