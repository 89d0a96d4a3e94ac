// Package pdfmetadata reads and writes the Info dictionary metadata of
// PDF files.
//
// It connects the core metadata logic (decoding, ModDate stamping, the
// atomic in-place update protocol) with a document backend adapter using
// the Hexagonal Architecture pattern.
//
// Philosophy:
//
// PDF Info values arrive in several encodings that can only be told apart
// from the raw bytes: UTF-16 with a BOM, angle-bracket hex strings, a
// "UTF16BE:"+base64 tag, or plain UTF-8. The library decodes all of them
// transparently and never fails on value bytes; undecodable input
// degrades to replacement characters. Every write stamps ModDate, and
// in-place updates replace the file via a co-located temporary file and
// an atomic rename, so a crash never leaves a half-written PDF behind.
//
// Features:
//
//   - **Hexagonal Architecture**: Core metadata logic is isolated from the PDF parser.
//   - **Encoding-transparent reads**: UTF-16 BOM, hex strings, tagged base64 and UTF-8 all decode.
//   - **Crash-safe updates**: In-place writes go through temp file + atomic rename.
//   - **Default Adapter (pdfcpu)**: Out-of-the-box support for real PDF files.
//   - **Extensible**: Designed to support other backends via `core.Loader`.
//
// Usage:
//
//	// Read all metadata
//	entries, err := pdfmetadata.GetMetadata("report.pdf")
//
//	// Update a key in place
//	err := pdfmetadata.UpdateMetadataInPlace("report.pdf", "Author", "Jane Doe")
package pdfmetadata
