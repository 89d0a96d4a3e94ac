package pdfmetadata

import (
	pdfbackend "github.com/afmiguel/pdf-metadata/pkg/adapters/pdfcpu"
	"github.com/afmiguel/pdf-metadata/pkg/codec"
	"github.com/afmiguel/pdf-metadata/pkg/core"
)

// --- Types ---

// Entry is a public alias for one decoded metadata pair.
type Entry = core.Entry

// ErrNotFound reports a missing target file on in-place updates.
var ErrNotFound = core.ErrNotFound

// ErrNoInfoDict reports a delete or rename against a document without an
// Info dictionary.
var ErrNoInfoDict = core.ErrNoInfoDict

// --- Factory ---

func newService(opts []Option) *core.Service {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.loader == nil {
		o.loader = pdfbackend.NewLoader()
	}
	return core.NewService(o.loader, o.clock, o.logger)
}

// --- Operations ---

// GetMetadata returns every Info dictionary entry of the PDF at path,
// decoded to text and sorted by key. A PDF without an Info dictionary
// yields an empty list.
func GetMetadata(path string, opts ...Option) ([]Entry, error) {
	return newService(opts).Get(path)
}

// GetMetadataFromBytes is GetMetadata for an in-memory PDF.
func GetMetadataFromBytes(data []byte, opts ...Option) ([]Entry, error) {
	return newService(opts).GetBytes(data)
}

// SetMetadata writes key=value into the PDF at inputPath and saves the
// result to outputPath, stamping ModDate. The input file is not touched.
func SetMetadata(inputPath, outputPath, key, value string, opts ...Option) error {
	return newService(opts).Set(inputPath, outputPath, key, value)
}

// SetMetadataInBytes writes key=value into an in-memory PDF and returns
// the serialized result.
func SetMetadataInBytes(data []byte, key, value string, opts ...Option) ([]byte, error) {
	return newService(opts).SetBytes(data, key, value)
}

// UpdateMetadataInPlace writes key=value into the PDF at path, replacing
// the file atomically. Fails with ErrNotFound when path does not exist.
func UpdateMetadataInPlace(path, key, value string, opts ...Option) error {
	return newService(opts).UpdateInPlace(path, key, value)
}

// UpdateMetadataInBytes writes key=value into an in-memory PDF. For byte
// slices "in place" and "to a new buffer" coincide; this is
// SetMetadataInBytes under the update name.
func UpdateMetadataInBytes(data []byte, key, value string, opts ...Option) ([]byte, error) {
	return newService(opts).SetBytes(data, key, value)
}

// DeleteMetadataInPlace removes key from the PDF at path, replacing the
// file atomically and stamping ModDate.
func DeleteMetadataInPlace(path, key string, opts ...Option) error {
	return newService(opts).DeleteInPlace(path, key)
}

// RenameMetadataKey moves the value of oldKey to newKey in the PDF at
// path without re-encoding it, replacing the file atomically.
func RenameMetadataKey(path, oldKey, newKey string, opts ...Option) error {
	return newService(opts).RenameInPlace(path, oldKey, newKey)
}

// --- Encoding helpers ---

// TagUTF16BE pre-encodes text for channels that mangle raw non-ASCII
// bytes. The stored value decodes back to text exactly.
func TagUTF16BE(text string) string {
	return codec.TagUTF16BE(text)
}
