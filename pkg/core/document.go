package core

import "time"

// Ref identifies an indirect object inside a Document. Its concrete type
// belongs to the backing document model; core only passes it back.
type Ref any

// Document is the port to a parsed PDF object graph. It exposes just
// enough of the graph for Info dictionary work: the trailer's Info
// reference, dictionary entry access, and serialization.
type Document interface {
	// InfoRef returns the trailer's Info reference, if present.
	InfoRef() (Ref, bool)

	// SetInfoRef points the trailer at ref.
	SetInfoRef(ref Ref)

	// AddDict allocates a fresh empty dictionary and returns its reference.
	AddDict() (Ref, error)

	// Entries returns the key-value pairs of the dictionary behind ref.
	// A ref that does not resolve to a dictionary yields a nil map, not
	// an error.
	Entries(ref Ref) (map[string]Value, error)

	// SetEntry writes one entry of the dictionary behind ref.
	SetEntry(ref Ref, key string, v Value) error

	// DeleteEntry removes one entry. Removing an absent key is a no-op.
	DeleteEntry(ref Ref, key string) error

	// Save serializes the document to path.
	Save(path string) error

	// SaveToBuffer serializes the document to memory.
	SaveToBuffer() ([]byte, error)
}

// Loader opens documents from disk or memory.
type Loader interface {
	Load(path string) (Document, error)
	LoadBytes(data []byte) (Document, error)
}

// Clock supplies timestamps for ModDate stamping. Injectable so tests
// can pin it.
type Clock func() time.Time
