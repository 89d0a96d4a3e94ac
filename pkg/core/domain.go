// Package core holds the domain model and the ports of the metadata
// store: what an Info dictionary entry is, what a backing document must
// provide, and the operations that read and mutate metadata.
package core

// Entry is one decoded metadata pair from the Info dictionary.
type Entry struct {
	Key   string
	Value string
}

// Kind identifies the stored type of an Info dictionary value.
type Kind int

const (
	KindText Kind = iota
	KindName
	KindInteger
	KindReal
	KindBoolean
	KindNull
	KindOther
)

// Value is a raw Info dictionary value as found in the document graph.
// Text and Name values carry their uninterpreted bytes; Other carries
// only a label naming the unhandled type.
type Value struct {
	Kind  Kind
	Bytes []byte
	Int   int64
	Real  float64
	Bool  bool
	Label string
}

// TextValue wraps raw string bytes. The bytes are stored as-is; decoding
// happens only when the value is listed.
func TextValue(b []byte) Value {
	return Value{Kind: KindText, Bytes: b}
}

// NameValue wraps a PDF name.
func NameValue(name string) Value {
	return Value{Kind: KindName, Bytes: []byte(name)}
}

func IntegerValue(i int64) Value {
	return Value{Kind: KindInteger, Int: i}
}

func RealValue(f float64) Value {
	return Value{Kind: KindReal, Real: f}
}

func BooleanValue(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

func NullValue() Value {
	return Value{Kind: KindNull}
}

// OtherValue labels a value of a type the store does not interpret,
// such as an array or a nested dictionary.
func OtherValue(label string) Value {
	return Value{Kind: KindOther, Label: label}
}
