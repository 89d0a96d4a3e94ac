// Package pdfcpu adapts pdfcpu's document model to the core ports.
//
// It works on the raw object surface (trailer Info reference, dereferenced
// dictionaries, string and hex literals) so that value bytes reach the
// codec uninterpreted.
package pdfcpu

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/afmiguel/pdf-metadata/pkg/core"
)

// Loader opens PDF files through pdfcpu with relaxed validation, so
// documents with cosmetic defects still load.
type Loader struct {
	conf *model.Configuration
}

// NewLoader creates a Loader with relaxed validation.
func NewLoader() *Loader {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Loader{conf: conf}
}

// Load implements core.Loader.
func (l *Loader) Load(path string) (core.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.read(f)
}

// LoadBytes implements core.Loader.
func (l *Loader) LoadBytes(data []byte) (core.Document, error) {
	return l.read(bytes.NewReader(data))
}

func (l *Loader) read(rs io.ReadSeeker) (core.Document, error) {
	ctx, err := api.ReadContext(rs, l.conf)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	return &document{ctx: ctx}, nil
}

// document implements core.Document on a pdfcpu context.
type document struct {
	ctx *model.Context
}

func (d *document) InfoRef() (core.Ref, bool) {
	if d.ctx.Info == nil {
		return nil, false
	}
	return d.ctx.Info, true
}

func (d *document) SetInfoRef(ref core.Ref) {
	if ir, ok := ref.(*types.IndirectRef); ok {
		d.ctx.Info = ir
	}
}

func (d *document) AddDict() (core.Ref, error) {
	ir, err := d.ctx.IndRefForNewObject(types.NewDict())
	if err != nil {
		return nil, fmt.Errorf("allocate dictionary object: %w", err)
	}
	return ir, nil
}

func (d *document) Entries(ref core.Ref) (map[string]core.Value, error) {
	dict := d.dict(ref)
	if dict == nil {
		return nil, nil
	}
	out := make(map[string]core.Value, len(dict))
	for k, obj := range dict {
		out[k] = d.toValue(obj)
	}
	return out, nil
}

func (d *document) SetEntry(ref core.Ref, key string, v core.Value) error {
	dict := d.dict(ref)
	if dict == nil {
		return fmt.Errorf("object %v is not a dictionary", ref)
	}
	switch v.Kind {
	case core.KindText:
		escaped, err := types.Escape(string(v.Bytes))
		if err != nil {
			return fmt.Errorf("escape value for %q: %w", key, err)
		}
		dict[key] = types.StringLiteral(*escaped)
	case core.KindName:
		dict[key] = types.Name(v.Bytes)
	case core.KindInteger:
		dict[key] = types.Integer(v.Int)
	case core.KindReal:
		dict[key] = types.Float(v.Real)
	case core.KindBoolean:
		dict[key] = types.Boolean(v.Bool)
	case core.KindNull:
		dict[key] = nil
	default:
		return fmt.Errorf("cannot store %s value for %q", v.Label, key)
	}
	return nil
}

func (d *document) DeleteEntry(ref core.Ref, key string) error {
	dict := d.dict(ref)
	if dict == nil {
		return fmt.Errorf("object %v is not a dictionary", ref)
	}
	delete(dict, key)
	return nil
}

func (d *document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := api.WriteContext(d.ctx, f); err != nil {
		f.Close()
		return fmt.Errorf("write document: %w", err)
	}
	return f.Close()
}

func (d *document) SaveToBuffer() ([]byte, error) {
	var buf bytes.Buffer
	if err := api.WriteContext(d.ctx, &buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}

// dict resolves ref to its dictionary, nil when ref is foreign, dangling
// or points at something else.
func (d *document) dict(ref core.Ref) types.Dict {
	ir, ok := ref.(*types.IndirectRef)
	if !ok {
		return nil
	}
	dict, err := d.ctx.DereferenceDict(*ir)
	if err != nil {
		return nil
	}
	return dict
}

// toValue maps a pdfcpu object to the core value union. Indirect values
// are dereferenced first. Hex literals keep their angle-bracket wire form
// so the text decode chain applies to them.
func (d *document) toValue(obj types.Object) core.Value {
	if o, err := d.ctx.Dereference(obj); err == nil {
		obj = o
	}
	switch o := obj.(type) {
	case types.StringLiteral:
		b, err := types.Unescape(o.Value())
		if err != nil {
			return core.TextValue([]byte(o.Value()))
		}
		return core.TextValue(b)
	case types.HexLiteral:
		return core.TextValue([]byte("<" + o.Value() + ">"))
	case types.Name:
		return core.NameValue(o.Value())
	case types.Integer:
		return core.IntegerValue(int64(o.Value()))
	case types.Float:
		return core.RealValue(o.Value())
	case types.Boolean:
		return core.BooleanValue(o.Value())
	case nil:
		return core.NullValue()
	case types.Dict:
		return core.OtherValue("Dictionary")
	case types.Array:
		return core.OtherValue("Array")
	case types.StreamDict, *types.StreamDict:
		return core.OtherValue("Stream")
	default:
		return core.OtherValue(fmt.Sprintf("%T", obj))
	}
}
