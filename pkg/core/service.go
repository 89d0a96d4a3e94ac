package core

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/afmiguel/pdf-metadata/pkg/codec"
)

// Service handles the business logic for Info dictionary metadata.
type Service struct {
	loader Loader
	clock  Clock
	logger *slog.Logger
}

// NewService creates a new Service. A nil clock defaults to time.Now and
// a nil logger to slog.Default().
func NewService(loader Loader, clock Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{loader: loader, clock: clock, logger: logger}
}

// List returns every entry of the document's Info dictionary with decoded
// keys and values, sorted by key. A missing Info dictionary, a dangling
// reference, or a reference to a non-dictionary all yield an empty list.
func (s *Service) List(doc Document) []Entry {
	ref, ok := doc.InfoRef()
	if !ok {
		return []Entry{}
	}
	values, err := doc.Entries(ref)
	if err != nil || values == nil {
		return []Entry{}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: valueText(values[k])})
	}
	return entries
}

// Put writes key=value into the Info dictionary, creating the dictionary
// (and its trailer reference) if the document has none, and stamps
// ModDate from the service clock.
func (s *Service) Put(doc Document, key, value string) error {
	ref, err := s.ensureInfo(doc)
	if err != nil {
		return err
	}
	if err := doc.SetEntry(ref, key, TextValue(codec.Encode(value))); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return s.stampModDate(doc, ref)
}

// Delete removes key from the Info dictionary and stamps ModDate.
// Returns ErrNoInfoDict when the document has no Info dictionary.
func (s *Service) Delete(doc Document, key string) error {
	ref, ok := doc.InfoRef()
	if !ok {
		return ErrNoInfoDict
	}
	if err := doc.DeleteEntry(ref, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return s.stampModDate(doc, ref)
}

// Rename moves the raw value of oldKey to newKey without re-encoding it,
// then stamps ModDate.
func (s *Service) Rename(doc Document, oldKey, newKey string) error {
	ref, ok := doc.InfoRef()
	if !ok {
		return ErrNoInfoDict
	}
	values, err := doc.Entries(ref)
	if err != nil {
		return fmt.Errorf("read Info dictionary: %w", err)
	}
	v, ok := values[oldKey]
	if !ok {
		return fmt.Errorf("key %q not found", oldKey)
	}
	if err := doc.SetEntry(ref, newKey, v); err != nil {
		return fmt.Errorf("set %q: %w", newKey, err)
	}
	if err := doc.DeleteEntry(ref, oldKey); err != nil {
		return fmt.Errorf("delete %q: %w", oldKey, err)
	}
	return s.stampModDate(doc, ref)
}

// Get loads path and lists its metadata.
func (s *Service) Get(path string) ([]Entry, error) {
	doc, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s.List(doc), nil
}

// GetBytes lists the metadata of an in-memory document.
func (s *Service) GetBytes(data []byte) ([]Entry, error) {
	doc, err := s.loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return s.List(doc), nil
}

// Set loads inPath, writes key=value, and saves to outPath.
func (s *Service) Set(inPath, outPath, key, value string) error {
	doc, err := s.loader.Load(inPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", inPath, err)
	}
	if err := s.Put(doc, key, value); err != nil {
		return err
	}
	if err := doc.Save(outPath); err != nil {
		return fmt.Errorf("save %s: %w", outPath, err)
	}
	s.logger.Debug("metadata written", "input", inPath, "output", outPath, "key", key)
	return nil
}

// SetBytes writes key=value into an in-memory document and returns the
// serialized result.
func (s *Service) SetBytes(data []byte, key, value string) ([]byte, error) {
	doc, err := s.loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if err := s.Put(doc, key, value); err != nil {
		return nil, err
	}
	out, err := doc.SaveToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return out, nil
}

// UpdateInPlace writes key=value into the file at path, replacing it
// atomically. A missing file fails with ErrNotFound before any temporary
// file is created.
func (s *Service) UpdateInPlace(path, key, value string) error {
	return s.updateInPlace(path, func(doc Document) error {
		return s.Put(doc, key, value)
	})
}

// DeleteInPlace removes key from the file at path, replacing it atomically.
func (s *Service) DeleteInPlace(path, key string) error {
	return s.updateInPlace(path, func(doc Document) error {
		return s.Delete(doc, key)
	})
}

// RenameInPlace renames a key in the file at path, replacing it atomically.
func (s *Service) RenameInPlace(path, oldKey, newKey string) error {
	return s.updateInPlace(path, func(doc Document) error {
		return s.Rename(doc, oldKey, newKey)
	})
}

func (s *Service) updateInPlace(path string, mutate func(Document) error) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	doc, err := s.loader.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := mutate(doc); err != nil {
		return err
	}
	return s.replace(doc, path)
}

// replace serializes doc to a unique temporary file next to path and
// renames it over path. The temporary file is removed on failure.
func (s *Service) replace(doc Document, path string) error {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" {
		stem = "pdfmeta"
	}
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf("%s_%d.pdf.tmp", stem, time.Now().UnixMicro()))

	if err := doc.Save(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save temporary file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	s.logger.Debug("file replaced in place", "path", path)
	return nil
}

func (s *Service) ensureInfo(doc Document) (Ref, error) {
	if ref, ok := doc.InfoRef(); ok {
		return ref, nil
	}
	ref, err := doc.AddDict()
	if err != nil {
		return nil, fmt.Errorf("create Info dictionary: %w", err)
	}
	doc.SetInfoRef(ref)
	s.logger.Debug("created Info dictionary")
	return ref, nil
}

func (s *Service) stampModDate(doc Document, ref Ref) error {
	stamp := FormatDate(s.clock())
	if err := doc.SetEntry(ref, "ModDate", TextValue(codec.Encode(stamp))); err != nil {
		return fmt.Errorf("set ModDate: %w", err)
	}
	return nil
}

// valueText converts a raw Info value to display text. Text bytes go
// through the full decode chain; other kinds use fixed conversions.
func valueText(v Value) string {
	switch v.Kind {
	case KindText:
		return codec.Decode(v.Bytes)
	case KindName:
		return strings.ToValidUTF8(string(v.Bytes), string(utf8.RuneError))
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindReal:
		return strconv.FormatFloat(v.Real, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("<unsupported %s value>", v.Label)
	}
}
