package pdfcpu

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afmiguel/pdf-metadata/pkg/core"
)

// buildPDF assembles a minimal single-page PDF with computed xref
// offsets. When info is non-empty it becomes the body of an Info
// dictionary object referenced from the trailer.
func buildPDF(t *testing.T, info string) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")

	bodies := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	}
	if info != "" {
		bodies = append(bodies, info)
	}

	offsets := make([]int, len(bodies)+1)
	for i, body := range bodies {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(bodies)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(bodies); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}

	trailer := fmt.Sprintf("<< /Size %d /Root 1 0 R >>", len(bodies)+1)
	if info != "" {
		trailer = fmt.Sprintf("<< /Size %d /Root 1 0 R /Info %d 0 R >>", len(bodies)+1, len(bodies))
	}
	fmt.Fprintf(&buf, "trailer\n%s\nstartxref\n%d\n%%%%EOF\n", trailer, xref)

	return buf.Bytes()
}

func TestLoadBytes(t *testing.T) {
	loader := NewLoader()

	t.Run("no Info dictionary", func(t *testing.T) {
		doc, err := loader.LoadBytes(buildPDF(t, ""))
		require.NoError(t, err)

		_, ok := doc.InfoRef()
		assert.False(t, ok)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := loader.LoadBytes([]byte("this is not a pdf"))
		assert.Error(t, err)
	})
}

func TestEntries(t *testing.T) {
	loader := NewLoader()
	pdf := buildPDF(t, "<< /Author (Jane Doe) /Title <FEFF0041> /Count 7 /Draft true >>")

	doc, err := loader.LoadBytes(pdf)
	require.NoError(t, err)

	ref, ok := doc.InfoRef()
	require.True(t, ok)

	values, err := doc.Entries(ref)
	require.NoError(t, err)

	assert.Equal(t, core.KindText, values["Author"].Kind)
	assert.Equal(t, []byte("Jane Doe"), values["Author"].Bytes)

	// Hex literals keep their wire form for the decode chain.
	assert.Equal(t, core.KindText, values["Title"].Kind)
	assert.Equal(t, []byte("<FEFF0041>"), values["Title"].Bytes)

	assert.Equal(t, core.KindInteger, values["Count"].Kind)
	assert.Equal(t, int64(7), values["Count"].Int)

	assert.Equal(t, core.KindBoolean, values["Draft"].Kind)
	assert.True(t, values["Draft"].Bool)
}

func TestSetEntryRoundTrip(t *testing.T) {
	loader := NewLoader()

	doc, err := loader.LoadBytes(buildPDF(t, ""))
	require.NoError(t, err)

	ref, err := doc.AddDict()
	require.NoError(t, err)
	doc.SetInfoRef(ref)

	require.NoError(t, doc.SetEntry(ref, "Author", core.TextValue([]byte("Jane (QA) Doe"))))

	out, err := doc.SaveToBuffer()
	require.NoError(t, err)

	reloaded, err := loader.LoadBytes(out)
	require.NoError(t, err)

	ref2, ok := reloaded.InfoRef()
	require.True(t, ok)
	values, err := reloaded.Entries(ref2)
	require.NoError(t, err)

	// Parentheses survive the escape/unescape round trip.
	assert.Equal(t, []byte("Jane (QA) Doe"), values["Author"].Bytes)
}

func TestDeleteEntry(t *testing.T) {
	loader := NewLoader()
	pdf := buildPDF(t, "<< /Author (Jane) /Title (Report) >>")

	doc, err := loader.LoadBytes(pdf)
	require.NoError(t, err)

	ref, ok := doc.InfoRef()
	require.True(t, ok)

	require.NoError(t, doc.DeleteEntry(ref, "Author"))
	require.NoError(t, doc.DeleteEntry(ref, "NoSuchKey"))

	values, err := doc.Entries(ref)
	require.NoError(t, err)
	_, hasAuthor := values["Author"]
	assert.False(t, hasAuthor)
	_, hasTitle := values["Title"]
	assert.True(t, hasTitle)
}

func TestSaveToFile(t *testing.T) {
	loader := NewLoader()
	path := filepath.Join(t.TempDir(), "out.pdf")

	doc, err := loader.LoadBytes(buildPDF(t, "<< /Author (Jane) >>"))
	require.NoError(t, err)

	require.NoError(t, doc.Save(path))

	reloaded, err := loader.Load(path)
	require.NoError(t, err)
	ref, ok := reloaded.InfoRef()
	require.True(t, ok)
	values, err := reloaded.Entries(ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("Jane"), values["Author"].Bytes)
}
