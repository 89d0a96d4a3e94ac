package pdfmetadata_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pdfmetadata "github.com/afmiguel/pdf-metadata"
)

// samplePDF assembles a minimal single-page PDF with computed xref
// offsets. When info is non-empty it becomes the body of an Info
// dictionary object referenced from the trailer.
func samplePDF(info string) []byte {
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

func writeSample(t *testing.T, info string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, samplePDF(info), 0o644))
	return path
}

func entryValue(entries []pdfmetadata.Entry, key string) (string, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

var modDateRe = regexp.MustCompile(`^D:\d{14}[+-]\d{2}'\d{2}'$`)

func TestGetMetadata(t *testing.T) {
	t.Run("no Info dictionary yields empty list", func(t *testing.T) {
		entries, err := pdfmetadata.GetMetadata(writeSample(t, ""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("decodes existing entries", func(t *testing.T) {
		path := writeSample(t, "<< /Author (Jane Doe) /Title <FEFF0041> >>")
		entries, err := pdfmetadata.GetMetadata(path)
		require.NoError(t, err)

		author, ok := entryValue(entries, "Author")
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", author)

		title, ok := entryValue(entries, "Title")
		require.True(t, ok)
		assert.Equal(t, "A", title)
	})
}

func TestUpdateMetadataInPlace(t *testing.T) {
	t.Run("writes key and stamps ModDate", func(t *testing.T) {
		path := writeSample(t, "")

		require.NoError(t, pdfmetadata.UpdateMetadataInPlace(path, "Author", "Jane Doe"))

		entries, err := pdfmetadata.GetMetadata(path)
		require.NoError(t, err)

		author, ok := entryValue(entries, "Author")
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", author)

		modDate, ok := entryValue(entries, "ModDate")
		require.True(t, ok)
		assert.Regexp(t, modDateRe, modDate)
	})

	t.Run("second write overwrites", func(t *testing.T) {
		path := writeSample(t, "")

		require.NoError(t, pdfmetadata.UpdateMetadataInPlace(path, "Subject", "v1"))
		require.NoError(t, pdfmetadata.UpdateMetadataInPlace(path, "Subject", "v2"))

		entries, err := pdfmetadata.GetMetadata(path)
		require.NoError(t, err)
		subject, _ := entryValue(entries, "Subject")
		assert.Equal(t, "v2", subject)
	})

	t.Run("injected clock pins ModDate", func(t *testing.T) {
		path := writeSample(t, "")
		clock := func() time.Time {
			return time.Date(2026, 8, 31, 12, 30, 45, 0, time.FixedZone("", -3*3600))
		}

		require.NoError(t, pdfmetadata.UpdateMetadataInPlace(path, "Author", "Jane", pdfmetadata.WithClock(clock)))

		entries, err := pdfmetadata.GetMetadata(path)
		require.NoError(t, err)
		modDate, _ := entryValue(entries, "ModDate")
		assert.Equal(t, "D:20260831123045-03'00'", modDate)
	})

	t.Run("missing file", func(t *testing.T) {
		err := pdfmetadata.UpdateMetadataInPlace(filepath.Join(t.TempDir(), "missing.pdf"), "Author", "x")
		assert.ErrorIs(t, err, pdfmetadata.ErrNotFound)
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		path := writeSample(t, "")
		require.NoError(t, pdfmetadata.UpdateMetadataInPlace(path, "Author", "Jane"))

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "doc.pdf", entries[0].Name())
	})
}

func TestSetMetadataToNewPath(t *testing.T) {
	in := writeSample(t, "")
	out := filepath.Join(filepath.Dir(in), "out.pdf")

	require.NoError(t, pdfmetadata.SetMetadata(in, out, "Title", "Report"))

	entries, err := pdfmetadata.GetMetadata(out)
	require.NoError(t, err)
	title, ok := entryValue(entries, "Title")
	require.True(t, ok)
	assert.Equal(t, "Report", title)

	// Input must stay untouched.
	orig, err := pdfmetadata.GetMetadata(in)
	require.NoError(t, err)
	assert.Empty(t, orig)
}

func TestMetadataInBytes(t *testing.T) {
	out, err := pdfmetadata.SetMetadataInBytes(samplePDF(""), "Author", "Jane")
	require.NoError(t, err)

	entries, err := pdfmetadata.GetMetadataFromBytes(out)
	require.NoError(t, err)
	author, ok := entryValue(entries, "Author")
	require.True(t, ok)
	assert.Equal(t, "Jane", author)
}

func TestDeleteMetadataInPlace(t *testing.T) {
	path := writeSample(t, "<< /Author (Jane) /Title (Report) >>")

	require.NoError(t, pdfmetadata.DeleteMetadataInPlace(path, "Author"))

	entries, err := pdfmetadata.GetMetadata(path)
	require.NoError(t, err)
	_, ok := entryValue(entries, "Author")
	assert.False(t, ok)
	_, ok = entryValue(entries, "Title")
	assert.True(t, ok)
	modDate, ok := entryValue(entries, "ModDate")
	require.True(t, ok)
	assert.Regexp(t, modDateRe, modDate)
}

func TestRenameMetadataKey(t *testing.T) {
	path := writeSample(t, "<< /Titel (Bericht) >>")

	require.NoError(t, pdfmetadata.RenameMetadataKey(path, "Titel", "Title"))

	entries, err := pdfmetadata.GetMetadata(path)
	require.NoError(t, err)
	title, ok := entryValue(entries, "Title")
	require.True(t, ok)
	assert.Equal(t, "Bericht", title)
	_, ok = entryValue(entries, "Titel")
	assert.False(t, ok)
}

func TestTaggedValueRoundTrip(t *testing.T) {
	path := writeSample(t, "")
	original := "Çigarette Brûlée 日本語"

	require.NoError(t, pdfmetadata.UpdateMetadataInPlace(path, "Title", pdfmetadata.TagUTF16BE(original)))

	entries, err := pdfmetadata.GetMetadata(path)
	require.NoError(t, err)
	title, ok := entryValue(entries, "Title")
	require.True(t, ok)
	assert.Equal(t, original, title)
}

func TestMalformedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	_, err := pdfmetadata.GetMetadata(path)
	assert.Error(t, err)

	err = pdfmetadata.UpdateMetadataInPlace(path, "Author", "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, pdfmetadata.ErrNotFound)
}
