package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jusunglee/wadegiles/internal/wadegiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

const sampleDocument = docHeader + `
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:v="urn:schemas-microsoft-com:vml"><w:body>
<w:p><w:r><w:t>Mao Tse-tung went to Peking.</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve"> the Sung Dynasty </w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Ch'ien-lung</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p><w:r><w:pict><v:shape><v:textbox><w:txbxContent><w:p><w:r><w:t>Teng Hsiao-p'ing</w:t></w:r></w:p></w:txbxContent></v:textbox></v:shape></w:pict></w:r></w:p>
</w:body></w:document>`

const sampleHeader = docHeader + `
<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:p><w:r><w:t>History of the Sung</w:t></w:r></w:p></w:hdr>`

const sampleStyles = docHeader + `
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"></w:styles>`

func buildDocx(t *testing.T, parts map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		fw, err := zw.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "in.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func readPartFromFile(t *testing.T, path, name string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			var b bytes.Buffer
			_, err = b.ReadFrom(rc)
			require.NoError(t, err)
			return b.String()
		}
	}
	t.Fatalf("part %s not found in %s", name, path)
	return ""
}

func TestConvertFile(t *testing.T) {
	in := buildDocx(t, map[string]string{
		"word/document.xml": sampleDocument,
		"word/header1.xml":  sampleHeader,
		"word/styles.xml":   sampleStyles,
	})
	out := filepath.Join(t.TempDir(), "out.docx")

	res, err := ConvertFile(in, out, wadegiles.New(), Options{Mode: wadegiles.Conservative})
	require.NoError(t, err)
	assert.Empty(t, res.FallbackParts)
	assert.Len(t, res.Changes, 5)

	doc := readPartFromFile(t, out, "word/document.xml")
	assert.Contains(t, doc, "Mao Zedong went to Beijing.")
	assert.Contains(t, doc, `<w:t xml:space="preserve"> the Song Dynasty </w:t>`)
	assert.Contains(t, doc, "Qianlong")
	assert.Contains(t, doc, "Deng Xiaoping") // text box content converts too
	assert.NotContains(t, doc, "Tse-tung")

	hdr := readPartFromFile(t, out, "word/header1.xml")
	assert.Contains(t, hdr, "History of the Song")

	// Non-text parts come through untouched.
	assert.Equal(t, sampleStyles, readPartFromFile(t, out, "word/styles.xml"))
}

func TestConvertFileRawFallback(t *testing.T) {
	// A stray ampersand breaks the XML parser but not the raw strategy.
	malformed := docHeader + `
<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:p><w:r><w:t>the Sung court</w:t></w:r></w:p> & stray</w:hdr>`

	in := buildDocx(t, map[string]string{
		"word/document.xml": sampleDocument,
		"word/header1.xml":  malformed,
	})
	out := filepath.Join(t.TempDir(), "out.docx")

	res, err := ConvertFile(in, out, wadegiles.New(), Options{Mode: wadegiles.Conservative})
	require.NoError(t, err)
	assert.Equal(t, []string{"word/header1.xml"}, res.FallbackParts)

	hdr := readPartFromFile(t, out, "word/header1.xml")
	assert.Contains(t, hdr, "the Song court")
	assert.Contains(t, hdr, "& stray") // untouched outside w:t
}

func TestConvertFileFilterVeto(t *testing.T) {
	in := buildDocx(t, map[string]string{"word/document.xml": sampleDocument})
	out := filepath.Join(t.TempDir(), "out.docx")

	res, err := ConvertFile(in, out, wadegiles.New(), Options{
		Mode:   wadegiles.Conservative,
		Filter: func(Change) bool { return false },
	})
	require.NoError(t, err)
	assert.Empty(t, res.Changes)

	// Nothing accepted, nothing rewritten.
	assert.Equal(t, sampleDocument, readPartFromFile(t, out, "word/document.xml"))
}

func TestConvertFileFilterByOrdinal(t *testing.T) {
	in := buildDocx(t, map[string]string{"word/document.xml": sampleDocument})
	out := filepath.Join(t.TempDir(), "out.docx")

	// Accept only the first proposed change of the body.
	res, err := ConvertFile(in, out, wadegiles.New(), Options{
		Mode:   wadegiles.Conservative,
		Filter: func(ch Change) bool { return ch.Ordinal == 0 },
	})
	require.NoError(t, err)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, "Mao Tse-tung went to Peking.", res.Changes[0].Original)

	doc := readPartFromFile(t, out, "word/document.xml")
	assert.Contains(t, doc, "Mao Zedong went to Beijing.")
	assert.Contains(t, doc, "the Sung Dynasty") // vetoed, still Wade-Giles
}

func TestPlanMatchesConvert(t *testing.T) {
	in := buildDocx(t, map[string]string{
		"word/document.xml": sampleDocument,
		"word/header1.xml":  sampleHeader,
	})

	plan, err := Plan(in, wadegiles.New(), wadegiles.Conservative)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.docx")
	applied, err := ConvertFile(in, out, wadegiles.New(), Options{Mode: wadegiles.Conservative})
	require.NoError(t, err)

	assert.Equal(t, plan.Changes, applied.Changes)
}

func TestConvertFileRejectsNonDocx(t *testing.T) {
	in := buildDocx(t, map[string]string{"mimetype": "application/epub+zip"})
	out := filepath.Join(t.TempDir(), "out.docx")

	_, err := ConvertFile(in, out, wadegiles.New(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing word/document.xml")
}

func TestRewriteStructuredPreservesEntities(t *testing.T) {
	part := docHeader + `
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>AT&amp;T funded the Sung exhibit</w:t></w:r></w:p>
</w:body></w:document>`

	conv := wadegiles.New()
	out, changes, fallback := rewritePart("word/document.xml", []byte(part), conv, Options{Mode: wadegiles.Conservative})
	assert.False(t, fallback)
	require.Len(t, changes, 1)
	assert.Equal(t, "AT&T funded the Sung exhibit", changes[0].Original)
	assert.Contains(t, string(out), "AT&amp;T funded the Song exhibit")
}

func TestUnescapeXMLSinglePass(t *testing.T) {
	assert.Equal(t, "a < b & c", unescapeXML("a &lt; b &amp; c"))
	// An escaped escape stays single-level.
	assert.Equal(t, "&lt;", unescapeXML("&amp;lt;"))
}
