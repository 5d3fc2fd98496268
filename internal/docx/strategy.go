package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// replaceFunc is called once per non-empty text element, in document order.
// It returns the replacement text and whether to substitute it.
type replaceFunc func(text string) (string, bool)

// rewriteStructured parses a part with the streaming XML decoder and splices
// replacement text over the byte range of each w:t text node. Everything
// outside those ranges is preserved byte for byte. Malformed XML surfaces as
// an error for the caller to fall back on; nothing is swallowed.
func rewriteStructured(data []byte, replace replaceFunc) ([]byte, error) {
	type splice struct {
		start, end int64
		text       string
	}
	var splices []splice

	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding part: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "t" || se.Name.Space != wordNS {
			continue
		}

		// Byte range of the element's content: from just after the start
		// tag to just before the end tag.
		start := dec.InputOffset()
		var text strings.Builder
		var end int64
		nested := false
		for {
			pre := dec.InputOffset()
			inner, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("decoding w:t content: %w", err)
			}
			if ee, ok := inner.(xml.EndElement); ok && ee.Name.Local == "t" && ee.Name.Space == wordNS {
				end = pre
				break
			}
			if cd, ok := inner.(xml.CharData); ok {
				text.Write(cd)
				continue
			}
			// w:t is a text-only element; anything else means a part we
			// should not touch.
			nested = true
		}
		if nested || text.Len() == 0 {
			continue
		}

		if converted, ok := replace(text.String()); ok {
			splices = append(splices, splice{start: start, end: end, text: escapeXML(converted)})
		}
	}

	if len(splices) == 0 {
		return data, nil
	}

	var out bytes.Buffer
	out.Grow(len(data))
	var last int64
	for _, s := range splices {
		out.Write(data[last:s.start])
		out.WriteString(s.text)
		last = s.end
	}
	out.Write(data[last:])
	return out.Bytes(), nil
}

// wtElement matches a text element and its content in raw markup. Matching
// the markup directly sidesteps the XML parser entirely, which is the point:
// this strategy exists for parts the parser cannot handle.
var wtElement = regexp.MustCompile(`(<w:t[^>]*>)([^<]*)(</w:t>)`)

// rewriteRaw rewrites w:t contents with a regex pass over the raw bytes.
// Cruder than the structured walk but total: it cannot fail, only miss.
func rewriteRaw(data []byte, replace replaceFunc) []byte {
	return wtElement.ReplaceAllFunc(data, func(m []byte) []byte {
		sub := wtElement.FindSubmatch(m)
		text := unescapeXML(string(sub[2]))
		if text == "" {
			return m
		}
		converted, ok := replace(text)
		if !ok {
			return m
		}
		var out bytes.Buffer
		out.Write(sub[1])
		out.WriteString(escapeXML(converted))
		out.Write(sub[3])
		return out.Bytes()
	})
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// unescapeXML resolves the entities Word emits in text content. A single
// pass, so already-unescaped ampersands cannot be double-resolved.
var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&#34;", `"`,
	"&#xA;", "\n",
	"&#x9;", "\t",
	"&#xD;", "\r",
	"&amp;", "&",
)

func unescapeXML(s string) string {
	return xmlUnescaper.Replace(s)
}
