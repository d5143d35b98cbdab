package merge

import (
	"bytes"
	"fmt"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes markup-special characters in header text and attribute
// values.
func EscapeXML(s string) string { return xmlEscaper.Replace(s) }

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
	// A literal "]]>" inside content ends one section and reopens the next.
	cdataSplit = "]]]]><![CDATA[>"
)

type xmlRenderer struct {
	w *stickyWriter
}

func (r *xmlRenderer) preamble(header string, paths []string) {
	w := r.w
	w.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	w.WriteString("<file_documentation>\n")

	if header != "" {
		w.WriteString("  <description>\n")
		w.WriteString("    " + EscapeXML(header) + "\n")
		w.WriteString("  </description>\n\n")
	}

	w.WriteString("  <file_list>\n")
	for i, p := range paths {
		w.WriteString(fmt.Sprintf("    <item index=\"%d\" path=\"%s\" name=\"%s\" />\n",
			i+1, EscapeXML(p), EscapeXML(baseName(p))))
	}
	w.WriteString("  </file_list>\n\n")
	w.WriteString("  <file_contents>\n")
}

func (r *xmlRenderer) file(rec FileRecord) {
	w := r.w
	attrs := fmt.Sprintf("name=\"%s\" path=\"%s\"", EscapeXML(rec.Name), EscapeXML(rec.Path))
	if rec.Digest != "" {
		attrs += fmt.Sprintf(" blake3=\"%s\"", rec.Digest)
	}
	w.WriteString("    <file " + attrs + ">\n")

	if rec.Err != nil {
		w.WriteString("      <error>" + rec.Err.Error() + "</error>\n")
	} else {
		w.WriteString("      " + cdataOpen)
		w.writeBody(bytes.ReplaceAll(rec.Content, []byte(cdataClose), []byte(cdataSplit)))
		w.WriteString(cdataClose + "\n")
	}

	w.WriteString("    </file>\n")
}

func (r *xmlRenderer) closing() {
	r.w.WriteString("  </file_contents>\n")
	r.w.WriteString("</file_documentation>")
}
