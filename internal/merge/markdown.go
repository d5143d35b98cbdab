package merge

import "fmt"

type markdownRenderer struct {
	w *stickyWriter
}

func (r *markdownRenderer) preamble(header string, paths []string) {
	w := r.w
	w.WriteString("# File Documentation\n\n")

	if header != "" {
		w.WriteString(header + "\n\n")
	}

	w.WriteString("## File List\n\n")
	w.WriteString("The files are listed below:\n\n")
	for i, p := range paths {
		w.WriteString(fmt.Sprintf("%d. `%s`\n", i+1, p))
	}
	w.WriteString("\n## File Contents\n\n")
	w.WriteString("The content of each file follows:\n\n")
	w.WriteString("---\n\n")
}

func (r *markdownRenderer) file(rec FileRecord) {
	w := r.w
	w.WriteString("### " + rec.Name + "\n\n")
	w.WriteString("Path: `" + rec.Path + "`\n\n")

	switch rec.Err {
	case nil:
		if rec.Digest != "" {
			w.WriteString("BLAKE3: `" + rec.Digest + "`\n\n")
		}
		w.WriteString("```" + LanguageFor(rec.Name) + "\n")
		w.writeBody(rec.Content)
		w.WriteString("```\n\n")
	case ErrNotFound:
		w.WriteString("File does not exist\n\n")
	case ErrDecode:
		w.WriteString("Decode failure\n\n")
	}
}

func (r *markdownRenderer) closing() {}
