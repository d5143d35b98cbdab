package merge

import "io"

// renderer emits one document layout. Calls happen in the order
// preamble, file (once per input), closing.
type renderer interface {
	preamble(header string, paths []string)
	file(rec FileRecord)
	closing()
}

func newRenderer(f Format, w *stickyWriter) renderer {
	switch f {
	case FormatXML:
		return &xmlRenderer{w: w}
	default:
		return &markdownRenderer{w: w}
	}
}

// stickyWriter keeps the first write error and turns later writes into
// no-ops, so renderers can write without checking every call.
type stickyWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.n += int64(n)
	s.err = err
	return n, err
}

func (s *stickyWriter) WriteString(str string) {
	if s.err != nil {
		return
	}
	n, err := io.WriteString(s.w, str)
	s.n += int64(n)
	s.err = err
}

// writeBody writes content followed by a newline when it does not already
// end with one.
func (s *stickyWriter) writeBody(content []byte) {
	s.Write(content)
	if len(content) == 0 || content[len(content)-1] != '\n' {
		s.WriteString("\n")
	}
}
