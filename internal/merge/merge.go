// Package merge concatenates input files into a single review document.
package merge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dusk-indust/mergefile/internal/logging"
)

// ErrUsage marks a request rejected before any file I/O.
var ErrUsage = errors.New("usage error")

// Format selects the output document layout.
type Format int

const (
	// FormatMarkdown is the heading-and-fence prose layout.
	FormatMarkdown Format = iota
	// FormatXML is the element/attribute layout with CDATA bodies.
	FormatXML
)

var formatNames = map[Format]string{
	FormatMarkdown: "markdown",
	FormatXML:      "xml",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat converts a literal format name into a Format.
func ParseFormat(name string) (Format, error) {
	for f, s := range formatNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown format %q (want xml or markdown)", ErrUsage, name)
}

// Request describes a single merge.
type Request struct {
	Inputs []string
	Output string
	Header string // empty means no header
	Format Format
	Digest bool // attach a BLAKE3 digest to every readable file
}

// Outcome records what happened to one input file.
type Outcome struct {
	Path string
	Name string
	Err  error // nil, ErrNotFound or ErrDecode
}

// Skipped reports whether the file was replaced by an error marker.
func (o Outcome) Skipped() bool { return o.Err != nil }

// Result summarises a completed merge.
type Result struct {
	// Processed counts attempted files, including skipped ones.
	Processed int
	Output    string
	Format    Format
	Bytes     int64
	Outcomes  []Outcome
}

// Skipped returns the outcomes of files that could not be embedded.
func (r *Result) Skipped() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Skipped() {
			out = append(out, o)
		}
	}
	return out
}

type options struct {
	logger *slog.Logger
}

// Option configures Merge.
type Option func(*options)

// WithLogger sets the status stream. Skipped files are reported at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Validate checks the request invariants without touching the filesystem.
func (r Request) Validate() error {
	if len(r.Inputs) == 0 {
		return fmt.Errorf("%w: at least one input file is required", ErrUsage)
	}
	if r.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrUsage)
	}
	if _, ok := formatNames[r.Format]; !ok {
		return fmt.Errorf("%w: unknown format %s", ErrUsage, r.Format)
	}
	return nil
}

// Merge writes every input of req into req.Output in input order.
//
// Missing and undecodable inputs do not stop the merge; they are written as
// inline error markers and reported in the result. Failing to create the
// output, or any other read or write error, aborts the merge.
func Merge(req Request, opts ...Option) (*Result, error) {
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Create(req.Output)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	res, err := render(f, req, o.logger)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close output: %w", err)
	}
	return res, nil
}

// render streams the document for req into w.
func render(w io.Writer, req Request, logger *slog.Logger) (*Result, error) {
	bw := bufio.NewWriter(w)
	sw := &stickyWriter{w: bw}
	r := newRenderer(req.Format, sw)

	r.preamble(req.Header, req.Inputs)

	res := &Result{
		Output:   req.Output,
		Format:   req.Format,
		Outcomes: make([]Outcome, 0, len(req.Inputs)),
	}
	for _, path := range req.Inputs {
		rec, err := readRecord(path, req.Digest)
		if err != nil {
			return nil, err
		}
		res.Processed++
		if rec.Err != nil {
			logger.Warn("skipping file", "path", rec.Path, "reason", rec.Err.Error())
		} else {
			logger.Debug("merged file", "path", rec.Path, "bytes", len(rec.Content))
		}
		r.file(rec)
		res.Outcomes = append(res.Outcomes, Outcome{Path: rec.Path, Name: rec.Name, Err: rec.Err})
	}

	r.closing()

	if sw.err != nil {
		return nil, fmt.Errorf("write output: %w", sw.err)
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	res.Bytes = sw.n
	return res, nil
}
