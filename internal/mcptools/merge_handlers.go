package mcptools

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/dusk-indust/mergefile/internal/config"
	"github.com/dusk-indust/mergefile/internal/logging"
	"github.com/dusk-indust/mergefile/internal/merge"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MergeService handles MCP tool calls for the merge server mode.
type MergeService struct {
	root     string
	defaults config.ProjectConfig
	logger   *slog.Logger
}

// NewMergeService creates a MergeService. Relative paths in tool calls are
// resolved against root; defaults fill in header, format and digest when a
// call leaves them unset.
func NewMergeService(root string, defaults config.ProjectConfig, logger *slog.Logger) *MergeService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &MergeService{
		root:     root,
		defaults: defaults,
		logger:   logger,
	}
}

// MergeFiles merges the requested inputs into a single document.
func (s *MergeService) MergeFiles(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MergeFilesInput,
) (*mcp.CallToolResult, MergeFilesOutput, error) {
	req, err := s.request(input)
	if err != nil {
		return nil, MergeFilesOutput{Status: "failed", Message: err.Error()}, err
	}

	res, err := merge.Merge(req, merge.WithLogger(s.logger))
	if err != nil {
		return nil, MergeFilesOutput{
			Status:  "failed",
			Output:  req.Output,
			Format:  req.Format.String(),
			Message: err.Error(),
		}, nil
	}

	out := MergeFilesOutput{
		Status:    "completed",
		Processed: res.Processed,
		Output:    res.Output,
		Format:    res.Format.String(),
		Bytes:     res.Bytes,
	}
	for _, o := range res.Skipped() {
		out.Skipped = append(out.Skipped, SkippedFile{Path: o.Path, Reason: o.Err.Error()})
	}
	return nil, out, nil
}

// request converts tool input into a validated merge request.
func (s *MergeService) request(input MergeFilesInput) (merge.Request, error) {
	name := input.Format
	if name == "" {
		name = s.defaults.Format
	}
	if name == "" {
		name = merge.FormatMarkdown.String()
	}
	format, err := merge.ParseFormat(name)
	if err != nil {
		return merge.Request{}, err
	}

	header := input.Header
	if header == "" {
		header = s.defaults.Header
	}

	req := merge.Request{
		Output: s.resolve(input.Output),
		Header: header,
		Format: format,
		Digest: input.Digest || s.defaults.Digest,
	}
	for _, p := range input.Inputs {
		req.Inputs = append(req.Inputs, s.resolve(p))
	}
	return req, req.Validate()
}

func (s *MergeService) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || s.root == "" {
		return path
	}
	return filepath.Join(s.root, path)
}
