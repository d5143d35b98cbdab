package mcptools

// --- MCP Tool Types for the merge server mode (--serve-mcp) ---
// These tools are exposed when the binary runs as an MCP server, so an agent
// can bundle files for review without shelling out.

// MergeFilesInput is the input for the merge_files MCP tool.
type MergeFilesInput struct {
	Inputs []string `json:"inputs" jsonschema:"input file paths, merged in the given order"`
	Output string   `json:"output" jsonschema:"path of the document to create or overwrite"`
	Header string   `json:"header,omitempty" jsonschema:"optional description placed at the top of the document"`
	Format string   `json:"format,omitempty" jsonschema:"output format: xml or markdown (default: markdown)"`
	Digest bool     `json:"digest,omitempty" jsonschema:"attach a BLAKE3 digest to each embedded file"`
}

// MergeFilesOutput is the result of the merge_files MCP tool.
type MergeFilesOutput struct {
	Status    string        `json:"status"` // "completed" or "failed"
	Processed int           `json:"processed"`
	Output    string        `json:"output"`
	Format    string        `json:"format"`
	Bytes     int64         `json:"bytes"`
	Skipped   []SkippedFile `json:"skipped,omitempty"`
	Message   string        `json:"message,omitempty"`
}

// SkippedFile names an input that was replaced by an error marker.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}
