package mcptools

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dusk-indust/mergefile/internal/config"
	"github.com/dusk-indust/mergefile/internal/logging"
	"github.com/dusk-indust/mergefile/internal/merge"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.go"), []byte("package a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("# notes"), 0o644))
	return root
}

func TestMergeService_MergeFiles(t *testing.T) {
	root := setupProject(t)
	var status bytes.Buffer
	svc := NewMergeService(root, config.ProjectConfig{}, logging.New(&status, false))

	_, out, err := svc.MergeFiles(context.Background(), nil, MergeFilesInput{
		Inputs: []string{"a.go", "missing.txt", "b.md"},
		Output: "bundle.md",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", out.Status)
	assert.Equal(t, 3, out.Processed)
	assert.Equal(t, "markdown", out.Format)
	assert.Equal(t, filepath.Join(root, "bundle.md"), out.Output)
	assert.Equal(t, []SkippedFile{{Path: filepath.Join(root, "missing.txt"), Reason: "file does not exist"}}, out.Skipped)
	assert.Contains(t, status.String(), "level=WARN")

	data, err := os.ReadFile(filepath.Join(root, "bundle.md"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), out.Bytes)
	assert.Contains(t, string(data), "```go\npackage a\n```")
	assert.Contains(t, string(data), "```markdown\n# notes\n```")
}

func TestMergeService_MergeFiles_XMLWithDefaults(t *testing.T) {
	root := setupProject(t)
	defaults := config.ProjectConfig{Header: "From config", Format: "xml", Digest: true}
	svc := NewMergeService(root, defaults, nil)

	_, out, err := svc.MergeFiles(context.Background(), nil, MergeFilesInput{
		Inputs: []string{"a.go"},
		Output: "bundle.xml",
	})
	require.NoError(t, err)
	assert.Equal(t, "xml", out.Format)
	assert.Empty(t, out.Skipped)

	data, err := os.ReadFile(filepath.Join(root, "bundle.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "    From config\n")
	assert.Contains(t, string(data), `blake3="`)
}

func TestMergeService_MergeFiles_InputOverridesDefaults(t *testing.T) {
	root := setupProject(t)
	svc := NewMergeService(root, config.ProjectConfig{Header: "default", Format: "xml"}, nil)

	_, out, err := svc.MergeFiles(context.Background(), nil, MergeFilesInput{
		Inputs: []string{filepath.Join(root, "a.go")},
		Output: filepath.Join(root, "bundle.md"),
		Header: "explicit",
		Format: "markdown",
	})
	require.NoError(t, err)
	assert.Equal(t, "markdown", out.Format)

	data, err := os.ReadFile(filepath.Join(root, "bundle.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# File Documentation\n\nexplicit\n\n"))
}

func TestMergeService_MergeFiles_UsageErrors(t *testing.T) {
	root := setupProject(t)
	svc := NewMergeService(root, config.ProjectConfig{}, nil)

	tests := []struct {
		name  string
		input MergeFilesInput
	}{
		{"no inputs", MergeFilesInput{Output: "out.md"}},
		{"no output", MergeFilesInput{Inputs: []string{"a.go"}}},
		{"bad format", MergeFilesInput{Inputs: []string{"a.go"}, Output: "out.md", Format: "html"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := svc.MergeFiles(context.Background(), nil, tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, merge.ErrUsage)
			assert.Equal(t, "failed", out.Status)
		})
	}

	_, statErr := os.Stat(filepath.Join(root, "out.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMergeService_MergeFiles_UnwritableOutput(t *testing.T) {
	root := setupProject(t)
	svc := NewMergeService(root, config.ProjectConfig{}, nil)

	_, out, err := svc.MergeFiles(context.Background(), nil, MergeFilesInput{
		Inputs: []string{"a.go"},
		Output: filepath.Join("missing-dir", "out.md"),
	})
	require.NoError(t, err)
	assert.Equal(t, "failed", out.Status)
	assert.Contains(t, out.Message, "create output")
}

func TestMergeMCPServer_ToolsList(t *testing.T) {
	svc := NewMergeService(t.TempDir(), config.ProjectConfig{}, nil)
	server := NewMergeMCPServer(svc)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go server.Run(ctx, serverTransport)

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "dev"}, nil)
	session, err := mcpClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)
	assert.Equal(t, "merge_files", tools.Tools[0].Name)
}

func TestMergeMCPServer_CallTool(t *testing.T) {
	root := setupProject(t)
	server := NewMergeMCPServer(NewMergeService(root, config.ProjectConfig{}, nil))

	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go server.Run(ctx, serverTransport)

	mcpClient := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "dev"}, nil)
	session, err := mcpClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "merge_files",
		Arguments: map[string]any{
			"inputs": []string{"a.go", "b.md"},
			"output": "bundle.xml",
			"format": "xml",
		},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	data, err := os.ReadFile(filepath.Join(root, "bundle.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<item index="2" path="`+filepath.Join(root, "b.md")+`" name="b.md" />`)
}
