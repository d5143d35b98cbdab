package merge

import (
	"path/filepath"
	"strings"
)

// languageByExt maps a lower-case extension, dot included, to a code fence
// language tag.
var languageByExt = map[string]string{
	".py":         "python",
	".js":         "javascript",
	".ts":         "typescript",
	".java":       "java",
	".cpp":        "cpp",
	".c":          "c",
	".h":          "c",
	".cs":         "csharp",
	".php":        "php",
	".rb":         "ruby",
	".go":         "go",
	".rs":         "rust",
	".swift":      "swift",
	".kt":         "kotlin",
	".scala":      "scala",
	".r":          "r",
	".sql":        "sql",
	".html":       "html",
	".css":        "css",
	".scss":       "scss",
	".sass":       "sass",
	".xml":        "xml",
	".json":       "json",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".ini":        "ini",
	".cfg":        "ini",
	".conf":       "ini",
	".sh":         "bash",
	".bash":       "bash",
	".zsh":        "zsh",
	".fish":       "fish",
	".ps1":        "powershell",
	".bat":        "batch",
	".cmd":        "batch",
	".dockerfile": "dockerfile",
	".md":         "markdown",
	".tex":        "latex",
	".csv":        "csv",
	".tsv":        "csv",
}

// defaultLanguage tags fences for unknown or missing extensions.
const defaultLanguage = "text"

// LanguageFor returns the fence language for a file name.
func LanguageFor(name string) string {
	if lang, ok := languageByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return lang
	}
	return defaultLanguage
}

func baseName(path string) string { return filepath.Base(path) }
