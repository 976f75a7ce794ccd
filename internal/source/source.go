// Package source loads picker items from JSON, YAML, TOML or plain text.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"quickpick/internal/debug"
	"quickpick/internal/domain"
	appErrors "quickpick/internal/errors"
)

// Stdin is the path that reads items from standard input.
const Stdin = "-"

// itemsKey names the list inside a document whose top level is a table.
const itemsKey = "items"

// Format identifies an item file encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// Load reads the items at path. The path "-" reads from stdin and sniffs the
// format from the content.
func Load(path string, stdin io.Reader) ([]any, error) {
	path = strings.TrimSpace(path)
	if path == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, appErrors.New(appErrors.CodeSourceUnreadable, "read items from stdin", err)
		}
		return Decode(data, Sniff(data))
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, appErrors.New(appErrors.CodeSourceNotFound, fmt.Sprintf("items file not found: %s", path), err)
		}
		return nil, appErrors.New(appErrors.CodeSourceUnreadable, fmt.Sprintf("read items file %s", path), err)
	}
	items, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	debug.Logf("source: loaded %d items from %s (%s)", len(items), path, format)
	return items, nil
}

// FormatForPath picks the decoder for a file by extension. Files without an
// extension are read as text.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case "", ".txt", ".text", ".lst":
		return FormatText, nil
	default:
		return "", appErrors.New(appErrors.CodeUnsupportedFormat,
			fmt.Sprintf("unsupported items file format: %s", filepath.Ext(path)), nil)
	}
}

// Sniff guesses the format of piped data: JSON when it opens with a bracket
// or brace, text otherwise.
func Sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}
	return FormatText
}

// Decode parses data in format and returns its item list. Structured formats
// accept either a top-level list or a table holding an "items" list.
func Decode(data []byte, format Format) ([]any, error) {
	if format == FormatAuto {
		format = Sniff(data)
	}

	var doc any
	switch format {
	case FormatText:
		return decodeLines(data), nil
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, appErrors.New(appErrors.CodeParseFailed, "parse JSON items", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, appErrors.New(appErrors.CodeParseFailed, "parse YAML items", err)
		}
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, appErrors.New(appErrors.CodeParseFailed, "parse TOML items", err)
		}
		doc = table
	default:
		return nil, appErrors.New(appErrors.CodeUnsupportedFormat, fmt.Sprintf("unsupported format %q", format), nil)
	}

	items, ok := itemsOf(doc)
	if !ok {
		return nil, appErrors.New(appErrors.CodeParseFailed,
			fmt.Sprintf("%s document must be a list or hold an %q list", format, itemsKey), nil)
	}
	return items, nil
}

func itemsOf(doc any) ([]any, bool) {
	if doc == nil {
		return []any{}, true
	}
	if table, ok := doc.(map[string]any); ok {
		inner, present := table[itemsKey]
		if !present {
			return nil, false
		}
		doc = inner
	}
	return domain.AsItems(doc)
}

// decodeLines returns one string item per non-blank line.
func decodeLines(data []byte) []any {
	items := []any{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
