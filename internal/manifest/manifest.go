// Package manifest reads and writes JSON manifest files such as
// package.json, remembering the formatting details pkgsort preserves.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"nathanbeddoewebdev/pkgsort/internal/keysort"
)

// DefaultFileName is the manifest looked up inside directory arguments.
const DefaultFileName = "package.json"

// DefaultIndent is used when a file has no indented line to learn from.
const DefaultIndent = "  "

// UTF8BOM is the byte order mark some editors prepend to manifests.
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a decoded manifest plus the formatting of its source.
type Document struct {
	Path string
	Root *keysort.Mapping

	// Indent is the indent unit detected in the source.
	Indent string

	// FinalNewline records whether the source ended with a newline.
	FinalNewline bool

	// CRLF records whether the source used Windows line endings.
	CRLF bool

	// BOM records whether the source started with a UTF-8 byte order mark.
	BOM bool

	// Raw is the file content as read, including any byte order mark.
	Raw []byte
}

// ResolvePath maps a directory argument to the manifest inside it.
func ResolvePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("manifest: %w", err)
	}
	if info.IsDir() {
		return filepath.Join(path, DefaultFileName), nil
	}
	return path, nil
}

// Read loads and decodes the manifest at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes manifest content. path is used for error messages only.
func Parse(path string, data []byte) (*Document, error) {
	body := bytes.TrimPrefix(data, UTF8BOM)

	root, err := keysort.ParseMapping(body)
	if err != nil {
		return nil, fmt.Errorf("manifest: failed to parse %s: %w", path, err)
	}

	return &Document{
		Path:         path,
		Root:         root,
		Indent:       DetectIndent(body),
		FinalNewline: bytes.HasSuffix(body, []byte("\n")),
		CRLF:         bytes.Contains(body, []byte("\r\n")),
		BOM:          len(body) != len(data),
		Raw:          data,
	}, nil
}

// Render encodes root using the document's formatting. A non-empty indent
// overrides the detected one.
func (d *Document) Render(root *keysort.Mapping, indent string) ([]byte, error) {
	if indent == "" {
		indent = d.Indent
	}
	if indent == "" {
		indent = DefaultIndent
	}

	data, err := keysort.Encode(root, indent)
	if err != nil {
		return nil, fmt.Errorf("manifest: failed to encode %s: %w", d.Path, err)
	}
	if d.FinalNewline {
		data = append(data, '\n')
	}
	if d.CRLF {
		data = bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n"))
	}
	if d.BOM {
		data = append(slices.Clone(UTF8BOM), data...)
	}
	return data, nil
}

// DetectIndent returns the leading whitespace of the first indented line,
// or "" if no line is indented.
func DetectIndent(data []byte) string {
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || len(trimmed) == len(line) {
			continue
		}
		return string(line[:len(line)-len(trimmed)])
	}
	return ""
}

// Write replaces the file at path with data. The content is written to a
// temporary file in the same directory and renamed into place. The
// existing file mode is kept.
func Write(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("manifest: failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("manifest: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("manifest: failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("manifest: failed to set mode on %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("manifest: failed to replace %s: %w", path, err)
	}
	return nil
}
