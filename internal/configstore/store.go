// Package configstore reads and writes the flat site-config.yaml record.
//
// Loading prefers a structured yaml.v3 parse; any parse failure degrades to a
// permissive line scanner so a hand-edited or slightly malformed file still
// yields the recoverable keys. Saving mirrors that: yaml.v3 encoding with key
// order preserved, with a plain "key: value" emitter as the fallback.
package configstore

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadEnvOverrides loads KEY=VALUE pairs from .env/.env.local in root into the
// process environment. The first file that parses wins and existing variables
// are never overridden. Values become visible to ${VAR} expansion in Load.
func LoadEnvOverrides(root string) {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(root, name)
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment overrides", "path", path)
			return
		}
	}
}

// Load reads the config record from path. A missing file yields an empty
// record, not an error. Environment variables referenced as $VAR/${VAR} in
// the file are expanded before parsing.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewRecord(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	text := os.Expand(string(data), func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return "$" + key
	})

	rec, err := parseYAML([]byte(text))
	if err != nil {
		slog.Debug("Structured config parse failed, using line fallback", "path", path, "error", err)
		return parseLines(text), nil
	}
	return rec, nil
}

// parseYAML decodes a flat YAML mapping into a Record, preserving key order
// and scalar text verbatim (so "yes" stays "yes", not true).
func parseYAML(data []byte) (*Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	rec := NewRecord()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return rec, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("config root is not a mapping (found %v)", root.Kind)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := root.Content[i+1]
		rec.Set(keyNode.Value, scalarText(valNode))
	}
	return rec, nil
}

// scalarText returns the textual form of a value node. Non-scalar values are
// re-encoded to flow-style YAML; the record is string-only by contract.
func scalarText(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// parseLines is the degraded scanner: "key: value" per line, surrounding
// quotes stripped, blanks/comments/colon-less lines ignored. It cannot
// represent nested or multi-line values.
func parseLines(text string) *Record {
	rec := NewRecord()
	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "#") || !strings.Contains(s, ":") {
			continue
		}
		key, val, _ := strings.Cut(s, ":")
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		val = strings.Trim(val, "'")
		val = strings.Trim(val, `"`)
		rec.Set(key, val)
	}
	return rec
}

// Save overwrites path with the record. Structured YAML first; the plain
// line emitter takes over if encoding fails.
func Save(path string, rec *Record) error {
	data, err := encodeYAML(rec)
	if err != nil {
		slog.Debug("Structured config encode failed, using line fallback", "path", path, "error", err)
		data = encodeLines(rec)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// encodeYAML emits one document with keys in record order. Unicode passes
// through unescaped; yaml.v3 quotes only where the value demands it.
func encodeYAML(rec *Record) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range rec.Keys() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rec.Get(k)},
		)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeLines is the fallback writer, quoting any value that is empty or
// contains a colon, hash, or whitespace.
func encodeLines(rec *Record) []byte {
	var b strings.Builder
	for _, k := range rec.Keys() {
		v := rec.Get(k)
		if v == "" || strings.ContainsAny(v, ":# \t") {
			v = `"` + v + `"`
		}
		fmt.Fprintf(&b, "%s: %s\n", k, v)
	}
	return []byte(b.String())
}
