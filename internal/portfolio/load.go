package portfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a seed document from a .json, .yml or .yaml file.
// The file is only ever read; nothing writes it back.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening seed document %s: %w", path, err)
	}
	defer f.Close()

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err = DecodeJSON(f)
	case ".yml", ".yaml":
		doc, err = DecodeYAML(f)
	default:
		return Document{}, fmt.Errorf("seed document %s: unsupported extension %q", path, filepath.Ext(path))
	}
	if err != nil {
		return Document{}, fmt.Errorf("reading seed document %s: %w", path, err)
	}
	return doc, nil
}

// DecodeJSON parses and validates a JSON document.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decoding json: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// DecodeYAML parses and validates a YAML document.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// EncodeYAML writes the document as YAML.
func EncodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
