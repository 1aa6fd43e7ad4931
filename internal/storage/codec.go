package storage

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type codec interface {
	Name() string
	Encode(w io.Writer, doc *document) error
	Decode(r io.Reader, doc *document) error
}

// codecFor picks the codec from the file extension. JSON is the default.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	}
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(w io.Writer, doc *document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (jsonCodec) Decode(r io.Reader, doc *document) error {
	return json.NewDecoder(r).Decode(doc)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(w io.Writer, doc *document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func (yamlCodec) Decode(r io.Reader, doc *document) error {
	return yaml.NewDecoder(r).Decode(doc)
}
