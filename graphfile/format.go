package graphfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/searchtrace/core"
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat maps a name ("yaml", "yml", "toml", "json") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode reads one document from r.
func Decode(r io.Reader, f Format) (*Document, error) {
	var d Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&d)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrDecode, err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			keys := make([]string, len(extra))
			for i, k := range extra {
				keys[i] = k.String()
			}
			sort.Strings(keys)

			return nil, fmt.Errorf("%w: toml: unknown keys %s", ErrDecode, strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: json: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	return &d, nil
}

// Load reads the document at path, inferring the format from its extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer fh.Close()

	return Decode(fh, f)
}

// LoadGraph is Load followed by Document.Graph.
func LoadGraph(path string) (*core.Graph, *Document, error) {
	d, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := d.Graph()
	if err != nil {
		return nil, nil, err
	}

	return g, d, nil
}

// EncodeDocument writes d to w.
func EncodeDocument(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("graphfile: yaml: %w", err)
		}

		return enc.Close()
	case FormatTOML:
		// Buffered so a failed encode writes nothing.
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(d); err != nil {
			return fmt.Errorf("graphfile: toml: %w", err)
		}
		_, err := buf.WriteTo(w)

		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("graphfile: json: %w", err)
		}

		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Encode writes g to w as a document in format f.
func Encode(w io.Writer, g *core.Graph, f Format) error {
	return EncodeDocument(w, FromGraph(g), f)
}
