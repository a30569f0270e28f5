package graphfile

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed samples/*
var sampleFS embed.FS

// Samples returns the names of all embedded sample graphs, sorted.
func Samples() []string {
	entries, _ := sampleFS.ReadDir("samples")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, err := FormatOf(e.Name()); err != nil {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)

	return names
}

// Sample decodes the embedded sample called name.
func Sample(name string) (*Document, error) {
	entries, _ := sampleFS.ReadDir("samples")
	for _, e := range entries {
		if strings.TrimSuffix(e.Name(), path.Ext(e.Name())) != name {
			continue
		}
		f, err := FormatOf(e.Name())
		if err != nil {
			continue
		}
		data, err := sampleFS.ReadFile("samples/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("graphfile: sample %q: %w", name, err)
		}

		return Decode(bytes.NewReader(data), f)
	}

	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownSample, name, strings.Join(Samples(), ", "))
}
