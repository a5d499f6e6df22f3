package floor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const schemaURL = "mem://schemas/floor.json"

var (
	// ErrUnknownFormat is returned for files that are neither JSON nor YAML.
	ErrUnknownFormat = errors.New("unknown floor file format")
	// ErrDuplicateSection is returned when two sections share an ID.
	ErrDuplicateSection = errors.New("duplicate section id")
	// ErrNotFound is returned when a bundled floor does not exist.
	ErrNotFound = errors.New("floor not found")
)

// Format is a floor document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatOf picks the format from a file extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func floorSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("failed to add floor schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile floor schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Parse decodes and validates a floor document.
func Parse(data []byte, format Format) (*Floor, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse floor JSON: %w", err)
	}
	s, err := floorSchema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid floor document: %w", err)
	}

	var f Floor
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode floor: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one
// validation path.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse floor YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert floor YAML: %w", err)
	}
	return out, nil
}

// Validate checks constraints the schema cannot express.
func (f *Floor) Validate() error {
	seen := make(map[string]bool, len(f.Sections))
	for _, s := range f.Sections {
		if seen[s.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// LoadFile reads a floor from a .json, .yaml or .yml file.
func LoadFile(filename string) (*Floor, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read floor file %s: %w", filename, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

// Load returns a bundled floor by name, e.g. "ground_floor".
func Load(name string) (*Floor, error) {
	data, err := floorFS.ReadFile(path.Join("floors", name+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read embedded floor %s: %w", name, err)
	}
	f, err := Parse(data, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded floor %s: %w", name, err)
	}
	return f, nil
}

// MustLoad returns a bundled floor, panicking on error.
func MustLoad(name string) *Floor {
	f, err := Load(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Names lists the bundled floors.
func Names() []string {
	entries, err := floorFS.ReadDir("floors")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}
