// Package loader turns wire documents into validated screens.
package loader

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/validation"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// LoadFile reads and validates the document at path. JSON documents are
// accepted as they are a subset of YAML.
func LoadFile(path string) (*model.Screen, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sduierrors.NewParseError(path, 0, err)
	}
	return LoadBytes(path, data)
}

// Load reads a document from r. name is used in error messages only.
func Load(name string, r io.Reader) (*model.Screen, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, sduierrors.NewParseError(name, 0, err)
	}
	return LoadBytes(name, data)
}

// LoadBytes decodes and validates data. Structural violations, including
// unrecognized node types, are reported as *errors.SchemaError before any
// rendering happens.
func LoadBytes(name string, data []byte) (*model.Screen, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, sduierrors.NewParseError(name, validation.Line(err), err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%s: %w", name, sduierrors.NewSchemaError("screen", "document is empty", nil))
	}

	var screen model.Screen
	if err := doc.Content[0].Decode(&screen); err != nil {
		var schemaErr *sduierrors.SchemaError
		if stderrors.As(err, &schemaErr) {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return nil, sduierrors.NewParseError(name, validation.Line(err), err)
	}

	if err := model.ValidateScreen(&screen); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &screen, nil
}
