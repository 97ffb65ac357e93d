package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/sdui/internal/validation"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// Validate checks that node and all of its descendants have their required
// fields and that numeric fields are within range. It does not resolve
// colors or styles.
func Validate(node Node) error {
	if node == nil {
		return sduierrors.NewSchemaError("node", "node is nil", nil)
	}

	if _, ok := ParseKind(node.Kind().String()); !ok {
		return sduierrors.NewSchemaError("type", fmt.Sprintf("node %q has an unrecognized type", node.ID()),
			sduierrors.NewUnknownComponentKindError(node.Kind().String(), node.ID()))
	}

	if err := validation.Instance().Struct(node); err != nil {
		return convertValidationError(node, err)
	}

	for i, child := range Children(node) {
		if child == nil {
			return sduierrors.NewSchemaError(
				fmt.Sprintf("%s.children[%d]", node.ID(), i),
				"child node is nil",
				nil,
			)
		}
		if err := Validate(child); err != nil {
			return err
		}
	}

	return nil
}

// ValidateScreen checks the screen header, validates every node and
// requires node IDs to be unique across the whole tree.
func ValidateScreen(screen *Screen) error {
	if screen == nil {
		return sduierrors.NewSchemaError("screen", "screen is nil", nil)
	}

	if err := validation.Instance().Struct(screen); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			ve := ves[0]
			field := wireNamespace(ve.Namespace())
			return sduierrors.NewSchemaError(field, fmt.Sprintf("failed validation for tag '%s'", ve.Tag()), err)
		}
		return sduierrors.NewSchemaError("screen", err.Error(), err)
	}

	if len(screen.Nodes) == 0 {
		return sduierrors.NewSchemaError("nodes", "screen must contain at least one node", nil)
	}

	for _, node := range screen.Nodes {
		if err := Validate(node); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{})
	var dup string
	Walk(screen.Nodes, func(n Node, _ int) bool {
		if _, ok := seen[n.ID()]; ok {
			dup = n.ID()
			return false
		}
		seen[n.ID()] = struct{}{}
		return true
	})
	if dup != "" {
		return sduierrors.NewSchemaError("id", fmt.Sprintf("duplicate node id %q", dup), nil)
	}

	return nil
}

// Walk visits nodes depth-first in document order. Top-level nodes are at
// depth 1. Returning false from fn stops the walk.
func Walk(nodes []Node, fn func(n Node, depth int) bool) {
	var visit func(ns []Node, depth int) bool
	visit = func(ns []Node, depth int) bool {
		for _, n := range ns {
			if n == nil {
				continue
			}
			if !fn(n, depth) {
				return false
			}
			if !visit(Children(n), depth+1) {
				return false
			}
		}
		return true
	}
	visit(nodes, 1)
}

func convertValidationError(node Node, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := wireNamespace(ve.Namespace())
		msg := fmt.Sprintf("%s %q: %s failed validation for tag '%s'", node.Kind(), node.ID(), field, ve.Tag())
		return sduierrors.NewSchemaError(field, msg, err)
	}

	return sduierrors.NewSchemaError(node.Kind().String(), err.Error(), err)
}

// wireNamespace turns "Card.Base.style.elevation" into "style.elevation".
func wireNamespace(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	out := parts[:0]
	for _, p := range parts {
		if p == "Base" || p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ".")
}
