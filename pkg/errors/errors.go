package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError represents a document decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SchemaError captures a structural violation in a screen document: a missing
// required field, a numeric field out of range or an unrecognized node type.
type SchemaError struct {
	Field   string
	Message string
	Err     error
}

// NewSchemaError constructs a SchemaError.
func NewSchemaError(field, message string, err error) error {
	return &SchemaError{Field: field, Message: message, Err: err}
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("schema error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SchemaError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownComponentKindError is returned when a node variant has no handling branch.
type UnknownComponentKindError struct {
	Kind   string
	NodeID string
}

// NewUnknownComponentKindError constructs an UnknownComponentKindError.
func NewUnknownComponentKindError(kind, nodeID string) error {
	return &UnknownComponentKindError{Kind: kind, NodeID: nodeID}
}

func (e *UnknownComponentKindError) Error() string {
	if e == nil {
		return ""
	}
	if e.NodeID != "" {
		return fmt.Sprintf("unknown component kind %q on node %s", e.Kind, e.NodeID)
	}
	return fmt.Sprintf("unknown component kind %q", e.Kind)
}

// TreeTooDeepError is returned when rendering descends past the nesting limit.
type TreeTooDeepError struct {
	NodeID string
	Depth  int
	Limit  int
}

// NewTreeTooDeepError constructs a TreeTooDeepError.
func NewTreeTooDeepError(nodeID string, depth, limit int) error {
	return &TreeTooDeepError{NodeID: nodeID, Depth: depth, Limit: limit}
}

func (e *TreeTooDeepError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tree too deep: node %s at depth %d exceeds limit %d", e.NodeID, e.Depth, e.Limit)
}

// InvalidColorFormatError reports a color string that is not exactly six hex
// digits (after an optional '#') or a theme slot reference that does not exist.
type InvalidColorFormatError struct {
	Value  string
	Reason string
}

// NewInvalidColorFormatError constructs an InvalidColorFormatError.
func NewInvalidColorFormatError(value, reason string) error {
	return &InvalidColorFormatError{Value: value, Reason: reason}
}

func (e *InvalidColorFormatError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
}

// IsFatal reports whether err aborts a render pass. Color format errors are
// cosmetic and never fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var schemaErr *SchemaError
	var kindErr *UnknownComponentKindError
	var depthErr *TreeTooDeepError
	var parseErr *ParseError
	return stderrors.As(err, &schemaErr) ||
		stderrors.As(err, &kindErr) ||
		stderrors.As(err, &depthErr) ||
		stderrors.As(err, &parseErr)
}
