package model

import (
	"fmt"

	"gopkg.in/yaml.v3"

	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// Motion schemes.
const (
	MotionStandard   = "standard"
	MotionExpressive = "expressive"
)

// Screen is the root of a document.
type Screen struct {
	ID              string   `yaml:"id" json:"id" validate:"required"`
	Title           string   `yaml:"title,omitempty" json:"title,omitempty"`
	Nodes           Nodes    `yaml:"nodes" json:"nodes" validate:"-"`
	BackgroundColor ColorRef `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	MotionScheme    string   `yaml:"motionScheme" json:"motionScheme"`
	Padding         Padding  `yaml:"padding,omitempty" json:"padding"`
}

// UnmarshalYAML applies screen defaults before decoding.
func (s *Screen) UnmarshalYAML(value *yaml.Node) error {
	type rawScreen Screen
	raw := rawScreen{MotionScheme: MotionExpressive}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Screen(raw)
	return nil
}

// Nodes is an ordered sequence of type-tagged nodes.
type Nodes []Node

// UnmarshalYAML decodes each element according to its "type" tag. An
// unrecognized tag is a schema error and aborts the whole document.
func (ns *Nodes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return sduierrors.NewSchemaError("nodes", fmt.Sprintf("line %d: expected a sequence of nodes", value.Line), nil)
	}

	out := make(Nodes, 0, len(value.Content))
	for _, item := range value.Content {
		node, err := decodeNode(item)
		if err != nil {
			return err
		}
		out = append(out, node)
	}

	*ns = out
	return nil
}

// MarshalYAML writes each node with its "type" tag first.
func (ns Nodes) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range ns {
		var body yaml.Node
		if err := body.Encode(n); err != nil {
			return nil, err
		}
		tag := []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "type"},
			{Kind: yaml.ScalarNode, Value: n.Kind().String()},
		}
		body.Content = append(tag, body.Content...)
		seq.Content = append(seq.Content, &body)
	}
	return seq, nil
}

func decodeNode(value *yaml.Node) (Node, error) {
	if value.Kind != yaml.MappingNode {
		return nil, sduierrors.NewSchemaError("type", fmt.Sprintf("line %d: node must be a mapping", value.Line), nil)
	}

	var head struct {
		Type string `yaml:"type"`
		ID   string `yaml:"id"`
	}
	if err := value.Decode(&head); err != nil {
		return nil, err
	}

	if head.Type == "" {
		return nil, sduierrors.NewSchemaError("type", fmt.Sprintf("line %d: node %q has no type", value.Line, head.ID), nil)
	}

	kind, ok := ParseKind(head.Type)
	if !ok {
		return nil, sduierrors.NewSchemaError(
			"type",
			fmt.Sprintf("line %d: unrecognized node type %q", value.Line, head.Type),
			sduierrors.NewUnknownComponentKindError(head.Type, head.ID),
		)
	}

	node := newDefault(kind)
	if err := value.Decode(node); err != nil {
		return nil, err
	}
	return node, nil
}
