package yamlv3

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	enumwire "github.com/reoring/enumwire"
	eng "github.com/reoring/enumwire/internal/engine"
)

// Bytes wraps a YAML document as an enumwire.Source. The document is decoded
// into a yaml.Node tree up front and replayed as a token stream, so enum
// containers decode from YAML exactly as they do from JSON.
func Bytes(b []byte) enumwire.Source { return enumwire.SourceFromEngine(NewBytes(b)) }

// Reader wraps an io.Reader holding one YAML document as an enumwire.Source.
func Reader(r io.Reader) enumwire.Source { return enumwire.SourceFromEngine(NewReader(r)) }

// NewBytes wraps a YAML document into an engine.TokenSource.
func NewBytes(b []byte) eng.TokenSource {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return &source{err: err}
	}
	return fromNode(&root)
}

// NewReader wraps an io.Reader into an engine.TokenSource.
func NewReader(r io.Reader) eng.TokenSource {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return &source{err: err}
	}
	return fromNode(&root)
}

func fromNode(root *yaml.Node) eng.TokenSource {
	s := &source{}
	if err := s.flatten(root, false); err != nil {
		return &source{err: err}
	}
	return s
}

type source struct {
	toks []eng.Token
	pos  int
	err  error
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *source) Location() int64 { return -1 }

func (s *source) flatten(n *yaml.Node, asKey bool) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return s.flatten(n.Content[0], false)
	case yaml.AliasNode:
		return s.flatten(n.Alias, asKey)
	case yaml.MappingNode:
		if asKey {
			return fmt.Errorf("yamlv3: mapping cannot be used as a key (line %d)", n.Line)
		}
		s.toks = append(s.toks, eng.Token{Kind: eng.KindBeginObject, Offset: -1})
		for i := 0; i+1 < len(n.Content); i += 2 {
			if err := s.flatten(n.Content[i], true); err != nil {
				return err
			}
			if err := s.flatten(n.Content[i+1], false); err != nil {
				return err
			}
		}
		s.toks = append(s.toks, eng.Token{Kind: eng.KindEndObject, Offset: -1})
		return nil
	case yaml.SequenceNode:
		if asKey {
			return fmt.Errorf("yamlv3: sequence cannot be used as a key (line %d)", n.Line)
		}
		s.toks = append(s.toks, eng.Token{Kind: eng.KindBeginArray, Offset: -1})
		for _, c := range n.Content {
			if err := s.flatten(c, false); err != nil {
				return err
			}
		}
		s.toks = append(s.toks, eng.Token{Kind: eng.KindEndArray, Offset: -1})
		return nil
	case yaml.ScalarNode:
		if asKey {
			// Keys replay as key tokens with their raw scalar text; the enum
			// resolver decides what the text denotes.
			s.toks = append(s.toks, eng.Token{Kind: eng.KindKey, String: n.Value, Offset: -1})
			return nil
		}
		s.toks = append(s.toks, scalarToken(n))
		return nil
	default:
		return fmt.Errorf("yamlv3: unsupported node kind %d (line %d)", n.Kind, n.Line)
	}
}

func scalarToken(n *yaml.Node) eng.Token {
	switch n.Tag {
	case "!!null":
		return eng.Token{Kind: eng.KindNull, Offset: -1}
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}
		}
		return eng.Token{Kind: eng.KindBool, Bool: b, Offset: -1}
	case "!!int", "!!float":
		return eng.Token{Kind: eng.KindNumber, Number: n.Value, Offset: -1}
	default:
		return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}
	}
}
