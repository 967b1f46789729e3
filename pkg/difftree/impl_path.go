/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package difftree

import (
	"iter"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type accessPath struct {
	Segments []*pathSegment `parser:"@@ ( '.' @@ )*"`
}

type pathSegment struct {
	Wildcard bool   `parser:"  @'*'"`
	Name     string `parser:"| @Name"`
}

func (s *pathSegment) match(name string) bool {
	return s.Wildcard || s.Name == name
}

var pathParser = func() *participle.Parser[accessPath] {
	pathLexer := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Wildcard", Pattern: `\*`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Name", Pattern: `[^.*\s]+`},
	})
	return participle.MustBuild[accessPath](participle.Lexer(pathLexer))
}()

func parsePath(path string) ([]*pathSegment, error) {
	p, err := pathParser.ParseString("", path)
	if err != nil {
		return nil, ErrInvalidAccessPath(path, err)
	}
	return p.Segments, nil
}

// Returns classifications of nodes matched by access path.
//
// Access path is dot-separated case-sensitive node names, starting from root name.
// Segment «*» matches any single node at its depth. Result keys are paths of matched nodes.
// Malformed paths, like paths with empty segments, return ErrInvalidAccessPathError.
func (t *Tree) GetNodeState(path string, recursive bool) (map[string]State, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	res := make(map[string]State)
	for n := range t.match(segments) {
		res[n.Path()] = n.Classify(recursive)
	}
	return res, nil
}

// Returns node by exact access path. Wildcards are not allowed.
func (t *Tree) Lookup(path string) (Node, error) {
	segments, err := parsePath(path)
	if err != nil {
		return Node{}, err
	}
	for _, s := range segments {
		if s.Wildcard {
			return Node{}, ErrInvalidAccessPath(path, ErrUnsupported("wildcard in lookup"))
		}
	}
	for n := range t.match(segments) {
		return n, nil
	}
	return Node{}, ErrNodeNotFound(path)
}

func (t *Tree) match(segments []*pathSegment) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		root := t.Root()
		if !segments[0].match(root.Name()) {
			return
		}
		var walk func(Node, []*pathSegment) bool
		walk = func(n Node, rest []*pathSegment) bool {
			if len(rest) == 0 {
				return yield(n)
			}
			for _, c := range n.Children() {
				if rest[0].match(c.Name()) {
					if !walk(c, rest[1:]) {
						return false
					}
				}
			}
			return true
		}
		walk(root, segments[1:])
	}
}
