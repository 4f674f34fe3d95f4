package goast

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
)

// Source renders the source text of Go syntax nodes.
type Source struct {
	fset     *token.FileSet
	readFile func(filename string) ([]byte, error)
	files    map[string][]byte
}

// NewSource creates a renderer over the given file set. Nodes are cut out of
// the file contents read with readFile when it is set; otherwise, or when the
// contents do not match the file set, they are printed back from the AST.
func NewSource(fset *token.FileSet, readFile func(filename string) ([]byte, error)) *Source {
	return &Source{
		fset:     fset,
		readFile: readFile,
		files:    map[string][]byte{},
	}
}

// Text returns the source text of n.
func (s *Source) Text(n ast.Node) (string, bool) {
	if n == nil || !n.Pos().IsValid() {
		return "", false
	}

	if text, ok := s.cut(n); ok {
		return text, true
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, s.fset, n); err != nil {
		return "", false
	}

	return buf.String(), true
}

func (s *Source) cut(n ast.Node) (string, bool) {
	if s.readFile == nil {
		return "", false
	}

	tf := s.fset.File(n.Pos())
	if tf == nil {
		return "", false
	}

	data, ok := s.files[tf.Name()]
	if !ok {
		var err error
		data, err = s.readFile(tf.Name())
		if err != nil || len(data) != tf.Size() {
			data = nil
		}
		s.files[tf.Name()] = data
	}
	if data == nil {
		return "", false
	}

	start, end := tf.Offset(n.Pos()), tf.Offset(n.End())
	if start > end || end > len(data) {
		return "", false
	}

	return string(data[start:end]), true
}
