// Package adapter contains parsing and storage adapters for the docslice CLI.
package adapter

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	m "github.com/mouse-blink/docslice/internal/model"
)

// CFileAdapter abstracts parsing of C translation units so the pipeline
// logic can be tested without a real parser.
type CFileAdapter interface {
	// Parse reads and parses a C source file into its model projection.
	Parse(path m.Path) (*m.TranslationUnit, error)
}

// TreeSitterCFileAdapter parses C files with the tree-sitter C grammar.
type TreeSitterCFileAdapter struct{}

// NewTreeSitterCFileAdapter creates a new TreeSitterCFileAdapter.
func NewTreeSitterCFileAdapter() *TreeSitterCFileAdapter {
	return &TreeSitterCFileAdapter{}
}

// Parse reads path, parses it as C and projects the tree into a
// TranslationUnit. A tree containing syntax errors is rejected outright:
// the caller gets no partial result.
func (a *TreeSitterCFileAdapter) Parse(path m.Path) (*m.TranslationUnit, error) {
	src, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(c.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("parse %s: source contains syntax errors", path)
	}

	tu := &m.TranslationUnit{
		Path:      path,
		NodeKinds: make(map[string]int),
	}

	collect(root, src, tu)
	resolveCalls(tu)

	return tu, nil
}

// collect walks the named nodes of the tree in preorder, which is source
// order, gathering function definitions and comment tokens.
func collect(node *sitter.Node, src []byte, tu *m.TranslationUnit) {
	tu.NodeKinds[node.Type()]++

	switch node.Type() {
	case "function_definition":
		if fn := newFunction(node, src); fn != nil {
			tu.Functions = append(tu.Functions, fn)
		}
	case "comment":
		tu.Comments = append(tu.Comments, m.Comment{
			StartLine: int(node.StartPoint().Row) + 1,
			EndLine:   int(node.EndPoint().Row) + 1,
			Text:      node.Content(src),
		})
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		collect(node.NamedChild(i), src, tu)
	}
}

func newFunction(node *sitter.Node, src []byte) *m.Function {
	name := declaredName(node, src)
	if name == "" {
		return nil
	}

	fn := &m.Function{
		Name:      name,
		Qualified: name, // C has a single flat function namespace
		Storage:   storageClass(node, src),
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
	}

	collectCalls(node, src, fn)

	return fn
}

// declaredName descends the declarator chain of a function definition down
// to the identifier that names it. Pointer-returning and parenthesized
// declarators nest the function declarator one level deeper per wrapper.
func declaredName(node *sitter.Node, src []byte) string {
	d := node.ChildByFieldName("declarator")
	for d != nil {
		if d.Type() == "identifier" {
			return d.Content(src)
		}

		next := d.ChildByFieldName("declarator")
		if next == nil && d.NamedChildCount() > 0 {
			next = d.NamedChild(0)
		}

		d = next
	}

	return ""
}

func storageClass(node *sitter.Node, src []byte) m.StorageClass {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "storage_class_specifier" {
			continue
		}

		switch child.Content(src) {
		case "static":
			return m.StorageStatic
		case "extern":
			return m.StorageExtern
		}
	}

	return m.StorageNone
}

// collectCalls records every call expression under node whose callee is a
// plain identifier. Calls through pointers or member expressions have no
// resolvable name and are skipped.
func collectCalls(node *sitter.Node, src []byte, fn *m.Function) {
	if node.Type() == "call_expression" {
		callee := node.ChildByFieldName("function")
		if callee != nil && callee.Type() == "identifier" {
			fn.Calls = append(fn.Calls, m.CallSite{
				Callee: callee.Content(src),
				Line:   int(node.StartPoint().Row) + 1,
			})
		}
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		collectCalls(node.NamedChild(i), src, fn)
	}
}

// resolveCalls links each call site to the function its name defines in
// this translation unit. Names defined elsewhere stay unresolved.
func resolveCalls(tu *m.TranslationUnit) {
	byName := make(map[string]*m.Function, len(tu.Functions))
	for _, fn := range tu.Functions {
		if _, ok := byName[fn.Name]; !ok {
			byName[fn.Name] = fn
		}
	}

	for _, fn := range tu.Functions {
		for i := range fn.Calls {
			fn.Calls[i].Target = byName[fn.Calls[i].Callee]
		}
	}
}
