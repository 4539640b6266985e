package adapter

import (
	"fmt"
	"io"
	"os"
	"strings"

	m "github.com/mouse-blink/docslice/internal/model"
)

// ExportFilter decides whether a function name is exposed by a header.
// It is deliberately narrow so a stricter tokenizing implementation can be
// swapped in without touching the rest of the pipeline.
type ExportFilter interface {
	Exports(name string) bool
}

// HeaderAdapter loads a header file into an ExportFilter.
type HeaderAdapter interface {
	Load(path m.Path) (ExportFilter, error)
}

// LocalHeaderAdapter reads header files from the local file system.
type LocalHeaderAdapter struct{}

// NewLocalHeaderAdapter creates a new LocalHeaderAdapter.
func NewLocalHeaderAdapter() *LocalHeaderAdapter {
	return &LocalHeaderAdapter{}
}

// Load reads the header in one pass and returns the membership filter over
// its text. The file handle is closed regardless of outcome.
func (a *LocalHeaderAdapter) Load(path m.Path) (ExportFilter, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open header %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	text, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", path, err)
	}

	return &substringFilter{text: string(text)}, nil
}

// substringFilter matches a name when "<name>(" occurs anywhere in the
// header text. The match ignores identifier boundaries, comments and string
// literals: a header containing "xfoo(" makes "foo" a false positive.
type substringFilter struct {
	text string
}

func (s *substringFilter) Exports(name string) bool {
	return strings.Contains(s.text, name+"(")
}
