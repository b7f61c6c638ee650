package tokens

import (
	"fmt"
	"strings"
)

// Location is an opaque source position, only meaningful to diagnostics.
type Location interface {
	String() string
}

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

type Pos struct {
	Source *Source
	Offset int
	Line   int
	// Column is a 1-based byte column
	Column int
}

var _ Location = Pos{}

func (p Pos) String() string {
	name := "<input>"
	if p.Source != nil && p.Source.Name != "" {
		name = p.Source.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

// LineText returns the source line containing p, if known.
func (p Pos) LineText() (string, bool) {
	if p.Source == nil {
		return "", false
	}
	idx := p.Line - 1
	if idx < 0 || idx >= len(p.Source.Lines) {
		return "", false
	}
	return strings.TrimSuffix(p.Source.Lines[idx], "\r"), true
}
