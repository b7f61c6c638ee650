package tokens

import (
	"go/scanner"
	"go/token"

	"github.com/reusee/fancyip/literals"
)

type GoToken struct {
	Pos token.Pos
	Tok token.Token
	Lit string
}

// GoScanner tokenizes Go source text. Comments and automatically inserted semicolons are skipped.
type GoScanner struct {
	source  *Source
	file    *token.File
	scanner scanner.Scanner
	errs    scanner.ErrorList
}

func NewGoScanner(name string, src []byte) *GoScanner {
	fset := token.NewFileSet()
	file := fset.AddFile(name, fset.Base(), len(src))
	ret := &GoScanner{
		source: NewSource(name, string(src)),
		file:   file,
	}
	ret.scanner.Init(file, src, func(pos token.Position, msg string) {
		ret.errs.Add(pos, msg)
	}, 0)
	return ret
}

func (g *GoScanner) Scan() GoToken {
	for {
		pos, tok, lit := g.scanner.Scan()
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		return GoToken{
			Pos: pos,
			Tok: tok,
			Lit: lit,
		}
	}
}

func (g *GoScanner) Source() *Source {
	return g.source
}

func (g *GoScanner) Offset(pos token.Pos) int {
	return g.file.Offset(pos)
}

func (g *GoScanner) Location(pos token.Pos) Pos {
	position := g.file.Position(pos)
	return Pos{
		Source: g.source,
		Offset: position.Offset,
		Line:   position.Line,
		Column: position.Column,
	}
}

// Token converts a scanned token into a Token. Literals that fail to decode become other tokens.
func (g *GoScanner) Token(t GoToken) *Token {
	loc := g.Location(t.Pos)
	text := t.Lit
	if text == "" {
		text = t.Tok.String()
	}
	if value, ok := literals.FromGo(t.Tok, t.Lit); ok {
		ret := Lit(value, loc)
		ret.Text = text
		return ret
	}
	if t.Tok.IsOperator() {
		runes := []rune(text)
		if len(runes) == 1 {
			return Punct(runes[0], loc)
		}
	}
	return Other(text, loc)
}

// Err returns scan errors collected so far.
func (g *GoScanner) Err() error {
	return g.errs.Err()
}

// Args returns a stream over call arguments, positioned after an opening parenthesis.
func (g *GoScanner) Args() *ArgStream {
	return &ArgStream{
		scanner: g,
	}
}

// ArgStream yields tokens up to, but not including, the parenthesis closing the current call.
type ArgStream struct {
	scanner *GoScanner
	depth   int
	done    bool
	closing *GoToken
}

var _ Stream = new(ArgStream)

func (a *ArgStream) Next() (*Token, bool) {
	if a.done {
		return nil, false
	}
	t := a.scanner.Scan()
	switch t.Tok {
	case token.EOF:
		a.done = true
		return nil, false
	case token.LPAREN, token.LBRACK, token.LBRACE:
		a.depth++
	case token.RPAREN, token.RBRACK, token.RBRACE:
		if a.depth > 0 {
			a.depth--
		} else if t.Tok == token.RPAREN {
			a.done = true
			a.closing = &t
			return nil, false
		}
	}
	return a.scanner.Token(t), true
}

// Close drains the stream and returns the closing parenthesis. ok is false if the source ended first.
func (a *ArgStream) Close() (closing GoToken, ok bool) {
	for {
		if _, more := a.Next(); !more {
			break
		}
	}
	if a.closing == nil {
		return closing, false
	}
	return *a.closing, true
}
