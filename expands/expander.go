package expands

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/token"

	"github.com/reusee/fancyip/logs"
	"github.com/reusee/fancyip/macros"
	"github.com/reusee/fancyip/renders"
	"github.com/reusee/fancyip/tokens"
)

// Expander rewrites calls like fancyip.IPv4("127.0.0.1") into constructor calls.
type Expander struct {
	MacroPackage string
	Renderer     renders.Renderer
	Logger       logs.Logger
}

type Expansion struct {
	Macro    string
	Location tokens.Location
	Output   string
}

// Expand replaces every macro call in src. The first error aborts the expansion.
func (e Expander) Expand(ctx context.Context, name string, src []byte) ([]byte, []Expansion, error) {
	scanner := tokens.NewGoScanner(name, src)
	var expansions []Expansion
	var out bytes.Buffer
	last := 0

	t := scanner.Scan()
	for t.Tok != token.EOF {
		if t.Tok != token.IDENT || t.Lit != e.MacroPackage {
			t = scanner.Scan()
			continue
		}
		start := t

		// package . name (
		t = scanner.Scan()
		if t.Tok != token.PERIOD {
			continue
		}
		t = scanner.Scan()
		if t.Tok != token.IDENT {
			continue
		}
		ident := t
		macro, ok := macros.Lookup(ident.Lit)
		if !ok {
			t = scanner.Scan()
			continue
		}
		t = scanner.Scan()
		if t.Tok != token.LPAREN {
			continue
		}

		call := scanner.Location(ident.Pos)
		args := scanner.Args()
		output, err := macro(e.Renderer, call, args)
		if err != nil {
			return nil, nil, logs.WrapSpan(ctx, fmt.Errorf("expand %s: %w", ident.Lit, err))
		}
		closing, ok := args.Close()
		if !ok {
			return nil, nil, logs.WrapSpan(ctx, fmt.Errorf("%s: unterminated call to %s", call, ident.Lit))
		}

		out.Write(src[last:scanner.Offset(start.Pos)])
		out.WriteString(output)
		last = scanner.Offset(closing.Pos) + 1

		if e.Logger != nil {
			e.Logger.DebugContext(ctx, "expanded",
				"macro", ident.Lit,
				"location", call.String(),
				"output", output,
			)
		}
		expansions = append(expansions, Expansion{
			Macro:    ident.Lit,
			Location: call,
			Output:   output,
		})

		t = scanner.Scan()
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, logs.WrapSpan(ctx, err)
	}

	out.Write(src[last:])
	return out.Bytes(), expansions, nil
}

// ExpandFile expands a Go source file and formats the result.
func (e Expander) ExpandFile(ctx context.Context, name string, src []byte) ([]byte, []Expansion, error) {
	out, expansions, err := e.Expand(ctx, name, src)
	if err != nil {
		return nil, nil, err
	}
	formatted, err := format.Source(out)
	if err != nil {
		return nil, nil, logs.WrapSpan(ctx, fmt.Errorf("format %s: %w", name, err))
	}
	if e.Logger != nil {
		e.Logger.InfoContext(ctx, "expanded file",
			"file", name,
			"calls", len(expansions),
		)
	}
	return formatted, expansions, nil
}
