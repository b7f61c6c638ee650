package starlarks

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"go/token"
	"path"

	"github.com/reusee/fancyip/logs"
	"github.com/reusee/fancyip/renders"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Runner executes starlark scripts that emit address declarations.
type Runner struct {
	Renderer   renders.Renderer
	ImportPath string
	Logger     logs.Logger
}

type Decl struct {
	Name string
	Expr string
}

// Exec runs a script and returns the declarations it emitted, in emission order.
// Emitting an existing name replaces its expression.
func (r Runner) Exec(ctx context.Context, filename string, src []byte) ([]Decl, error) {
	var decls []Decl
	index := make(map[string]int)

	predeclared := Builtins(r.Renderer)
	var emit starlark.Value = starlarkutil.MakeFunc("emit", func(name string, expr string) {
		if i, ok := index[name]; ok {
			decls[i].Expr = expr
			return
		}
		index[name] = len(decls)
		decls = append(decls, Decl{
			Name: name,
			Expr: expr,
		})
	})
	predeclared["emit"] = emit

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if r.Logger != nil {
				r.Logger.InfoContext(ctx, msg, "script", filename)
			}
		},
	}
	if _, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		},
		thread,
		filename,
		src,
		predeclared,
	); err != nil {
		return nil, logs.WrapSpan(ctx, fmt.Errorf("run %s: %w", filename, err))
	}

	for _, decl := range decls {
		if !token.IsIdentifier(decl.Name) {
			return nil, fmt.Errorf("%s: bad declaration name %q", filename, decl.Name)
		}
	}
	return decls, nil
}

// Run executes a script and renders its declarations as a Go file of package pkg.
func (r Runner) Run(ctx context.Context, filename string, src []byte, pkg string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("bad package name %q", pkg)
	}
	decls, err := r.Exec(ctx, filename, src)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by fancyip star. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	if len(decls) > 0 && r.Renderer.Qualifier != "" && r.ImportPath != "" {
		if path.Base(r.ImportPath) == r.Renderer.Qualifier {
			fmt.Fprintf(&buf, "import %q\n\n", r.ImportPath)
		} else {
			fmt.Fprintf(&buf, "import %s %q\n\n", r.Renderer.Qualifier, r.ImportPath)
		}
	}
	if len(decls) > 0 {
		buf.WriteString("var (\n")
		for _, decl := range decls {
			fmt.Fprintf(&buf, "%s = %s\n", decl.Name, decl.Expr)
		}
		buf.WriteString(")\n")
	}

	ret, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	if r.Logger != nil {
		r.Logger.InfoContext(ctx, "generated",
			"script", filename,
			"package", pkg,
			"decls", len(decls),
		)
	}
	return ret, nil
}
