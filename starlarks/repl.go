package starlarks

import (
	"context"

	"github.com/reusee/fancyip/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// REPL starts an interactive session with the address builtins and the current settings predeclared.
type REPL func(ctx context.Context)

func (Module) REPL(
	runner Runner,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) {
		logger.InfoContext(ctx, "repl start")
		defer func() {
			logger.InfoContext(ctx, "repl end")
		}()

		globals := Builtins(runner.Renderer)
		globals["settings"] = ToStarlark(Settings{
			Qualifier:  runner.Renderer.Qualifier,
			ImportPath: runner.ImportPath,
		})

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
	}
}
