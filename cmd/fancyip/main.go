package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/fancyip/cmds"
	"github.com/reusee/fancyip/diags"
	"github.com/reusee/fancyip/expands"
	"github.com/reusee/fancyip/fancyconfigs"
	"github.com/reusee/fancyip/logs"
	"github.com/reusee/fancyip/modes"
	"github.com/reusee/fancyip/starlarks"
)

type starJob struct {
	path string
	pkg  string
}

var (
	expandPaths []string
	evalTexts   []string
	starJobs    []starJob
	startREPL   bool

	outputPath = cmds.Var[string]("-o", "write output to a file instead of stdout")
)

func init() {
	cmds.Define("expand", cmds.Func(func(path string) {
		expandPaths = append(expandPaths, path)
	}).Params("file").Desc("expand address calls in a Go source file"))

	cmds.Define("eval", cmds.Func(func(text string) {
		evalTexts = append(evalTexts, text)
	}).Params("code").Desc("expand address calls in a snippet, e.g. 'fancyip.IPv4(\"127.0.0.1\")'"))

	cmds.Define("star", cmds.Func(func(path string, pkg string) {
		starJobs = append(starJobs, starJob{
			path: path,
			pkg:  pkg,
		})
	}).Params("file", "package").Desc("run a starlark script and print a Go file of the given package"))

	cmds.Define("repl", cmds.Func(func() {
		startREPL = true
	}).Desc("start an interactive starlark session with the address builtins"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if len(expandPaths) == 0 && len(evalTexts) == 0 && len(starJobs) == 0 && !startREPL {
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		expander expands.Expander,
		runner starlarks.Runner,
		newSpan logs.NewSpan,
		interactive starlarks.REPL,
		color fancyconfigs.Color,
		writer logs.Writer,
	) {
		ctx := context.Background()
		opts := diags.Options{
			Color: bool(color),
		}
		if err := run(ctx, expander, runner, newSpan); err != nil {
			diags.Render(writer, err, opts)
			os.Exit(1)
		}
		if startREPL {
			interactive(ctx)
		}
	})
}

func run(
	ctx context.Context,
	expander expands.Expander,
	runner starlarks.Runner,
	newSpan logs.NewSpan,
) error {
	if *outputPath != "" && len(expandPaths)+len(starJobs) > 1 {
		return fmt.Errorf("-o accepts a single expand or star job")
	}

	for _, path := range expandPaths {
		ctx, _ := newSpan(ctx, "expand "+path)
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, _, err := expander.ExpandFile(ctx, path, src)
		if err != nil {
			return err
		}
		if err := output(out); err != nil {
			return err
		}
	}

	for _, text := range evalTexts {
		ctx, _ := newSpan(ctx, "eval")
		out, _, err := expander.Expand(ctx, "", []byte(text))
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}

	for _, job := range starJobs {
		ctx, _ := newSpan(ctx, "star "+job.path)
		src, err := os.ReadFile(job.path)
		if err != nil {
			return err
		}
		out, err := runner.Run(ctx, job.path, src, job.pkg)
		if err != nil {
			return err
		}
		if err := output(out); err != nil {
			return err
		}
	}

	return nil
}

func output(content []byte) error {
	if *outputPath == "" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if err := os.WriteFile(*outputPath, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", *outputPath, err)
	}
	return nil
}
