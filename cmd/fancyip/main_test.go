package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/fancyip/cmds"
	"github.com/reusee/fancyip/expands"
	"github.com/reusee/fancyip/logs"
	"github.com/reusee/fancyip/modes"
	"github.com/reusee/fancyip/starlarks"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "addrs.star")
	if err := os.WriteFile(src, []byte(`emit("Home", ipv4("127.0.0.1"))`), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "addrs.go")

	cmds.GlobalExecutor.MustExecute([]string{"star", src, "addrs", "-o=" + out})
	defer func() {
		starJobs = nil
		cmds.GlobalExecutor.MustExecute([]string{"-o."})
	}()

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		expander expands.Expander,
		runner starlarks.Runner,
		newSpan logs.NewSpan,
	) {
		if err := run(t.Context(), expander, runner, newSpan); err != nil {
			t.Fatal(err)
		}
	})

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "Home = fancyip.NewIPv4(127, 0, 0, 1)") {
		t.Fatalf("got %s", content)
	}
}
