package cmds

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestVar(t *testing.T) {
	n := Var[int]("TestVarInt", "an int")
	s := Var[string]("TestVarString", "a string")
	GlobalExecutor.MustExecute([]string{
		"TestVarInt", "0x2a",
		"TestVarString=foo",
	})
	if *n != 42 {
		t.Fatalf("got %v", *n)
	}
	if *s != "foo" {
		t.Fatalf("got %v", *s)
	}
	GlobalExecutor.MustExecute([]string{"TestVarString."})
	if *s != "" {
		t.Fatalf("got %v", *s)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch", "switch")
	GlobalExecutor.MustExecute([]string{"TestSwitch"})
	if !*foo {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{"!TestSwitch"})
	if *foo {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect", "collect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if !slices.Equal(*list, []string{"a", "b"}) {
		t.Fatalf("got %v", *list)
	}
}

func TestTypedVar(t *testing.T) {
	type Qualifier string
	v := Var[Qualifier]("TestTypedVar", "typed")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "ips",
	})
	if *v != "ips" {
		t.Fatalf("got %v", *v)
	}
}

func TestHelperUsage(t *testing.T) {
	executor := GlobalExecutor
	Var[uint16]("TestHelperUsage", "set the port")
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	for _, line := range []string{
		"TestHelperUsage <uint16>\tset the port\n",
		"TestHelperUsage.\treset TestHelperUsage\n",
	} {
		if !strings.Contains(buf.String(), line) {
			t.Fatalf("no %q in\n%s", line, buf.String())
		}
	}
}
