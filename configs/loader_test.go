package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func writeFiles(t *testing.T, contents ...string) (ret []string) {
	t.Helper()
	dir := t.TempDir()
	for i, content := range contents {
		path := filepath.Join(dir, fmt.Sprintf("%d.cue", i))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		ret = append(ret, path)
	}
	return
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader(writeFiles(t, `
str: "bar"
list: [1, 2, 3]
`), testSchema)

	var str string
	err := loader.AssignFirst("str", &str)
	if err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	err = loader.AssignFirst("list", &list)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader(writeFiles(t,
		`str: "bar"`,
		`list: [1]`,
		`str: "foo"`,
	), testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str, err := range All[string](loader, "str") {
		if err != nil {
			t.Fatal(err)
		}
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	if str := First[string](loader, "str"); str != "bar" {
		t.Fatalf("got %q", str)
	}
	if list := First[[]int](loader, "nothing"); list != nil {
		t.Fatalf("got %v", list)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader(writeFiles(t, `unknown_field: 1`), testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestAllDecodeError(t *testing.T) {
	loader := NewLoader(writeFiles(t, `str: "foo"`), testSchema)
	for _, err := range All[int](loader, "str") {
		if err == nil {
			t.Fatal("should error")
		}
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if str := First[string](loader, "str"); str != "" {
		t.Fatalf("got %q", str)
	}
}
