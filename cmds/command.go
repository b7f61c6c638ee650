package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ParamNames  []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Params names the arguments in usage output.
func (c *Command) Params(names ...string) *Command {
	if c.Func.IsValid() && len(names) != c.Func.Type().NumIn() {
		panic(fmt.Errorf("%d param names for %d arguments", len(names), c.Func.Type().NumIn()))
	}
	c.ParamNames = names
	return c
}

// Signature renders the arguments as <name>, or [<name>] for optional ones.
func (c *Command) Signature() string {
	if !c.Func.IsValid() {
		return ""
	}
	fnType := c.Func.Type()
	parts := make([]string, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		t := fnType.In(i)
		optional := t.Kind() == reflect.Pointer
		if optional {
			t = t.Elem()
		}
		name := strings.ToLower(t.Kind().String())
		if i < len(c.ParamNames) {
			name = c.ParamNames[i]
		}
		if optional {
			parts = append(parts, "[<"+name+">]")
		} else {
			parts = append(parts, "<"+name+">")
		}
	}
	return strings.Join(parts, " ")
}

// Func wraps fn as a command. Arguments are parsed from the following words; fn may return an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("must return at most one value: %v", fnType))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return error: %v", fnType))
	case fnType.IsVariadic():
		panic(fmt.Errorf("variadic function not supported: %v", fnType))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
