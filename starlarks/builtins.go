package starlarks

import (
	"fmt"

	"github.com/reusee/fancyip/macros"
	"github.com/reusee/fancyip/renders"
	"go.starlark.net/starlark"
)

var builtinMacros = map[string]string{
	"ipv4":     "IPv4",
	"ipv6":     "IPv6",
	"ip":       "IP",
	"socketv4": "SocketV4",
	"socketv6": "SocketV6",
	"socket":   "Socket",
}

// Builtins returns the address builtins. Each returns the generated Go expression as a string.
func Builtins(renderer renders.Renderer) starlark.StringDict {
	ret := make(starlark.StringDict, len(builtinMacros))
	for name, macroName := range builtinMacros {
		macro, ok := macros.Lookup(macroName)
		if !ok {
			panic(fmt.Errorf("no macro named %s", macroName))
		}
		ret[name] = makeBuiltin(name, renderer, macro)
	}
	return ret
}

func makeBuiltin(name string, renderer renders.Renderer, macro macros.Macro) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(
		thread *starlark.Thread,
		b *starlark.Builtin,
		positional starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword argument %s", b.Name(), kwargs[0][0])
		}
		call := thread.CallFrame(1).Pos
		output, err := macro(renderer, call, Tokens(positional, call))
		if err != nil {
			return nil, err
		}
		return starlark.String(output), nil
	})
}
