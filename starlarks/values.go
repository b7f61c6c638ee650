package starlarks

import (
	"github.com/reusee/fancyip/args"
	"github.com/reusee/fancyip/literals"
	"github.com/reusee/fancyip/tokens"
	"go.starlark.net/starlark"
)

// FromStarlark classifies a starlark value as a literal.
func FromStarlark(v starlark.Value) (literals.Value, bool) {
	switch v := v.(type) {
	case starlark.String:
		return literals.StringValue(string(v)), true
	case starlark.Int:
		return literals.BigIntValue(v.BigInt()), true
	case starlark.Float:
		return literals.FloatValue(float64(v)), true
	case starlark.Bool:
		return literals.BoolValue(bool(v)), true
	case starlark.Bytes:
		return literals.BytesValue([]byte(v)), true
	}
	return literals.Value{}, false
}

// Tokens lays out positional arguments as literals separated by commas, all anchored at loc.
func Tokens(values starlark.Tuple, loc tokens.Location) *tokens.SliceStream {
	var ret []*tokens.Token
	for i, v := range values {
		if i > 0 {
			ret = append(ret, tokens.Punct(args.Separator, loc))
		}
		if value, ok := FromStarlark(v); ok {
			ret = append(ret, tokens.Lit(value, loc))
		} else {
			ret = append(ret, tokens.Other(v.String(), loc))
		}
	}
	return tokens.NewSliceStream(ret...)
}
