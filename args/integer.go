package args

import (
	"fmt"
	"go/constant"

	"github.com/reusee/fancyip/literals"
	"github.com/reusee/fancyip/tokens"
	"golang.org/x/exp/constraints"
)

// DecodeInteger decodes the next argument as an integer literal whose exact value fits in T.
func DecodeInteger[T constraints.Integer](d *Decoder) (ret T, loc tokens.Location, err error) {
	arg, err := d.DecodeRaw()
	if err != nil {
		return ret, nil, err
	}
	loc = arg.Location
	if arg.Value.Kind != literals.Integer {
		return ret, loc, &Error{
			Kind: BadType{
				Given:    arg.Value.Kind,
				Expected: literals.Integer,
			},
			Location: loc,
		}
	}
	ret, ok := convert[T](arg.Value.Number)
	if !ok {
		return ret, loc, &Error{
			Kind: OutOfBound{
				Type: fmt.Sprintf("%T", ret),
			},
			Location: loc,
		}
	}
	return ret, loc, nil
}

// convert converts an exact integer value to T, reporting false instead of wrapping.
func convert[T constraints.Integer](value constant.Value) (ret T, ok bool) {
	if value == nil {
		return ret, false
	}
	value = constant.ToInt(value)
	if value.Kind() != constant.Int {
		return ret, false
	}

	if constant.Sign(value) < 0 {
		i, exact := constant.Int64Val(value)
		if !exact {
			return ret, false
		}
		ret = T(i)
		if int64(ret) != i || ret >= 0 {
			var zero T
			return zero, false
		}
		return ret, true
	}

	u, exact := constant.Uint64Val(value)
	if !exact {
		return ret, false
	}
	ret = T(u)
	if uint64(ret) != u || ret < 0 {
		var zero T
		return zero, false
	}
	return ret, true
}
