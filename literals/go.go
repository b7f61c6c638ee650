package literals

import (
	"go/constant"
	"go/token"
	"strconv"
)

// FromGo classifies a token produced by go/scanner.
// The predeclared identifiers true and false are treated as boolean literals.
func FromGo(tok token.Token, lit string) (ret Value, ok bool) {
	switch tok {

	case token.INT, token.FLOAT, token.IMAG:
		number := constant.MakeFromLiteral(lit, tok, 0)
		if number.Kind() == constant.Unknown {
			return ret, false
		}
		kind := Integer
		switch tok {
		case token.FLOAT:
			kind = Float
		case token.IMAG:
			kind = Imaginary
		}
		return Value{
			Kind:   kind,
			Number: number,
		}, true

	case token.CHAR:
		number := constant.MakeFromLiteral(lit, tok, 0)
		if number.Kind() != constant.Int {
			return ret, false
		}
		r, exact := constant.Int64Val(number)
		if !exact {
			return ret, false
		}
		return CharValue(rune(r)), true

	case token.STRING:
		s, err := strconv.Unquote(lit)
		if err != nil {
			return ret, false
		}
		return StringValue(s), true

	case token.IDENT:
		switch lit {
		case "true":
			return BoolValue(true), true
		case "false":
			return BoolValue(false), true
		}

	}
	return ret, false
}
