package literals

import (
	"fmt"
	"go/constant"
	"math/big"
	"strconv"
)

// Value is a decoded literal. Only the payload field matching Kind is set.
type Value struct {
	Kind Kind
	Bool bool
	// Number holds the exact value of Integer, Float and Imaginary literals
	Number constant.Value
	Rune   rune
	Str    string
	Byte   byte
	Bytes  []byte
}

func BoolValue(b bool) Value {
	return Value{
		Kind: Boolean,
		Bool: b,
	}
}

func IntValue(i int64) Value {
	return Value{
		Kind:   Integer,
		Number: constant.MakeInt64(i),
	}
}

func BigIntValue(i *big.Int) Value {
	return Value{
		Kind:   Integer,
		Number: constant.Make(new(big.Int).Set(i)),
	}
}

func FloatValue(f float64) Value {
	return Value{
		Kind:   Float,
		Number: constant.MakeFloat64(f),
	}
}

func CharValue(r rune) Value {
	return Value{
		Kind: Character,
		Rune: r,
	}
}

func StringValue(s string) Value {
	return Value{
		Kind: String,
		Str:  s,
	}
}

func ByteValue(b byte) Value {
	return Value{
		Kind: Byte,
		Byte: b,
	}
}

func BytesValue(bs []byte) Value {
	return Value{
		Kind:  ByteSequence,
		Bytes: bs,
	}
}

func (v Value) String() string {
	switch v.Kind {
	case Boolean:
		return strconv.FormatBool(v.Bool)
	case Integer, Float, Imaginary:
		if v.Number == nil {
			return "0"
		}
		return v.Number.ExactString()
	case Character:
		return strconv.QuoteRune(v.Rune)
	case String:
		return strconv.Quote(v.Str)
	case Byte:
		return fmt.Sprintf("b%s", strconv.QuoteRune(rune(v.Byte)))
	case ByteSequence:
		return fmt.Sprintf("b%s", strconv.Quote(string(v.Bytes)))
	}
	return "<invalid>"
}
