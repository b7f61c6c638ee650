package starlarks

import (
	"math/big"
	"testing"

	"github.com/reusee/fancyip/literals"
	"github.com/reusee/fancyip/tokens"
	"go.starlark.net/starlark"
)

type loc string

func (l loc) String() string {
	return string(l)
}

func TestFromStarlark(t *testing.T) {
	huge, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	for _, c := range []struct {
		value starlark.Value
		kind  literals.Kind
		text  string
	}{
		{starlark.String("1.2.3.4"), literals.String, `"1.2.3.4"`},
		{starlark.MakeInt(42), literals.Integer, "42"},
		{starlark.MakeBigInt(huge), literals.Integer, huge.String()},
		{starlark.Float(1.5), literals.Float, ""},
		{starlark.Bool(true), literals.Boolean, "true"},
		{starlark.Bytes("ab"), literals.ByteSequence, `b"ab"`},
	} {
		value, ok := FromStarlark(c.value)
		if !ok {
			t.Fatalf("not a literal: %v", c.value)
		}
		if value.Kind != c.kind {
			t.Fatalf("got %v", value.Kind)
		}
		if got := value.String(); c.text != "" && got != c.text {
			t.Fatalf("got %v", got)
		}
	}

	if _, ok := FromStarlark(starlark.None); ok {
		t.Fatal("None is not a literal")
	}
	if _, ok := FromStarlark(starlark.NewList(nil)); ok {
		t.Fatal("list is not a literal")
	}
}

func TestTokens(t *testing.T) {
	stream := Tokens(starlark.Tuple{
		starlark.String("a"),
		starlark.MakeInt(1),
		starlark.None,
	}, loc("here"))
	var kinds []tokens.Kind
	for {
		token, ok := stream.Next()
		if !ok {
			break
		}
		if token.Location.String() != "here" {
			t.Fatalf("got %v", token.Location)
		}
		kinds = append(kinds, token.Kind)
	}
	expected := []tokens.Kind{
		tokens.KindLiteral, tokens.KindPunct,
		tokens.KindLiteral, tokens.KindPunct,
		tokens.KindOther,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("got %v", kinds)
	}
	for i, kind := range kinds {
		if kind != expected[i] {
			t.Fatalf("got %v", kinds)
		}
	}
}
